package configs

import (
	"log"

	"github.com/Thariq15/react-cafe/entity"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

func SeedAdmin(email, pass string) error {
	db := DB()
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      "admin",
	}
	return db.Create(&admin).Error
}

// SeedMenu puts a starter catalog in place so a fresh install has something
// to sell.
func SeedMenu() error {
	db := DB()

	starters := []entity.MenuItem{
		{Name: "Espresso", Price: decimal.RequireFromString("3.00"), Description: "Short and strong double shot.", Volume: "2oz", Image: "https://images.cafe.local/espresso.jpg"},
		{Name: "Cappuccino", Price: decimal.RequireFromString("4.50"), Description: "Espresso with steamed milk and foam.", Volume: "8oz", Image: "https://images.cafe.local/cappuccino.jpg"},
		{Name: "Caffe Latte", Price: decimal.RequireFromString("5.00"), Description: "Smooth espresso with plenty of milk.", Volume: "12oz", Image: "https://images.cafe.local/latte.jpg"},
		{Name: "Mocha", Price: decimal.RequireFromString("5.50"), Description: "Chocolate, espresso and steamed milk.", Volume: "12oz", Image: "https://images.cafe.local/mocha.jpg"},
	}
	for i := range starters {
		if err := db.Where(entity.MenuItem{Name: starters[i].Name}).FirstOrCreate(&starters[i]).Error; err != nil {
			return err
		}
	}

	log.Println("coffee menu seeded")
	return nil
}
