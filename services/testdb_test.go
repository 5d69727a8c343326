package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Thariq15/react-cafe/entity"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// one shared in-memory database per test
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := db.AutoMigrate(
		&entity.User{}, &entity.MenuItem{}, &entity.CartItem{},
		&entity.Transaction{}, &entity.TransactionItem{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedMenuItem(t *testing.T, db *gorm.DB, name, price string) *entity.MenuItem {
	t.Helper()

	m := &entity.MenuItem{
		Name:        name,
		Price:       decimal.RequireFromString(price),
		Description: "test item",
		Volume:      "12oz",
		Image:       "https://images.cafe.local/test.jpg",
	}
	if err := db.Create(m).Error; err != nil {
		t.Fatalf("seed menu item: %v", err)
	}
	return m
}

// recordingNotifier counts cart-change notifications per user.
type recordingNotifier struct {
	calls []uint
}

func (n *recordingNotifier) CartChanged(userID uint) {
	n.calls = append(n.calls, userID)
}
