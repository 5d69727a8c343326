package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MenuItem is the coffee catalog. The order lifecycle only ever reads it;
// cart rows carry their own copy of name/price/image.
type MenuItem struct {
	gorm.Model
	Name        string          `gorm:"not null" json:"name"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Description string          `json:"description"`
	Volume      string          `json:"volume"`
	Image       string          `json:"image"`
}

func (MenuItem) TableName() string { return "coffee_menu" }
