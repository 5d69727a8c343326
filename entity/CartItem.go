package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartItem is one pending line in a user's cart. One row per (user, menu item);
// quantity is never persisted at zero — a delta that would reach zero deletes
// the row instead.
type CartItem struct {
	gorm.Model
	UserID     uint `gorm:"uniqueIndex:idx_cart_user_menu" json:"userId"`
	User       User `json:"-"`
	MenuItemID uint `gorm:"uniqueIndex:idx_cart_user_menu" json:"menuItemId"`

	// snapshot of the menu item at add time
	Name  string          `json:"name"`
	Price decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Image string          `json:"image"`

	Quantity int `gorm:"not null" json:"quantity"`
}
