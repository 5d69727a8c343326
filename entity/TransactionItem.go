package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionItem is a frozen copy of a cart line at checkout time. It does
// not reference the live cart or menu row, so later menu edits never change
// what a transaction says was ordered.
type TransactionItem struct {
	gorm.Model
	TransactionID uint `gorm:"index" json:"transactionId"`

	MenuItemID uint            `json:"menuItemId"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Image      string          `json:"image"`
	Quantity   int             `json:"quantity"`
}
