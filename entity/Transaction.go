package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction statuses. Pending is set once by checkout; admins move a
// transaction between In Progress and Completed afterwards.
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

// Transaction is the durable record produced by checkout. Everything except
// Status is frozen at creation time.
type Transaction struct {
	gorm.Model
	UserID uint `gorm:"index" json:"uid"`
	User   User `json:"-"`

	Subtotal    decimal.Decimal `gorm:"type:decimal(10,2)" json:"subtotal"`
	Discount    int             `json:"discount"` // percent, 0-100
	DeliveryFee decimal.Decimal `gorm:"type:decimal(10,2)" json:"deliveryFee"`
	Total       decimal.Decimal `gorm:"type:decimal(10,2)" json:"total"`

	Date   time.Time `json:"date"`
	Status string    `gorm:"not null;default:Pending" json:"status"`

	Items []TransactionItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
