package services

import (
	"github.com/Thariq15/react-cafe/entity"
	"github.com/shopspring/decimal"
)

// DeliveryFee is flat regardless of cart contents.
var DeliveryFee = decimal.RequireFromString("3.50")

var oneHundred = decimal.NewFromInt(100)

type Totals struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	Discount    int             `json:"discount"`
	DeliveryFee decimal.Decimal `json:"deliveryFee"`
	Total       decimal.Decimal `json:"total"`
}

// ComputeTotals derives order totals from a cart snapshot and a discount
// percent. Pure: the cart summary endpoint and checkout both call it and must
// get identical numbers for identical inputs.
func ComputeTotals(items []entity.CartItem, discountPercent int) Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}

	discounted := subtotal.Mul(oneHundred.Sub(decimal.NewFromInt(int64(discountPercent)))).Div(oneHundred)

	return Totals{
		Subtotal:    subtotal,
		Discount:    discountPercent,
		DeliveryFee: DeliveryFee,
		Total:       discounted.Add(DeliveryFee),
	}
}
