package pricing

import (
	"github.com/shopspring/decimal"

	"tomishop/internal/core/domain"
)

const (
	freeShippingOver = 5000 // subtotal above this ships free
	flatShippingFee  = 150
)

var taxRate = decimal.RequireFromString("0.12")

// Totals is the derived price breakdown for a cart. Values are exact
// decimals; display rounding is a rendering concern.
type Totals struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	Tax         decimal.Decimal `json:"tax"`
	ShippingFee decimal.Decimal `json:"shippingFee"`
	Total       decimal.Decimal `json:"total"`
}

// Calculate derives subtotal, tax, shipping fee and total from the
// given cart items. An empty cart ships free trivially.
func Calculate(items []domain.CartItem) Totals {
	var units int64
	for _, item := range items {
		units += item.Price * int64(item.Quantity)
	}

	subtotal := decimal.NewFromInt(units)
	tax := subtotal.Mul(taxRate)

	shippingFee := decimal.Zero
	if units > 0 && units <= freeShippingOver {
		shippingFee = decimal.NewFromInt(flatShippingFee)
	}

	return Totals{
		Subtotal:    subtotal,
		Tax:         tax,
		ShippingFee: shippingFee,
		Total:       subtotal.Add(tax).Add(shippingFee),
	}
}
