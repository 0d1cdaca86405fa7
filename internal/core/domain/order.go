package domain

import "github.com/shopspring/decimal"

// Accepted payment method identifiers. They are stored on the order as
// plain text; no payment processing happens behind them.
const (
	PaymentGCash          = "GCash"
	PaymentCashOnDelivery = "COD"
	PaymentCard           = "Card"
)

// PaymentMethods is the closed set of checkout payment options.
var PaymentMethods = []string{PaymentGCash, PaymentCashOnDelivery, PaymentCard}

// ShippingInfo is the recipient data collected at checkout. All fields
// must be non-empty before an order may complete; the presentation
// layer owns that gate.
type ShippingInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Order is an immutable record of a completed checkout. Items are a
// frozen copy of the cart at completion time; the order never changes
// afterward.
type Order struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"`
	Items         []CartItem      `json:"items"`
	Total         decimal.Decimal `json:"total"`
	ShippingInfo  ShippingInfo    `json:"shippingInfo"`
	PaymentMethod string          `json:"paymentMethod"`
}
