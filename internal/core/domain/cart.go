package domain

// CartItem is a snapshot of a Product plus the quantity the shopper
// selected. Product fields are copied at add time, so later catalog
// changes never alter cart or order contents.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}
