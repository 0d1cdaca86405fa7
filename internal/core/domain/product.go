package domain

// Product is a catalog entry. Products are immutable once seeded; the
// catalog store hands out copies, never live references.
type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"` // whole currency units
	Image       string `json:"image"`
	Category    string `json:"category"`
	Stock       int    `json:"stock"`
}
