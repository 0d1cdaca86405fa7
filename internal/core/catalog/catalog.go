package catalog

import (
	"sort"
	"strings"

	"tomishop/internal/core/domain"
)

// Store holds the fixed product list seeded at startup. Products never
// change after seeding; all accessors return copies.
type Store struct {
	products []domain.Product
}

func NewStore() *Store {
	return &Store{products: seedProducts()}
}

// List returns all products in catalog order.
func (s *Store) List() []domain.Product {
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Get returns the product with the given id.
func (s *Store) Get(id int64) (domain.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// Categories returns the distinct category labels in alphabetical
// order.
func (s *Store) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range s.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	sort.Strings(out)
	return out
}

// Search filters products by category and a case-insensitive query
// over name and description. An empty or "All" category matches every
// product; an empty query matches everything.
func (s *Store) Search(query, category string) []domain.Product {
	query = strings.ToLower(query)

	var out []domain.Product
	for _, p := range s.products {
		if category != "" && category != "All" && p.Category != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func seedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          1,
			Name:        "Wireless Headphones",
			Description: "Premium noise-cancelling headphones with 30hr battery life",
			Price:       4999,
			Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=500&q=80",
			Category:    "Electronics",
			Stock:       15,
		},
		{
			ID:          2,
			Name:        "Smart Watch",
			Description: "Fitness tracker with heart rate monitor and GPS",
			Price:       8999,
			Image:       "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=500&q=80",
			Category:    "Electronics",
			Stock:       8,
		},
		{
			ID:          3,
			Name:        "Leather Backpack",
			Description: "Stylish genuine leather backpack with laptop compartment",
			Price:       3499,
			Image:       "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=500&q=80",
			Category:    "Accessories",
			Stock:       12,
		},
		{
			ID:          4,
			Name:        "Running Shoes",
			Description: "Comfortable athletic shoes with advanced cushioning",
			Price:       5499,
			Image:       "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=500&q=80",
			Category:    "Clothing",
			Stock:       20,
		},
		{
			ID:          5,
			Name:        "Sunglasses",
			Description: "UV protection polarized sunglasses with premium frame",
			Price:       2299,
			Image:       "https://images.unsplash.com/photo-1572635196237-14b3f281503f?w=500&q=80",
			Category:    "Accessories",
			Stock:       25,
		},
		{
			ID:          6,
			Name:        "Denim Jacket",
			Description: "Classic fit denim jacket, perfect for any season",
			Price:       3999,
			Image:       "https://images.unsplash.com/photo-1576995853123-5a10305d93c0?w=500&q=80",
			Category:    "Clothing",
			Stock:       10,
		},
		{
			ID:          7,
			Name:        "Bluetooth Speaker",
			Description: "Waterproof portable speaker with 360° sound",
			Price:       2999,
			Image:       "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=500&q=80",
			Category:    "Electronics",
			Stock:       18,
		},
		{
			ID:          8,
			Name:        "Minimalist Wallet",
			Description: "Slim RFID-blocking wallet with card holder",
			Price:       1299,
			Image:       "https://images.unsplash.com/photo-1627123424574-724758594e93?w=500&q=80",
			Category:    "Accessories",
			Stock:       30,
		},
		{
			ID:          9,
			Name:        "Cotton T-Shirt",
			Description: "Premium organic cotton t-shirt, soft and breathable",
			Price:       899,
			Image:       "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=500&q=80",
			Category:    "Clothing",
			Stock:       50,
		},
		{
			ID:          10,
			Name:        "Wireless Mouse",
			Description: "Ergonomic wireless mouse with precision tracking",
			Price:       1799,
			Image:       "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?w=500&q=80",
			Category:    "Electronics",
			Stock:       22,
		},
	}
}
