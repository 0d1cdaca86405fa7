package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tomishop/internal/core/catalog"
)

func TestList(t *testing.T) {
	store := catalog.NewStore()

	products := store.List()
	require.Len(t, products, 10)

	// Returned slice is a copy; mutating it must not touch the store.
	products[0].Name = "mutated"
	assert.Equal(t, "Wireless Headphones", store.List()[0].Name)
}

func TestGet(t *testing.T) {
	store := catalog.NewStore()

	product, ok := store.Get(1)
	require.True(t, ok)
	assert.Equal(t, "Wireless Headphones", product.Name)
	assert.EqualValues(t, 4999, product.Price)
	assert.Equal(t, 15, product.Stock)

	_, ok = store.Get(999)
	assert.False(t, ok)
}

func TestCategories(t *testing.T) {
	store := catalog.NewStore()

	assert.Equal(t, []string{"Accessories", "Clothing", "Electronics"}, store.Categories())
}

func TestSearch(t *testing.T) {
	store := catalog.NewStore()

	tests := []struct {
		name     string
		query    string
		category string
		want     int
	}{
		{"no filters returns everything", "", "", 10},
		{"All category returns everything", "", "All", 10},
		{"category filter", "", "Electronics", 4},
		{"query matches name case-insensitively", "HEADPHONES", "", 1},
		{"query matches description", "laptop compartment", "", 1},
		{"query and category combined", "premium", "Clothing", 1},
		{"no match", "nonexistent", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, store.Search(tt.query, tt.category), tt.want)
		})
	}
}
