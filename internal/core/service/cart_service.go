package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"tomishop/internal/core/domain"
	"tomishop/internal/core/pricing"
	"tomishop/internal/port"
)

// CartStorageKey is the key-value store key holding the serialized cart.
const CartStorageKey = "tomishop-cart"

var ErrStockExceeded = errors.New("maximum stock reached")

// CartService holds the shopper's cart: an ordered list with one line
// per distinct product. Every mutation is rewritten in full to the
// key-value store before it returns.
type CartService struct {
	store    port.KeyValueStore
	notifier port.Notifier

	mu    sync.Mutex
	items []domain.CartItem
}

// NewCartService hydrates the cart from the store. A missing key means
// an empty cart; a stored value that fails to parse is a defect and
// fails construction.
func NewCartService(ctx context.Context, store port.KeyValueStore, notifier port.Notifier) (*CartService, error) {
	s := &CartService{store: store, notifier: notifier}

	raw, err := store.Get(ctx, CartStorageKey)
	if errors.Is(err, port.ErrKeyNotFound) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store.Get: %w", err)
	}

	if err := json.Unmarshal(raw, &s.items); err != nil {
		return nil, fmt.Errorf("unmarshal cart: %w", err)
	}

	return s, nil
}

// AddToCart inserts the product with quantity 1, or increments the
// existing line by 1 unless it already sits at the product's stock
// count.
func (s *CartService) AddToCart(ctx context.Context, product domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != product.ID {
			continue
		}

		if s.items[i].Quantity >= product.Stock {
			s.notifier.Notify(domain.Notice{Message: "Maximum stock reached!", Level: domain.NoticeError})
			return ErrStockExceeded
		}

		s.items[i].Quantity++
		if err := s.persist(ctx); err != nil {
			return err
		}
		s.notifier.Notify(domain.Notice{Message: "Quantity updated!", Level: domain.NoticeSuccess})
		return nil
	}

	s.items = append(s.items, domain.CartItem{Product: product, Quantity: 1})
	if err := s.persist(ctx); err != nil {
		return err
	}
	s.notifier.Notify(domain.Notice{Message: "Added to cart!", Level: domain.NoticeSuccess})
	return nil
}

// UpdateQuantity sets the line for the product to the exact quantity.
// Quantities below 1 are silently ignored, as are unknown product ids.
// No stock ceiling is enforced here; the storefront disables the
// increment control at the limit instead.
func (s *CartService) UpdateQuantity(ctx context.Context, productID int64, quantity int) error {
	if quantity < 1 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == productID {
			s.items[i].Quantity = quantity
			return s.persist(ctx)
		}
	}

	return nil
}

// RemoveItem deletes the line for the product. Unknown ids are a no-op.
func (s *CartService) RemoveItem(ctx context.Context, productID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != productID {
			continue
		}

		s.items = append(s.items[:i], s.items[i+1:]...)
		if err := s.persist(ctx); err != nil {
			return err
		}
		s.notifier.Notify(domain.Notice{Message: "Item removed from cart", Level: domain.NoticeInfo})
		return nil
	}

	return nil
}

// ClearCart empties the cart.
func (s *CartService) ClearCart(ctx context.Context) error {
	if err := s.clear(ctx); err != nil {
		return err
	}
	s.notifier.Notify(domain.Notice{Message: "Cart cleared", Level: domain.NoticeInfo})
	return nil
}

// Items returns a copy of the current cart lines in insertion order.
func (s *CartService) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Totals derives the current price breakdown.
func (s *CartService) Totals() pricing.Totals {
	return pricing.Calculate(s.Items())
}

// clear empties the cart without emitting a notice. Checkout routes
// through it so the only signal the shopper sees is the order
// confirmation.
func (s *CartService) clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	return s.persist(ctx)
}

// persist rewrites the full cart under its storage key.
// Caller must hold s.mu.
func (s *CartService) persist(ctx context.Context) error {
	items := s.items
	if items == nil {
		items = []domain.CartItem{}
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}

	if err := s.store.Set(ctx, CartStorageKey, raw); err != nil {
		return fmt.Errorf("store.Set: %w", err)
	}

	return nil
}
