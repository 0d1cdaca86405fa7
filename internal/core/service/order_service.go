package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"tomishop/internal/core/domain"
	"tomishop/internal/core/pricing"
	"tomishop/internal/port"
)

// OrdersStorageKey is the key-value store key holding the serialized
// order history, most recent first.
const OrdersStorageKey = "tomishop-orders"

var ErrEmptyCart = errors.New("cart is empty")

const orderDateLayout = "January 2, 2006 at 3:04 PM"

// OrderService is the append-only order ledger. Orders are immutable
// once placed; new orders go to the front of the list.
type OrderService struct {
	store    port.KeyValueStore
	notifier port.Notifier
	cart     *CartService
	now      func() time.Time

	mu     sync.Mutex
	orders []domain.Order
}

// NewOrderService hydrates the order history from the store. A missing
// key means no orders yet.
func NewOrderService(ctx context.Context, store port.KeyValueStore, notifier port.Notifier, cart *CartService) (*OrderService, error) {
	s := &OrderService{
		store:    store,
		notifier: notifier,
		cart:     cart,
		now:      time.Now,
	}

	raw, err := store.Get(ctx, OrdersStorageKey)
	if errors.Is(err, port.ErrKeyNotFound) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store.Get: %w", err)
	}

	if err := json.Unmarshal(raw, &s.orders); err != nil {
		return nil, fmt.Errorf("unmarshal orders: %w", err)
	}

	return s, nil
}

// CompleteOrder freezes the current cart into a new Order, prepends it
// to the ledger and resets the cart. An empty cart is rejected without
// a notice; validating the shipping fields is the caller's gate.
func (s *OrderService) CompleteOrder(ctx context.Context, shipping domain.ShippingInfo, paymentMethod string) (domain.Order, error) {
	items := s.cart.Items()
	if len(items) == 0 {
		return domain.Order{}, ErrEmptyCart
	}

	totals := pricing.Calculate(items)

	order := domain.Order{
		ID:            uuid.NewString(),
		Date:          s.now().Format(orderDateLayout),
		Items:         items,
		Total:         totals.Total,
		ShippingInfo:  shipping,
		PaymentMethod: paymentMethod,
	}

	s.mu.Lock()
	updated := make([]domain.Order, 0, len(s.orders)+1)
	updated = append(updated, order)
	updated = append(updated, s.orders...)

	if err := s.persist(ctx, updated); err != nil {
		s.mu.Unlock()
		return domain.Order{}, err
	}
	s.orders = updated
	s.mu.Unlock()

	if err := s.cart.clear(ctx); err != nil {
		return domain.Order{}, err
	}

	s.notifier.Notify(domain.Notice{Message: "Order placed successfully!", Level: domain.NoticeSuccess})
	return order, nil
}

// Orders returns a copy of the order history, most recent first.
func (s *OrderService) Orders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *OrderService) persist(ctx context.Context, orders []domain.Order) error {
	raw, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("marshal orders: %w", err)
	}

	if err := s.store.Set(ctx, OrdersStorageKey, raw); err != nil {
		return fmt.Errorf("store.Set: %w", err)
	}

	return nil
}
