package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"tomishop/internal/adapter/storage"
	"tomishop/internal/core/catalog"
	"tomishop/internal/core/domain"
	"tomishop/internal/core/service"
)

// Scripted shopping session against the core services: add items, hit
// the stock ceiling, check out, rehydrate and verify the ledger. A
// quick end-to-end check without a browser or any backing store.

type printNotifier struct{}

func (printNotifier) Notify(notice domain.Notice) {
	fmt.Printf("  [%s] %s\n", notice.Level, notice.Message)
}

func main() {
	ctx := context.Background()

	cartStore := storage.NewMemoryAdapter()
	ordersStore := storage.NewMemoryAdapter()
	notifier := printNotifier{}

	cart, err := service.NewCartService(ctx, cartStore, notifier)
	if err != nil {
		log.Fatalf("failed to create cart: %v", err)
	}
	orders, err := service.NewOrderService(ctx, ordersStore, notifier, cart)
	if err != nil {
		log.Fatalf("failed to create orders: %v", err)
	}

	shop := catalog.NewStore()
	pass := true
	check := func(ok bool, format string, args ...interface{}) {
		if ok {
			fmt.Printf("PASS: "+format+"\n", args...)
		} else {
			pass = false
			fmt.Printf("FAIL: "+format+"\n", args...)
		}
	}

	headphones, _ := shop.Get(1)
	wallet, _ := shop.Get(8)
	watch, _ := shop.Get(2)

	// Fill the cart: one headphones, two wallets.
	fmt.Println("adding items...")
	if err := cart.AddToCart(ctx, headphones); err != nil {
		log.Fatalf("add headphones: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := cart.AddToCart(ctx, wallet); err != nil {
			log.Fatalf("add wallet: %v", err)
		}
	}

	// Drive the smart watch line to its stock ceiling.
	fmt.Println("exhausting smart watch stock...")
	var rejected bool
	for i := 0; i <= watch.Stock; i++ {
		if err := cart.AddToCart(ctx, watch); errors.Is(err, service.ErrStockExceeded) {
			rejected = true
		}
	}
	check(rejected, "add past stock count is rejected")

	if err := cart.RemoveItem(ctx, watch.ID); err != nil {
		log.Fatalf("remove watch: %v", err)
	}

	totals := cart.Totals()
	check(totals.Subtotal.String() == "7597", "subtotal = %s", totals.Subtotal)
	check(totals.Total.String() == "8508.64", "total = %s (free shipping over threshold)", totals.Total)

	fmt.Println("checking out...")
	shipping := domain.ShippingInfo{
		Name:    "Juan dela Cruz",
		Phone:   "0917 555 0199",
		Address: "123 Mabini St, Manila",
	}
	order, err := orders.CompleteOrder(ctx, shipping, domain.PaymentGCash)
	if err != nil {
		log.Fatalf("checkout failed: %v", err)
	}

	check(len(cart.Items()) == 0, "cart reset after checkout")
	check(len(orders.Orders()) == 1, "ledger holds 1 order")
	check(orders.Orders()[0].ID == order.ID, "new order is first")

	// Fresh services over the same stores must see the same state.
	fmt.Println("rehydrating from stores...")
	cart2, err := service.NewCartService(ctx, cartStore, notifier)
	if err != nil {
		log.Fatalf("rehydrate cart: %v", err)
	}
	orders2, err := service.NewOrderService(ctx, ordersStore, notifier, cart2)
	if err != nil {
		log.Fatalf("rehydrate orders: %v", err)
	}
	check(len(cart2.Items()) == 0, "rehydrated cart empty")
	check(len(orders2.Orders()) == 1 && orders2.Orders()[0].ID == order.ID, "rehydrated ledger matches")

	fmt.Println("========== SMOKE RESULTS ==========")
	if pass {
		fmt.Println("PASS: full shopping session OK")
	} else {
		fmt.Println("FAIL: see output above")
	}
	fmt.Println("===================================")
}
