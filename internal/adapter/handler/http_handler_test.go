package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tomishop/internal/adapter/storage"
	"tomishop/internal/core/catalog"
	"tomishop/internal/core/domain"
	"tomishop/internal/core/pricing"
	"tomishop/internal/core/service"
)

type nopNotifier struct{}

func (nopNotifier) Notify(domain.Notice) {}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()

	store := storage.NewMemoryAdapter()

	cart, err := service.NewCartService(context.Background(), store, nopNotifier{})
	require.NoError(t, err)

	orders, err := service.NewOrderService(context.Background(), store, nopNotifier{}, cart)
	require.NoError(t, err)

	return NewHTTPHandler(catalog.NewStore(), cart, orders).Routes()
}

func do(t *testing.T, router chi.Router, method, path string, body interface{}) (int, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec.Code, env
}

func TestListProducts(t *testing.T) {
	router := newTestRouter(t)

	status, env := do(t, router, http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, status)

	var products []domain.Product
	require.NoError(t, json.Unmarshal(env.Data, &products))
	assert.Len(t, products, 10)
}

func TestListProducts_Filtered(t *testing.T) {
	router := newTestRouter(t)

	status, env := do(t, router, http.MethodGet, "/api/products?category=Electronics", nil)
	require.Equal(t, http.StatusOK, status)

	var products []domain.Product
	require.NoError(t, json.Unmarshal(env.Data, &products))
	assert.Len(t, products, 4)

	_, env = do(t, router, http.MethodGet, "/api/products?q=headphones", nil)
	require.NoError(t, json.Unmarshal(env.Data, &products))
	assert.Len(t, products, 1)
}

func TestGetProduct(t *testing.T) {
	router := newTestRouter(t)

	status, env := do(t, router, http.MethodGet, "/api/products/1", nil)
	require.Equal(t, http.StatusOK, status)

	var product domain.Product
	require.NoError(t, json.Unmarshal(env.Data, &product))
	assert.Equal(t, "Wireless Headphones", product.Name)

	status, _ = do(t, router, http.MethodGet, "/api/products/999", nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = do(t, router, http.MethodGet, "/api/products/abc", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestListCategories(t *testing.T) {
	router := newTestRouter(t)

	status, env := do(t, router, http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, status)

	var categories []string
	require.NoError(t, json.Unmarshal(env.Data, &categories))
	assert.Equal(t, []string{"Accessories", "Clothing", "Electronics"}, categories)
}

func getCart(t *testing.T, router chi.Router) cartView {
	t.Helper()

	status, env := do(t, router, http.MethodGet, "/api/cart", nil)
	require.Equal(t, http.StatusOK, status)

	var view struct {
		Items  []domain.CartItem `json:"items"`
		Totals pricing.Totals    `json:"totals"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &view))
	return cartView{Items: view.Items, Totals: view.Totals}
}

func TestCartFlow(t *testing.T) {
	router := newTestRouter(t)

	status, _ := do(t, router, http.MethodPost, "/api/cart/items", addItemRequest{ProductID: 1})
	require.Equal(t, http.StatusOK, status)

	view := getCart(t, router)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 1, view.Items[0].Quantity)
	assert.Equal(t, "4999", view.Totals.Subtotal.String())

	status, _ = do(t, router, http.MethodPut, "/api/cart/items/1", updateQuantityRequest{Quantity: 3})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 3, getCart(t, router).Items[0].Quantity)

	status, _ = do(t, router, http.MethodDelete, "/api/cart/items/1", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, getCart(t, router).Items)
}

func TestClearCart(t *testing.T) {
	router := newTestRouter(t)

	do(t, router, http.MethodPost, "/api/cart/items", addItemRequest{ProductID: 1})
	do(t, router, http.MethodPost, "/api/cart/items", addItemRequest{ProductID: 8})

	status, _ := do(t, router, http.MethodDelete, "/api/cart", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, getCart(t, router).Items)
}

func TestAddToCart_UnknownProduct(t *testing.T) {
	router := newTestRouter(t)

	status, env := do(t, router, http.MethodPost, "/api/cart/items", addItemRequest{ProductID: 999})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "product not found", env.Message)
}

func TestAddToCart_StockLimit(t *testing.T) {
	router := newTestRouter(t)

	// Product 2 has a stock of 8.
	for i := 0; i < 8; i++ {
		status, _ := do(t, router, http.MethodPost, "/api/cart/items", addItemRequest{ProductID: 2})
		require.Equal(t, http.StatusOK, status, "add %d should succeed", i+1)
	}

	status, env := do(t, router, http.MethodPost, "/api/cart/items", addItemRequest{ProductID: 2})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "maximum stock reached", env.Message)
}

func TestCheckout_Validation(t *testing.T) {
	complete := domain.ShippingInfo{Name: "Juan", Phone: "0917 555 0199", Address: "Manila"}

	tests := []struct {
		name     string
		request  checkoutRequest
		wantCode int
		wantMsg  string
	}{
		{
			name:     "missing shipping name",
			request:  checkoutRequest{ShippingInfo: domain.ShippingInfo{Phone: "1", Address: "a"}, PaymentMethod: domain.PaymentGCash},
			wantCode: http.StatusBadRequest,
			wantMsg:  "missing required fields",
		},
		{
			name:     "missing shipping address",
			request:  checkoutRequest{ShippingInfo: domain.ShippingInfo{Name: "n", Phone: "1"}, PaymentMethod: domain.PaymentGCash},
			wantCode: http.StatusBadRequest,
			wantMsg:  "missing required fields",
		},
		{
			name:     "invalid payment method",
			request:  checkoutRequest{ShippingInfo: complete, PaymentMethod: "Barter"},
			wantCode: http.StatusBadRequest,
			wantMsg:  "invalid payment method",
		},
		{
			name:     "empty cart",
			request:  checkoutRequest{ShippingInfo: complete, PaymentMethod: domain.PaymentGCash},
			wantCode: http.StatusBadRequest,
			wantMsg:  "cart is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t)

			status, env := do(t, router, http.MethodPost, "/api/checkout", tt.request)
			assert.Equal(t, tt.wantCode, status)
			assert.Equal(t, tt.wantMsg, env.Message)
		})
	}
}

func TestCheckout_Success(t *testing.T) {
	router := newTestRouter(t)

	do(t, router, http.MethodPost, "/api/cart/items", addItemRequest{ProductID: 1})

	req := checkoutRequest{
		ShippingInfo:  domain.ShippingInfo{Name: "Juan dela Cruz", Phone: "0917 555 0199", Address: "123 Mabini St, Manila"},
		PaymentMethod: domain.PaymentGCash,
	}
	status, env := do(t, router, http.MethodPost, "/api/checkout", req)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)

	var order domain.Order
	require.NoError(t, json.Unmarshal(env.Data, &order))
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, "5748.88", order.Total.String())

	assert.Empty(t, getCart(t, router).Items)

	status, env = do(t, router, http.MethodGet, "/api/orders", nil)
	require.Equal(t, http.StatusOK, status)

	var history []domain.Order
	require.NoError(t, json.Unmarshal(env.Data, &history))
	require.Len(t, history, 1)
	assert.Equal(t, order.ID, history[0].ID)
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestInvalidBody(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/api/cart/items", "/api/checkout"} {
		req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader([]byte("not json")))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, fmt.Sprintf("POST %s", path))
	}
}
