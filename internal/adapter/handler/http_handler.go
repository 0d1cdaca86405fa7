package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"tomishop/internal/core/catalog"
	"tomishop/internal/core/domain"
	"tomishop/internal/core/pricing"
	"tomishop/internal/core/service"
)

// HTTPHandler exposes the storefront collaborator contract over HTTP:
// catalog reads, the four cart operations, checkout and order history.
type HTTPHandler struct {
	catalog *catalog.Store
	cart    *service.CartService
	orders  *service.OrderService
}

func NewHTTPHandler(catalog *catalog.Store, cart *service.CartService, orders *service.OrderService) *HTTPHandler {
	return &HTTPHandler{catalog: catalog, cart: cart, orders: orders}
}

func (h *HTTPHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", h.HealthCheck)

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", h.ListProducts)
		r.Get("/products/{id}", h.GetProduct)
		r.Get("/categories", h.ListCategories)

		r.Get("/cart", h.GetCart)
		r.Post("/cart/items", h.AddToCart)
		r.Put("/cart/items/{id}", h.UpdateQuantity)
		r.Delete("/cart/items/{id}", h.RemoveItem)
		r.Delete("/cart", h.ClearCart)

		r.Post("/checkout", h.Checkout)
		r.Get("/orders", h.ListOrders)
	})

	return r
}

type response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type addItemRequest struct {
	ProductID int64 `json:"product_id"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type checkoutRequest struct {
	ShippingInfo  domain.ShippingInfo `json:"shipping_info"`
	PaymentMethod string              `json:"payment_method"`
}

type cartView struct {
	Items  []domain.CartItem `json:"items"`
	Totals pricing.Totals    `json:"totals"`
}

func (h *HTTPHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")

	products := h.catalog.Search(query, category)
	writeJSON(w, http.StatusOK, response{Success: true, Data: products})
}

func (h *HTTPHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, response{Success: false, Message: "invalid product id"})
		return
	}

	product, ok := h.catalog.Get(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, response{Success: false, Message: "product not found"})
		return
	}

	writeJSON(w, http.StatusOK, response{Success: true, Data: product})
}

func (h *HTTPHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, response{Success: true, Data: h.catalog.Categories()})
}

func (h *HTTPHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	view := cartView{
		Items:  h.cart.Items(),
		Totals: h.cart.Totals(),
	}
	writeJSON(w, http.StatusOK, response{Success: true, Data: view})
}

func (h *HTTPHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{Success: false, Message: "invalid request body"})
		return
	}

	product, ok := h.catalog.Get(req.ProductID)
	if !ok {
		writeJSON(w, http.StatusNotFound, response{Success: false, Message: "product not found"})
		return
	}

	if err := h.cart.AddToCart(r.Context(), product); err != nil {
		if errors.Is(err, service.ErrStockExceeded) {
			writeJSON(w, http.StatusConflict, response{Success: false, Message: "maximum stock reached"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, response{Success: false, Message: "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, response{Success: true, Message: "added to cart"})
}

func (h *HTTPHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, response{Success: false, Message: "invalid product id"})
		return
	}

	var req updateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{Success: false, Message: "invalid request body"})
		return
	}

	if err := h.cart.UpdateQuantity(r.Context(), id, req.Quantity); err != nil {
		writeJSON(w, http.StatusInternalServerError, response{Success: false, Message: "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, response{Success: true, Message: "quantity updated"})
}

func (h *HTTPHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, response{Success: false, Message: "invalid product id"})
		return
	}

	if err := h.cart.RemoveItem(r.Context(), id); err != nil {
		writeJSON(w, http.StatusInternalServerError, response{Success: false, Message: "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, response{Success: true, Message: "item removed"})
}

func (h *HTTPHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.cart.ClearCart(r.Context()); err != nil {
		writeJSON(w, http.StatusInternalServerError, response{Success: false, Message: "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, response{Success: true, Message: "cart cleared"})
}

func (h *HTTPHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{Success: false, Message: "invalid request body"})
		return
	}

	// Required-field gate: the ledger trusts its caller, so the gate
	// lives here with the rest of the presentation concerns.
	if req.ShippingInfo.Name == "" || req.ShippingInfo.Phone == "" || req.ShippingInfo.Address == "" {
		writeJSON(w, http.StatusBadRequest, response{Success: false, Message: "missing required fields"})
		return
	}
	if !validPaymentMethod(req.PaymentMethod) {
		writeJSON(w, http.StatusBadRequest, response{Success: false, Message: "invalid payment method"})
		return
	}

	order, err := h.orders.CompleteOrder(r.Context(), req.ShippingInfo, req.PaymentMethod)
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			writeJSON(w, http.StatusBadRequest, response{Success: false, Message: "cart is empty"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, response{Success: false, Message: "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, response{Success: true, Message: "order placed successfully", Data: order})
}

func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, response{Success: true, Data: h.orders.Orders()})
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func validPaymentMethod(method string) bool {
	for _, m := range domain.PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
