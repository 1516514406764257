package handlers

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"delivery-system/internal/domain"
	"delivery-system/internal/service/order"
)

// OrderService is the facade surface the HTTP layer needs; satisfied by
// *order.Service.
type OrderService interface {
	CreateOrder(ctx context.Context, req order.CreateOrderRequest) (domain.Order, error)
	QuoteOrder(ctx context.Context, req order.CreateOrderRequest) (decimal.Decimal, error)
	ChangeOrderStatus(ctx context.Context, orderID int64, status domain.OrderStatus) (domain.Order, error)
	CancelOrder(ctx context.Context, orderID int64) (domain.Order, error)
	GetOrder(ctx context.Context, orderID int64) (domain.Order, error)
	ListCustomerOrders(ctx context.Context, customerID int64) ([]domain.Order, error)
}

type OrderHandler struct {
	service OrderService
}

func NewOrderHandler(service OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req order.CreateOrderRequest
	if !decodeBody(w, r, &req) {
		return
	}
	o, err := h.service.CreateOrder(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, o)
}

func (h *OrderHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req order.CreateOrderRequest
	if !decodeBody(w, r, &req) {
		return
	}
	total, err := h.service.QuoteOrder(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"total": total})
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	o, err := h.service.GetOrder(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *OrderHandler) ListByCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	orders, err := h.service.ListCustomerOrders(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"orders": orders})
}

func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	status, err := domain.ParseOrderStatus(req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	o, err := h.service.ChangeOrderStatus(r.Context(), id, status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	o, err := h.service.CancelOrder(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}
