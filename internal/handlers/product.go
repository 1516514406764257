package handlers

import (
	"context"
	"net/http"

	"delivery-system/internal/domain"
	"delivery-system/internal/service/product"
)

type ProductService interface {
	Register(ctx context.Context, req product.RegisterRequest) (domain.Product, error)
	Get(ctx context.Context, id int64) (domain.Product, error)
	ListByRestaurant(ctx context.Context, restaurantID int64) ([]domain.Product, error)
	ToggleAvailability(ctx context.Context, id int64) (domain.Product, error)
}

type ProductHandler struct {
	service ProductService
}

func NewProductHandler(service ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

func (h *ProductHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req product.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}
	p, err := h.service.Register(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	p, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) ListByRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	products, err := h.service.ListByRestaurant(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"products": products})
}

func (h *ProductHandler) ToggleAvailability(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	p, err := h.service.ToggleAvailability(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}
