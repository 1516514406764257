package handlers

import (
	"context"
	"net/http"

	"delivery-system/internal/domain"
	"delivery-system/internal/service/customer"
)

type CustomerService interface {
	Register(ctx context.Context, req customer.RegisterRequest) (domain.Customer, error)
	Get(ctx context.Context, id int64) (domain.Customer, error)
	ToggleActive(ctx context.Context, id int64) (domain.Customer, error)
}

type CustomerHandler struct {
	service CustomerService
}

func NewCustomerHandler(service CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

func (h *CustomerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req customer.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}
	c, err := h.service.Register(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	c, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CustomerHandler) ToggleActive(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	c, err := h.service.ToggleActive(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}
