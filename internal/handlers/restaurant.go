package handlers

import (
	"context"
	"net/http"

	"delivery-system/internal/domain"
	"delivery-system/internal/service/restaurant"
)

type RestaurantService interface {
	Register(ctx context.Context, req restaurant.RegisterRequest) (domain.Restaurant, error)
	Get(ctx context.Context, id int64) (domain.Restaurant, error)
	ToggleActive(ctx context.Context, id int64) (domain.Restaurant, error)
}

type RestaurantHandler struct {
	service RestaurantService
}

func NewRestaurantHandler(service RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{service: service}
}

func (h *RestaurantHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req restaurant.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}
	rest, err := h.service.Register(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rest)
}

func (h *RestaurantHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	rest, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *RestaurantHandler) ToggleActive(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	rest, err := h.service.ToggleActive(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}
