package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"delivery-system/internal/logger"
)

type Handler struct {
	Orders      *OrderHandler
	Customers   *CustomerHandler
	Restaurants *RestaurantHandler
	Products    *ProductHandler
}

func New(orders OrderService, customers CustomerService, restaurants RestaurantService, products ProductService) *Handler {
	return &Handler{
		Orders:      NewOrderHandler(orders),
		Customers:   NewCustomerHandler(customers),
		Restaurants: NewRestaurantHandler(restaurants),
		Products:    NewProductHandler(products),
	}
}

func Router(h *Handler, log *logger.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/orders", h.Orders.Create)
	mux.HandleFunc("POST /api/v1/orders/quote", h.Orders.Quote)
	mux.HandleFunc("GET /api/v1/orders/{id}", h.Orders.Get)
	mux.HandleFunc("PATCH /api/v1/orders/{id}/status", h.Orders.UpdateStatus)
	mux.HandleFunc("DELETE /api/v1/orders/{id}", h.Orders.Cancel)

	mux.HandleFunc("POST /api/v1/customers", h.Customers.Register)
	mux.HandleFunc("GET /api/v1/customers/{id}", h.Customers.Get)
	mux.HandleFunc("PATCH /api/v1/customers/{id}/active", h.Customers.ToggleActive)
	mux.HandleFunc("GET /api/v1/customers/{id}/orders", h.Orders.ListByCustomer)

	mux.HandleFunc("POST /api/v1/restaurants", h.Restaurants.Register)
	mux.HandleFunc("GET /api/v1/restaurants/{id}", h.Restaurants.Get)
	mux.HandleFunc("PATCH /api/v1/restaurants/{id}/active", h.Restaurants.ToggleActive)
	mux.HandleFunc("GET /api/v1/restaurants/{id}/products", h.Products.ListByRestaurant)

	mux.HandleFunc("POST /api/v1/products", h.Products.Register)
	mux.HandleFunc("GET /api/v1/products/{id}", h.Products.Get)
	mux.HandleFunc("PATCH /api/v1/products/{id}/availability", h.Products.ToggleAvailability)

	return withRequestID(withAccessLog(mux, log))
}

// withRequestID tags every request with a uuid carried through the
// context for log correlation.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(logger.WithRequestID(r.Context(), id)))
	})
}

func withAccessLog(next http.Handler, log *logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Info(r.Context(), "http_request", map[string]any{
			"method":      r.Method,
			"path":        r.URL.Path,
			"duration_ms": time.Since(start).Milliseconds(),
		})
	})
}
