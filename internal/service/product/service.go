package product

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"delivery-system/internal/domain"
)

type Store interface {
	Create(ctx context.Context, p *domain.Product) error
	GetByID(ctx context.Context, id int64) (domain.Product, error)
	SetAvailability(ctx context.Context, id int64, available bool) error
	ListByRestaurant(ctx context.Context, restaurantID int64) ([]domain.Product, error)
}

type RestaurantStore interface {
	GetByID(ctx context.Context, id int64) (domain.Restaurant, error)
}

type Service struct {
	products    Store
	restaurants RestaurantStore
}

func NewService(products Store, restaurants RestaurantStore) *Service {
	return &Service{products: products, restaurants: restaurants}
}

type RegisterRequest struct {
	RestaurantID int64           `json:"restaurant_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
}

// Register creates a product owned by an existing restaurant. The
// ownership is immutable after creation.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (domain.Product, error) {
	if strings.TrimSpace(req.Name) == "" {
		return domain.Product{}, domain.NewValidationError("name", "name is required")
	}
	if !req.Price.IsPositive() {
		return domain.Product{}, domain.NewValidationError("price", "price must be positive")
	}
	if req.Stock < 0 {
		return domain.Product{}, domain.NewValidationError("stock", "stock must not be negative")
	}
	if _, err := s.restaurants.GetByID(ctx, req.RestaurantID); err != nil {
		return domain.Product{}, err
	}

	p := domain.Product{
		RestaurantID: req.RestaurantID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Available:    true,
		Stock:        req.Stock,
	}
	if err := s.products.Create(ctx, &p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id int64) (domain.Product, error) {
	return s.products.GetByID(ctx, id)
}

func (s *Service) ListByRestaurant(ctx context.Context, restaurantID int64) ([]domain.Product, error) {
	if _, err := s.restaurants.GetByID(ctx, restaurantID); err != nil {
		return nil, err
	}
	return s.products.ListByRestaurant(ctx, restaurantID)
}

func (s *Service) ToggleAvailability(ctx context.Context, id int64) (domain.Product, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	if err := s.products.SetAvailability(ctx, id, !p.Available); err != nil {
		return domain.Product{}, err
	}
	p.Available = !p.Available
	return p, nil
}
