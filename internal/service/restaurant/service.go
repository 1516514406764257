package restaurant

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"delivery-system/internal/domain"
)

type Store interface {
	Create(ctx context.Context, r *domain.Restaurant) error
	GetByID(ctx context.Context, id int64) (domain.Restaurant, error)
	SetActive(ctx context.Context, id int64, active bool) error
}

type Service struct {
	restaurants Store
}

func NewService(restaurants Store) *Service { return &Service{restaurants: restaurants} }

type RegisterRequest struct {
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Phone       string          `json:"phone"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (domain.Restaurant, error) {
	if strings.TrimSpace(req.Name) == "" {
		return domain.Restaurant{}, domain.NewValidationError("name", "name is required")
	}
	if req.DeliveryFee.IsNegative() {
		return domain.Restaurant{}, domain.NewValidationError("delivery_fee", "delivery fee must not be negative")
	}

	r := domain.Restaurant{
		Name:        req.Name,
		Category:    req.Category,
		Phone:       req.Phone,
		DeliveryFee: req.DeliveryFee,
		Active:      true,
	}
	if err := s.restaurants.Create(ctx, &r); err != nil {
		return domain.Restaurant{}, err
	}
	return r, nil
}

func (s *Service) Get(ctx context.Context, id int64) (domain.Restaurant, error) {
	return s.restaurants.GetByID(ctx, id)
}

func (s *Service) ToggleActive(ctx context.Context, id int64) (domain.Restaurant, error) {
	r, err := s.restaurants.GetByID(ctx, id)
	if err != nil {
		return domain.Restaurant{}, err
	}
	if err := s.restaurants.SetActive(ctx, id, !r.Active); err != nil {
		return domain.Restaurant{}, err
	}
	r.Active = !r.Active
	return r, nil
}
