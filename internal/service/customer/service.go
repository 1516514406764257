package customer

import (
	"context"
	"strings"

	"delivery-system/internal/domain"
)

type Store interface {
	Create(ctx context.Context, c *domain.Customer) error
	GetByID(ctx context.Context, id int64) (domain.Customer, error)
	SetActive(ctx context.Context, id int64, active bool) error
}

type Service struct {
	customers Store
}

func NewService(customers Store) *Service { return &Service{customers: customers} }

type RegisterRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (domain.Customer, error) {
	if strings.TrimSpace(req.Name) == "" {
		return domain.Customer{}, domain.NewValidationError("name", "name is required")
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return domain.Customer{}, domain.NewValidationError("email", "email is required")
	}

	c := domain.Customer{Name: req.Name, Email: email, Active: true}
	if err := s.customers.Create(ctx, &c); err != nil {
		return domain.Customer{}, err
	}
	return c, nil
}

func (s *Service) Get(ctx context.Context, id int64) (domain.Customer, error) {
	return s.customers.GetByID(ctx, id)
}

// ToggleActive flips the active flag, mirroring the single
// activate/deactivate endpoint of the admin surface.
func (s *Service) ToggleActive(ctx context.Context, id int64) (domain.Customer, error) {
	c, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return domain.Customer{}, err
	}
	if err := s.customers.SetActive(ctx, id, !c.Active); err != nil {
		return domain.Customer{}, err
	}
	c.Active = !c.Active
	return c, nil
}
