package order

import (
	"context"

	"delivery-system/internal/domain"
)

// Narrow consumer-side interfaces over the repository layer; satisfied
// by internal/repository and by the in-memory fakes in tests.

type CustomerStore interface {
	GetByID(ctx context.Context, id int64) (domain.Customer, error)
}

type RestaurantStore interface {
	GetByID(ctx context.Context, id int64) (domain.Restaurant, error)
}

type ProductStore interface {
	GetByID(ctx context.Context, id int64) (domain.Product, error)
	// GetForUpdate takes the exclusive per-product row lock for the
	// duration of the surrounding transaction.
	GetForUpdate(ctx context.Context, id int64) (domain.Product, error)
	UpdateStock(ctx context.Context, id int64, stock int) error
}

type OrderStore interface {
	Save(ctx context.Context, o *domain.Order) error
	GetForUpdate(ctx context.Context, id int64) (domain.Order, error)
	GetWithItems(ctx context.Context, id int64) (domain.Order, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error
}

// TxRunner is the transaction boundary. Everything run inside fn either
// commits as one unit or rolls back completely.
type TxRunner interface {
	Transact(ctx context.Context, fn func(ctx context.Context) error) error
}
