package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"delivery-system/internal/domain"
)

type CustomerRepository struct {
	store *Store
}

func NewCustomerRepository(store *Store) *CustomerRepository {
	return &CustomerRepository{store: store}
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	err := r.store.ext(ctx).QueryRowxContext(ctx, `
		INSERT INTO customers (name, email, active, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at
	`, c.Name, c.Email, c.Active).Scan(&c.ID, &c.CreatedAt)
	if isUniqueViolation(err) {
		return domain.NewConflictError("email already registered")
	}
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (domain.Customer, error) {
	var c domain.Customer
	err := sqlx.GetContext(ctx, r.store.ext(ctx), &c,
		`SELECT id, name, email, active, created_at FROM customers WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Customer{}, domain.NewNotFoundError("customer", id)
	}
	if err != nil {
		return domain.Customer{}, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

func (r *CustomerRepository) SetActive(ctx context.Context, id int64, active bool) error {
	res, err := r.store.ext(ctx).ExecContext(ctx,
		`UPDATE customers SET active = $1 WHERE id = $2`, active, id)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NewNotFoundError("customer", id)
	}
	return nil
}

// isUniqueViolation reports a Postgres 23505 error.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
