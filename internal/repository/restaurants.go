package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"delivery-system/internal/domain"
)

type RestaurantRepository struct {
	store *Store
}

func NewRestaurantRepository(store *Store) *RestaurantRepository {
	return &RestaurantRepository{store: store}
}

func (r *RestaurantRepository) Create(ctx context.Context, rest *domain.Restaurant) error {
	err := r.store.ext(ctx).QueryRowxContext(ctx, `
		INSERT INTO restaurants (name, category, phone, delivery_fee, active, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`, rest.Name, rest.Category, rest.Phone, rest.DeliveryFee, rest.Active).Scan(&rest.ID, &rest.CreatedAt)
	if isUniqueViolation(err) {
		return domain.NewConflictError("restaurant name already registered")
	}
	if err != nil {
		return fmt.Errorf("insert restaurant: %w", err)
	}
	return nil
}

func (r *RestaurantRepository) GetByID(ctx context.Context, id int64) (domain.Restaurant, error) {
	var rest domain.Restaurant
	err := sqlx.GetContext(ctx, r.store.ext(ctx), &rest,
		`SELECT id, name, category, phone, delivery_fee, active, created_at
		 FROM restaurants WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Restaurant{}, domain.NewNotFoundError("restaurant", id)
	}
	if err != nil {
		return domain.Restaurant{}, fmt.Errorf("get restaurant: %w", err)
	}
	return rest, nil
}

func (r *RestaurantRepository) SetActive(ctx context.Context, id int64, active bool) error {
	res, err := r.store.ext(ctx).ExecContext(ctx,
		`UPDATE restaurants SET active = $1 WHERE id = $2`, active, id)
	if err != nil {
		return fmt.Errorf("update restaurant: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NewNotFoundError("restaurant", id)
	}
	return nil
}
