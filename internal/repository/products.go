package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"delivery-system/internal/domain"
)

type ProductRepository struct {
	store *Store
}

func NewProductRepository(store *Store) *ProductRepository {
	return &ProductRepository{store: store}
}

const productColumns = `id, restaurant_id, name, description, price, available, stock, created_at`

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) error {
	err := r.store.ext(ctx).QueryRowxContext(ctx, `
		INSERT INTO products (restaurant_id, name, description, price, available, stock, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`, p.RestaurantID, p.Name, p.Description, p.Price, p.Available, p.Stock).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (domain.Product, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate locks the product row (SELECT ... FOR UPDATE) for the
// duration of the surrounding transaction. Callers must be inside
// Store.Transact.
func (r *ProductRepository) GetForUpdate(ctx context.Context, id int64) (domain.Product, error) {
	return r.get(ctx, id, true)
}

func (r *ProductRepository) get(ctx context.Context, id int64, forUpdate bool) (domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var p domain.Product
	err := sqlx.GetContext(ctx, r.store.ext(ctx), &p, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, domain.NewNotFoundError("product", id)
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func (r *ProductRepository) UpdateStock(ctx context.Context, id int64, stock int) error {
	res, err := r.store.ext(ctx).ExecContext(ctx,
		`UPDATE products SET stock = $1 WHERE id = $2`, stock, id)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NewNotFoundError("product", id)
	}
	return nil
}

func (r *ProductRepository) SetAvailability(ctx context.Context, id int64, available bool) error {
	res, err := r.store.ext(ctx).ExecContext(ctx,
		`UPDATE products SET available = $1 WHERE id = $2`, available, id)
	if err != nil {
		return fmt.Errorf("update product availability: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NewNotFoundError("product", id)
	}
	return nil
}

func (r *ProductRepository) ListByRestaurant(ctx context.Context, restaurantID int64) ([]domain.Product, error) {
	var products []domain.Product
	err := sqlx.SelectContext(ctx, r.store.ext(ctx), &products,
		`SELECT `+productColumns+` FROM products WHERE restaurant_id = $1 ORDER BY id`, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}
