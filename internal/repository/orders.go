package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"delivery-system/internal/domain"
)

type OrderRepository struct {
	store *Store
}

func NewOrderRepository(store *Store) *OrderRepository {
	return &OrderRepository{store: store}
}

// Save inserts the order together with all its items. The items live and
// die with the order (order_items.order_id cascades on delete), so they
// are never written outside this call.
func (r *OrderRepository) Save(ctx context.Context, o *domain.Order) error {
	ext := r.store.ext(ctx)

	err := ext.QueryRowxContext(ctx, `
		INSERT INTO orders (customer_id, restaurant_id, street, city, postal_code, total, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`, o.CustomerID, o.RestaurantID, o.Address.Street, o.Address.City, o.Address.PostalCode,
		o.Total, o.Status).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for i := range o.Items {
		item := &o.Items[i]
		item.OrderID = o.ID
		err := ext.QueryRowxContext(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, unit_price)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, item.OrderID, item.ProductID, item.Quantity, item.UnitPrice).Scan(&item.ID)
		if err != nil {
			return fmt.Errorf("insert order item %d: %w", item.ProductID, err)
		}
	}
	return nil
}

// GetForUpdate locks the order row for a status transition. Callers must
// be inside Store.Transact.
func (r *OrderRepository) GetForUpdate(ctx context.Context, id int64) (domain.Order, error) {
	return r.get(ctx, id, true)
}

func (r *OrderRepository) get(ctx context.Context, id int64, forUpdate bool) (domain.Order, error) {
	query := `SELECT id, customer_id, restaurant_id, street, city, postal_code, total, status, created_at
		FROM orders WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var o domain.Order
	err := r.store.ext(ctx).QueryRowxContext(ctx, query, id).Scan(
		&o.ID, &o.CustomerID, &o.RestaurantID,
		&o.Address.Street, &o.Address.City, &o.Address.PostalCode,
		&o.Total, &o.Status, &o.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Order{}, domain.NewNotFoundError("order", id)
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	res, err := r.store.ext(ctx).ExecContext(ctx,
		`UPDATE orders SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NewNotFoundError("order", id)
	}
	return nil
}

func (r *OrderRepository) GetWithItems(ctx context.Context, id int64) (domain.Order, error) {
	o, err := r.get(ctx, id, false)
	if err != nil {
		return domain.Order{}, err
	}
	if err := r.loadItems(ctx, &o); err != nil {
		return domain.Order{}, err
	}
	return o, nil
}

func (r *OrderRepository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Order, error) {
	rows, err := r.store.ext(ctx).QueryxContext(ctx, `
		SELECT id, customer_id, restaurant_id, street, city, postal_code, total, status, created_at
		FROM orders WHERE customer_id = $1 ORDER BY created_at DESC
	`, customerID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(
			&o.ID, &o.CustomerID, &o.RestaurantID,
			&o.Address.Street, &o.Address.City, &o.Address.PostalCode,
			&o.Total, &o.Status, &o.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	for i := range orders {
		if err := r.loadItems(ctx, &orders[i]); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (r *OrderRepository) loadItems(ctx context.Context, o *domain.Order) error {
	err := sqlx.SelectContext(ctx, r.store.ext(ctx), &o.Items, `
		SELECT id, order_id, product_id, quantity, unit_price
		FROM order_items WHERE order_id = $1 ORDER BY id
	`, o.ID)
	if err != nil {
		return fmt.Errorf("load order items: %w", err)
	}
	return nil
}
