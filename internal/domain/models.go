package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type Restaurant struct {
	ID          int64           `db:"id" json:"id"`
	Name        string          `db:"name" json:"name"`
	Category    string          `db:"category" json:"category"`
	Phone       string          `db:"phone" json:"phone"`
	DeliveryFee decimal.Decimal `db:"delivery_fee" json:"delivery_fee"`
	Active      bool            `db:"active" json:"active"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}

type Product struct {
	ID           int64           `db:"id" json:"id"`
	RestaurantID int64           `db:"restaurant_id" json:"restaurant_id"`
	Name         string          `db:"name" json:"name"`
	Description  string          `db:"description" json:"description"`
	Price        decimal.Decimal `db:"price" json:"price"`
	Available    bool            `db:"available" json:"available"`
	Stock        int             `db:"stock" json:"stock"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
}

// Address is the delivery destination of a single order. It is embedded
// into the order row, not a standalone entity.
type Address struct {
	Street     string `db:"street" json:"street"`
	City       string `db:"city" json:"city"`
	PostalCode string `db:"postal_code" json:"postal_code"`
}

// OrderItem snapshots the unit price at order time; later product price
// changes do not affect persisted orders.
type OrderItem struct {
	ID        int64           `db:"id" json:"id"`
	OrderID   int64           `db:"order_id" json:"-"`
	ProductID int64           `db:"product_id" json:"product_id"`
	Quantity  int             `db:"quantity" json:"quantity"`
	UnitPrice decimal.Decimal `db:"unit_price" json:"unit_price"`
}

type Order struct {
	ID           int64           `db:"id" json:"id"`
	CustomerID   int64           `db:"customer_id" json:"customer_id"`
	RestaurantID int64           `db:"restaurant_id" json:"restaurant_id"`
	Address      Address         `db:"-" json:"delivery_address"`
	Items        []OrderItem     `db:"-" json:"items"`
	Total        decimal.Decimal `db:"total" json:"total"`
	Status       OrderStatus     `db:"status" json:"status"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
}

func (a Address) Empty() bool {
	return a.Street == "" && a.City == "" && a.PostalCode == ""
}
