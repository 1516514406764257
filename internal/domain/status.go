package domain

import "fmt"

// OrderStatus lifecycle: CREATED -> CONFIRMED -> DELIVERED, with
// CANCELLED reachable from CREATED or CONFIRMED but never from DELIVERED.
// Once CANCELLED, no further transition.
type OrderStatus string

const (
	StatusCreated   OrderStatus = "CREATED"
	StatusConfirmed OrderStatus = "CONFIRMED"
	StatusDelivered OrderStatus = "DELIVERED"
	StatusCancelled OrderStatus = "CANCELLED"
)

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case StatusCreated, StatusConfirmed, StatusDelivered, StatusCancelled:
		return OrderStatus(s), nil
	}
	return "", NewValidationError("status", fmt.Sprintf("unknown order status %q", s))
}
