package events

import (
	"context"

	"delivery-system/internal/domain"
)

// Publisher receives order lifecycle events after they are committed.
// Core services only talk to this interface; the transport lives behind
// it.
type Publisher interface {
	OrderCreated(ctx context.Context, o domain.Order) error
	OrderStatusChanged(ctx context.Context, o domain.Order, previous domain.OrderStatus) error
}

// Nop discards all events. Used in tests and when no broker is
// configured.
type Nop struct{}

func (Nop) OrderCreated(context.Context, domain.Order) error { return nil }

func (Nop) OrderStatusChanged(context.Context, domain.Order, domain.OrderStatus) error {
	return nil
}
