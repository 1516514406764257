package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"delivery-system/internal/connections/rabbitmq"
	"delivery-system/internal/domain"
)

const (
	exchange         = "orders_topic"
	keyCreated       = "order.created"
	keyStatusChanged = "order.status_changed"
	publishTimeout   = 5 * time.Second
)

// RabbitMQ publishes order events to a durable topic exchange with
// persistent messages and publisher confirms.
type RabbitMQ struct {
	client *rabbitmq.Client
}

func NewRabbitMQ(client *rabbitmq.Client) (*RabbitMQ, error) {
	if err := client.Channel().ExchangeDeclare(
		exchange, "topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &RabbitMQ{client: client}, nil
}

type orderEvent struct {
	OrderID      int64  `json:"order_id"`
	CustomerID   int64  `json:"customer_id"`
	RestaurantID int64  `json:"restaurant_id"`
	Status       string `json:"status"`
	Previous     string `json:"previous_status,omitempty"`
	Total        string `json:"total"`
	OccurredAt   string `json:"occurred_at"`
}

func (p *RabbitMQ) OrderCreated(ctx context.Context, o domain.Order) error {
	return p.publish(ctx, keyCreated, orderEvent{
		OrderID:      o.ID,
		CustomerID:   o.CustomerID,
		RestaurantID: o.RestaurantID,
		Status:       string(o.Status),
		Total:        o.Total.String(),
		OccurredAt:   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

func (p *RabbitMQ) OrderStatusChanged(ctx context.Context, o domain.Order, previous domain.OrderStatus) error {
	return p.publish(ctx, keyStatusChanged, orderEvent{
		OrderID:      o.ID,
		CustomerID:   o.CustomerID,
		RestaurantID: o.RestaurantID,
		Status:       string(o.Status),
		Previous:     string(previous),
		Total:        o.Total.String(),
		OccurredAt:   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

func (p *RabbitMQ) publish(ctx context.Context, key string, ev orderEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	headers := amqp.Table{"x-source": "delivery-system"}
	if err := p.client.Publish(ctx, exchange, key, body, headers, uuid.NewString()); err != nil {
		return fmt.Errorf("publish %s: %w", key, err)
	}
	return nil
}
