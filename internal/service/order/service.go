package order

import (
	"context"

	"github.com/shopspring/decimal"

	"delivery-system/internal/domain"
	"delivery-system/internal/events"
	"delivery-system/internal/logger"
)

type ItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type CreateOrderRequest struct {
	CustomerID      int64          `json:"customer_id"`
	RestaurantID    int64          `json:"restaurant_id"`
	DeliveryAddress domain.Address `json:"delivery_address"`
	Items           []ItemRequest  `json:"items"`
}

// Service is the order facade: it runs the create/quote pipeline and
// guards the status lifecycle. The whole create pipeline (validate,
// reserve stock, price, persist) runs inside one transaction; any
// failure rolls back every stock decrement and the order write.
type Service struct {
	store     TxRunner
	orders    OrderStore
	validator *Validator
	guard     *InventoryGuard
	events    events.Publisher
	log       *logger.Logger
}

func NewService(
	store TxRunner,
	customers CustomerStore,
	restaurants RestaurantStore,
	products ProductStore,
	orders OrderStore,
	publisher events.Publisher,
	log *logger.Logger,
) *Service {
	return &Service{
		store:     store,
		orders:    orders,
		validator: NewValidator(customers, restaurants, products),
		guard:     NewInventoryGuard(products),
		events:    publisher,
		log:       log,
	}
}

func (s *Service) CreateOrder(ctx context.Context, req CreateOrderRequest) (domain.Order, error) {
	var order domain.Order

	err := s.store.Transact(ctx, func(ctx context.Context) error {
		customer, err := s.validator.ValidateCustomer(ctx, req.CustomerID, req.DeliveryAddress)
		if err != nil {
			return err
		}
		restaurant, err := s.validator.ValidateRestaurant(ctx, req.RestaurantID, req.DeliveryAddress)
		if err != nil {
			return err
		}
		products, err := s.validator.ValidateItems(ctx, req.Items, restaurant)
		if err != nil {
			return err
		}

		// Reservations happen in submission order; a later failure rolls
		// back the earlier decrements with the transaction.
		for _, item := range req.Items {
			if _, err := s.guard.ReserveStock(ctx, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}

		total, err := Total(req.Items, products, restaurant, req.DeliveryAddress)
		if err != nil {
			return err
		}

		order = domain.Order{
			CustomerID:   customer.ID,
			RestaurantID: restaurant.ID,
			Address:      req.DeliveryAddress,
			Total:        total,
			Status:       domain.StatusCreated,
		}
		for i, item := range req.Items {
			order.Items = append(order.Items, domain.OrderItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: products[i].Price,
			})
		}
		return s.orders.Save(ctx, &order)
	})
	if err != nil {
		return domain.Order{}, err
	}

	s.publish(ctx, "order_created", func() error { return s.events.OrderCreated(ctx, order) })
	return order, nil
}

// QuoteOrder runs the same validation and pricing pipeline without
// reserving stock or persisting anything. The price is advisory: stock
// may be taken by another order before the real submission.
func (s *Service) QuoteOrder(ctx context.Context, req CreateOrderRequest) (decimal.Decimal, error) {
	if _, err := s.validator.ValidateCustomer(ctx, req.CustomerID, req.DeliveryAddress); err != nil {
		return decimal.Zero, err
	}
	restaurant, err := s.validator.ValidateRestaurant(ctx, req.RestaurantID, req.DeliveryAddress)
	if err != nil {
		return decimal.Zero, err
	}
	products, err := s.validator.ValidateItems(ctx, req.Items, restaurant)
	if err != nil {
		return decimal.Zero, err
	}
	return Total(req.Items, products, restaurant, req.DeliveryAddress)
}

// ChangeOrderStatus sets an arbitrary status. The only guard is the
// terminal one: a cancelled order never changes again. Sequencing is
// deliberately permissive (DELIVERED may follow CREATED directly).
func (s *Service) ChangeOrderStatus(ctx context.Context, orderID int64, status domain.OrderStatus) (domain.Order, error) {
	return s.transition(ctx, orderID, "order_status_changed", func(current domain.OrderStatus) (domain.OrderStatus, error) {
		if current == domain.StatusCancelled {
			return "", domain.NewValidationError("", "cannot change status of a cancelled order")
		}
		return status, nil
	})
}

func (s *Service) CancelOrder(ctx context.Context, orderID int64) (domain.Order, error) {
	return s.transition(ctx, orderID, "order_cancelled", func(current domain.OrderStatus) (domain.OrderStatus, error) {
		if current == domain.StatusDelivered {
			return "", domain.NewValidationError("", "cannot cancel an already delivered order")
		}
		if current == domain.StatusCancelled {
			return "", domain.NewValidationError("", "cannot change status of a cancelled order")
		}
		return domain.StatusCancelled, nil
	})
}

// transition re-checks the current status under the order row lock
// before writing, so concurrent transitions serialize and the terminal
// invariant holds.
func (s *Service) transition(ctx context.Context, orderID int64, action string,
	next func(current domain.OrderStatus) (domain.OrderStatus, error)) (domain.Order, error) {

	var (
		order    domain.Order
		previous domain.OrderStatus
	)
	err := s.store.Transact(ctx, func(ctx context.Context) error {
		current, err := s.orders.GetForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		previous = current.Status

		status, err := next(current.Status)
		if err != nil {
			return err
		}
		if err := s.orders.UpdateStatus(ctx, orderID, status); err != nil {
			return err
		}

		order, err = s.orders.GetWithItems(ctx, orderID)
		return err
	})
	if err != nil {
		return domain.Order{}, err
	}

	s.publish(ctx, action, func() error { return s.events.OrderStatusChanged(ctx, order, previous) })
	return order, nil
}

func (s *Service) GetOrder(ctx context.Context, orderID int64) (domain.Order, error) {
	return s.orders.GetWithItems(ctx, orderID)
}

func (s *Service) ListCustomerOrders(ctx context.Context, customerID int64) ([]domain.Order, error) {
	return s.orders.ListByCustomer(ctx, customerID)
}

// publish runs after commit; a broker failure is logged and never fails
// the already-committed request.
func (s *Service) publish(ctx context.Context, action string, fn func() error) {
	if err := fn(); err != nil && s.log != nil {
		s.log.Error(ctx, action+"_publish_failed", err, nil)
	}
}
