package order

import (
	"context"
	"maps"
	"sync"
	"time"

	"delivery-system/internal/domain"
)

// memDB backs the fake stores. All writes go through Transact, which
// serializes transactions with one mutex and restores a snapshot on
// error, mimicking the database's per-transaction rollback.
type memDB struct {
	mu          sync.Mutex
	customers   map[int64]domain.Customer
	restaurants map[int64]domain.Restaurant
	products    map[int64]domain.Product
	orders      map[int64]domain.Order
	nextOrderID int64

	saveOrderErr error // injected persistence failure
}

func newMemDB() *memDB {
	return &memDB{
		customers:   make(map[int64]domain.Customer),
		restaurants: make(map[int64]domain.Restaurant),
		products:    make(map[int64]domain.Product),
		orders:      make(map[int64]domain.Order),
		nextOrderID: 1,
	}
}

func (db *memDB) Transact(ctx context.Context, fn func(ctx context.Context) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	products := maps.Clone(db.products)
	orders := maps.Clone(db.orders)
	nextID := db.nextOrderID

	if err := fn(ctx); err != nil {
		db.products = products
		db.orders = orders
		db.nextOrderID = nextID
		return err
	}
	return nil
}

type memCustomers struct{ db *memDB }

func (s *memCustomers) GetByID(_ context.Context, id int64) (domain.Customer, error) {
	c, ok := s.db.customers[id]
	if !ok {
		return domain.Customer{}, domain.NewNotFoundError("customer", id)
	}
	return c, nil
}

type memRestaurants struct{ db *memDB }

func (s *memRestaurants) GetByID(_ context.Context, id int64) (domain.Restaurant, error) {
	r, ok := s.db.restaurants[id]
	if !ok {
		return domain.Restaurant{}, domain.NewNotFoundError("restaurant", id)
	}
	return r, nil
}

type memProducts struct{ db *memDB }

func (s *memProducts) GetByID(_ context.Context, id int64) (domain.Product, error) {
	p, ok := s.db.products[id]
	if !ok {
		return domain.Product{}, domain.NewNotFoundError("product", id)
	}
	return p, nil
}

// GetForUpdate relies on the transaction mutex for exclusivity.
func (s *memProducts) GetForUpdate(ctx context.Context, id int64) (domain.Product, error) {
	return s.GetByID(ctx, id)
}

func (s *memProducts) UpdateStock(_ context.Context, id int64, stock int) error {
	p, ok := s.db.products[id]
	if !ok {
		return domain.NewNotFoundError("product", id)
	}
	p.Stock = stock
	s.db.products[id] = p
	return nil
}

type memOrders struct{ db *memDB }

func (s *memOrders) Save(_ context.Context, o *domain.Order) error {
	if s.db.saveOrderErr != nil {
		return s.db.saveOrderErr
	}
	o.ID = s.db.nextOrderID
	s.db.nextOrderID++
	o.CreatedAt = time.Now().UTC()
	for i := range o.Items {
		o.Items[i].OrderID = o.ID
		o.Items[i].ID = int64(i + 1)
	}
	s.db.orders[o.ID] = *o
	return nil
}

func (s *memOrders) GetForUpdate(_ context.Context, id int64) (domain.Order, error) {
	o, ok := s.db.orders[id]
	if !ok {
		return domain.Order{}, domain.NewNotFoundError("order", id)
	}
	return o, nil
}

func (s *memOrders) GetWithItems(ctx context.Context, id int64) (domain.Order, error) {
	return s.GetForUpdate(ctx, id)
}

func (s *memOrders) ListByCustomer(_ context.Context, customerID int64) ([]domain.Order, error) {
	var res []domain.Order
	for _, o := range s.db.orders {
		if o.CustomerID == customerID {
			res = append(res, o)
		}
	}
	return res, nil
}

func (s *memOrders) UpdateStatus(_ context.Context, id int64, status domain.OrderStatus) error {
	o, ok := s.db.orders[id]
	if !ok {
		return domain.NewNotFoundError("order", id)
	}
	o.Status = status
	s.db.orders[id] = o
	return nil
}

// recordingPublisher captures emitted events.
type recordingPublisher struct {
	mu      sync.Mutex
	created []int64
	changed []int64
}

func (p *recordingPublisher) OrderCreated(_ context.Context, o domain.Order) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.created = append(p.created, o.ID)
	return nil
}

func (p *recordingPublisher) OrderStatusChanged(_ context.Context, o domain.Order, _ domain.OrderStatus) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.changed = append(p.changed, o.ID)
	return nil
}

// newTestService wires a Service over the fakes.
func newTestService(db *memDB) (*Service, *recordingPublisher) {
	pub := &recordingPublisher{}
	svc := NewService(
		db,
		&memCustomers{db: db},
		&memRestaurants{db: db},
		&memProducts{db: db},
		&memOrders{db: db},
		pub,
		nil,
	)
	return svc, pub
}
