package order

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"delivery-system/internal/domain"
)

func seedBase(db *memDB) {
	db.customers[1] = domain.Customer{ID: 1, Name: "Joao Silva", Email: "joao@example.com", Active: true}
	db.customers[2] = domain.Customer{ID: 2, Name: "Maria Santos", Email: "maria@example.com", Active: false}
	db.restaurants[1] = domain.Restaurant{
		ID: 1, Name: "Pizzaria Bella", Active: true,
		DeliveryFee: decimal.RequireFromString("8.50"),
	}
	db.restaurants[2] = domain.Restaurant{ID: 2, Name: "Sushi House", Active: false}
	db.products[10] = domain.Product{
		ID: 10, RestaurantID: 1, Name: "Pizza Margherita",
		Price: decimal.RequireFromString("29.90"), Available: true, Stock: 20,
	}
	db.products[11] = domain.Product{
		ID: 11, RestaurantID: 1, Name: "Refrigerante",
		Price: decimal.RequireFromString("4.50"), Available: true, Stock: 50,
	}
	db.products[12] = domain.Product{
		ID: 12, RestaurantID: 1, Name: "Pizza Calabresa",
		Price: decimal.RequireFromString("33.00"), Available: false, Stock: 20,
	}
	db.products[20] = domain.Product{
		ID: 20, RestaurantID: 2, Name: "Sushi Combo",
		Price: decimal.RequireFromString("59.90"), Available: true, Stock: 20,
	}
}

func goodAddress() domain.Address {
	return domain.Address{Street: "Rua das Flores 123", City: "Curitiba", PostalCode: "80010"}
}

func newValidatorUnderTest(t *testing.T) (*Validator, *memDB) {
	t.Helper()
	db := newMemDB()
	seedBase(db)
	v := NewValidator(&memCustomers{db: db}, &memRestaurants{db: db}, &memProducts{db: db})
	return v, db
}

func TestValidateCustomer(t *testing.T) {
	v, _ := newValidatorUnderTest(t)
	ctx := context.Background()

	c, err := v.ValidateCustomer(ctx, 1, goodAddress())
	require.NoError(t, err)
	assert.Equal(t, int64(1), c.ID)

	_, err = v.ValidateCustomer(ctx, 99, goodAddress())
	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "customer", nf.Entity)

	_, err = v.ValidateCustomer(ctx, 2, goodAddress())
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "customer not active", verr.Message)
}

func TestValidateCustomer_AddressFields(t *testing.T) {
	v, _ := newValidatorUnderTest(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		addr  domain.Address
		field string
	}{
		{"empty address", domain.Address{}, "delivery_address"},
		{"missing street", domain.Address{City: "Curitiba", PostalCode: "80010"}, "delivery_address.street"},
		{"missing city", domain.Address{Street: "Rua X", PostalCode: "80010"}, "delivery_address.city"},
		{"missing postal code", domain.Address{Street: "Rua X", City: "Curitiba"}, "delivery_address.postal_code"},
		{"blank street", domain.Address{Street: "   ", City: "Curitiba", PostalCode: "80010"}, "delivery_address.street"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.ValidateCustomer(ctx, 1, tt.addr)
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestValidateRestaurant(t *testing.T) {
	v, _ := newValidatorUnderTest(t)
	ctx := context.Background()

	r, err := v.ValidateRestaurant(ctx, 1, goodAddress())
	require.NoError(t, err)
	assert.Equal(t, int64(1), r.ID)

	_, err = v.ValidateRestaurant(ctx, 99, goodAddress())
	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)

	_, err = v.ValidateRestaurant(ctx, 2, goodAddress())
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "restaurant not active", verr.Message)

	// the delivery predicate needs a non-empty city
	_, err = v.ValidateRestaurant(ctx, 1, domain.Address{Street: "Rua X", City: "  ", PostalCode: "80010"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "restaurant does not deliver to this address", verr.Message)
}

func TestValidateItems(t *testing.T) {
	v, db := newValidatorUnderTest(t)
	ctx := context.Background()
	restaurant := db.restaurants[1]

	products, err := v.ValidateItems(ctx, []ItemRequest{
		{ProductID: 10, Quantity: 2},
		{ProductID: 11, Quantity: 1},
	}, restaurant)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, int64(10), products[0].ID)
	assert.Equal(t, int64(11), products[1].ID)
}

func TestValidateItems_Errors(t *testing.T) {
	v, db := newValidatorUnderTest(t)
	ctx := context.Background()
	restaurant := db.restaurants[1]

	_, err := v.ValidateItems(ctx, nil, restaurant)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "items", verr.Field)

	for _, qty := range []int{0, -1, 51} {
		_, err = v.ValidateItems(ctx, []ItemRequest{{ProductID: 10, Quantity: qty}}, restaurant)
		require.ErrorAs(t, err, &verr, "quantity %d", qty)
		assert.Equal(t, "quantity", verr.Field)
	}

	// boundary quantity is fine
	_, err = v.ValidateItems(ctx, []ItemRequest{{ProductID: 11, Quantity: 50}}, restaurant)
	require.NoError(t, err)

	_, err = v.ValidateItems(ctx, []ItemRequest{{ProductID: 404, Quantity: 1}}, restaurant)
	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "product", nf.Entity)

	_, err = v.ValidateItems(ctx, []ItemRequest{{ProductID: 12, Quantity: 1}}, restaurant)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "product 'Pizza Calabresa' is not available", verr.Message)

	_, err = v.ValidateItems(ctx, []ItemRequest{{ProductID: 20, Quantity: 1}}, restaurant)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "product 'Sushi Combo' does not belong to the selected restaurant", verr.Message)
}
