package order

import (
	"context"
	"fmt"
	"strings"

	"delivery-system/internal/domain"
)

// MaxItemQuantity caps a single line item.
const MaxItemQuantity = 50

// Validator checks an order request against current state. The check
// order is fixed: customer, delivery address, restaurant, delivery
// predicate, then each item in submitted order (quantity, existence,
// availability, ownership). Stock is the guard's job, after validation.
type Validator struct {
	customers   CustomerStore
	restaurants RestaurantStore
	products    ProductStore
}

func NewValidator(customers CustomerStore, restaurants RestaurantStore, products ProductStore) *Validator {
	return &Validator{customers: customers, restaurants: restaurants, products: products}
}

func (v *Validator) ValidateCustomer(ctx context.Context, customerID int64, addr domain.Address) (domain.Customer, error) {
	customer, err := v.customers.GetByID(ctx, customerID)
	if err != nil {
		return domain.Customer{}, err
	}
	if !customer.Active {
		return domain.Customer{}, domain.NewValidationError("", "customer not active")
	}

	if addr.Empty() {
		return domain.Customer{}, domain.NewValidationError("delivery_address", "delivery address is required")
	}
	if strings.TrimSpace(addr.Street) == "" {
		return domain.Customer{}, domain.NewValidationError("delivery_address.street", "street is required")
	}
	if strings.TrimSpace(addr.City) == "" {
		return domain.Customer{}, domain.NewValidationError("delivery_address.city", "city is required")
	}
	if strings.TrimSpace(addr.PostalCode) == "" {
		return domain.Customer{}, domain.NewValidationError("delivery_address.postal_code", "postal code is required")
	}
	return customer, nil
}

func (v *Validator) ValidateRestaurant(ctx context.Context, restaurantID int64, addr domain.Address) (domain.Restaurant, error) {
	restaurant, err := v.restaurants.GetByID(ctx, restaurantID)
	if err != nil {
		return domain.Restaurant{}, err
	}
	if !restaurant.Active {
		return domain.Restaurant{}, domain.NewValidationError("", "restaurant not active")
	}
	if !deliversTo(restaurant, addr) {
		return domain.Restaurant{}, domain.NewValidationError("", "restaurant does not deliver to this address")
	}
	return restaurant, nil
}

// ValidateItems resolves every requested product, in submitted order.
// The returned slice is index-aligned with items.
func (v *Validator) ValidateItems(ctx context.Context, items []ItemRequest, restaurant domain.Restaurant) ([]domain.Product, error) {
	if len(items) == 0 {
		return nil, domain.NewValidationError("items", "at least one item is required")
	}

	products := make([]domain.Product, 0, len(items))
	for _, item := range items {
		if item.Quantity < 1 || item.Quantity > MaxItemQuantity {
			return nil, domain.NewValidationError("quantity",
				fmt.Sprintf("quantity must be between 1 and %d", MaxItemQuantity))
		}

		product, err := v.products.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if !product.Available {
			return nil, domain.NewValidationError("",
				fmt.Sprintf("product '%s' is not available", product.Name))
		}
		if product.RestaurantID != restaurant.ID {
			return nil, domain.NewValidationError("",
				fmt.Sprintf("product '%s' does not belong to the selected restaurant", product.Name))
		}
		products = append(products, product)
	}
	return products, nil
}

// deliversTo is the delivery predicate: the address must carry a
// non-empty city.
func deliversTo(_ domain.Restaurant, addr domain.Address) bool {
	return strings.TrimSpace(addr.City) != ""
}
