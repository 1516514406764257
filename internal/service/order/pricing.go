package order

import (
	"github.com/shopspring/decimal"

	"delivery-system/internal/domain"
)

// Zone multipliers by the two leading digits of the destination postal
// code. 80-82 is the restaurant's home zone.
var (
	multiplierHome = decimal.NewFromInt(1)
	multiplierNear = decimal.RequireFromString("1.5")
	multiplierFar  = decimal.NewFromInt(2)
)

// ItemsTotal sums unit price times quantity over all line items.
// products must be index-aligned with items (ValidateItems guarantees
// this); prices are the ones read at validation time.
func ItemsTotal(items []ItemRequest, products []domain.Product) decimal.Decimal {
	total := decimal.Zero
	for i, item := range items {
		subtotal := products[i].Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(subtotal)
	}
	return total
}

// DeliveryFee scales the restaurant's base fee by the destination zone
// multiplier. A malformed postal code fails before any arithmetic.
func DeliveryFee(restaurant domain.Restaurant, addr domain.Address) (decimal.Decimal, error) {
	multiplier, err := zoneMultiplier(addr.PostalCode)
	if err != nil {
		return decimal.Zero, err
	}
	return restaurant.DeliveryFee.Mul(multiplier), nil
}

// Total combines the line-item subtotal with the delivery fee.
func Total(items []ItemRequest, products []domain.Product, restaurant domain.Restaurant, addr domain.Address) (decimal.Decimal, error) {
	fee, err := DeliveryFee(restaurant, addr)
	if err != nil {
		return decimal.Zero, err
	}
	return ItemsTotal(items, products).Add(fee), nil
}

func zoneMultiplier(postalCode string) (decimal.Decimal, error) {
	if len(postalCode) < 2 || postalCode[0] < '0' || postalCode[0] > '9' ||
		postalCode[1] < '0' || postalCode[1] > '9' {
		return decimal.Zero, domain.NewValidationError("delivery_address.postal_code", "invalid postal code")
	}
	prefix := int(postalCode[0]-'0')*10 + int(postalCode[1]-'0')

	switch {
	case prefix >= 80 && prefix <= 82:
		return multiplierHome, nil
	case prefix >= 83 && prefix <= 85:
		return multiplierNear, nil
	default:
		return multiplierFar, nil
	}
}
