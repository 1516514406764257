package order

import (
	"context"
	"fmt"

	"delivery-system/internal/domain"
)

// InventoryGuard is the only writer of product stock. ReserveStock must
// run inside a transaction: the row lock taken by GetForUpdate
// serializes concurrent reservations of the same product and is held
// until that transaction commits or rolls back.
type InventoryGuard struct {
	products ProductStore
}

func NewInventoryGuard(products ProductStore) *InventoryGuard {
	return &InventoryGuard{products: products}
}

// ReserveStock locks the product row, checks the requested quantity
// against current stock and decrements it. The write is visible to the
// next item of the same order immediately; other orders wait on the row
// lock, so stock never goes negative.
func (g *InventoryGuard) ReserveStock(ctx context.Context, productID int64, quantity int) (domain.Product, error) {
	product, err := g.products.GetForUpdate(ctx, productID)
	if err != nil {
		return domain.Product{}, err
	}
	if product.Stock < quantity {
		return domain.Product{}, domain.NewValidationError("",
			fmt.Sprintf("insufficient stock for %s, available: %d", product.Name, product.Stock))
	}

	product.Stock -= quantity
	if err := g.products.UpdateStock(ctx, product.ID, product.Stock); err != nil {
		return domain.Product{}, err
	}
	return product, nil
}
