package domain

import (
	"context"

	"github.com/rai/storefront-checkout-go/modules/shared/types"
)

// OrderRepository keeps placed orders.
type OrderRepository interface {
	Save(ctx context.Context, order *Order) error
	FindByID(ctx context.Context, id types.OrderID) (*Order, error)
	FindAll(ctx context.Context, offset, limit int) ([]*Order, int, error)
}
