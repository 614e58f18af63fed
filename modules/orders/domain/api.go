package domain

import (
	"context"

	"github.com/rai/storefront-checkout-go/modules/shared/types"
)

// Payload is the body sent to the order API.
type Payload struct {
	Payment string      `json:"payment"`
	Address string      `json:"address"`
	Email   string      `json:"email"`
	Phone   string      `json:"phone"`
	Total   types.Money `json:"total"`
	Items   []string    `json:"items"`
}

// Result is the order API's answer to an accepted order.
type Result struct {
	ID    string      `json:"id"`
	Total types.Money `json:"total"`
}

// OrderAPI places orders with the backend.
type OrderAPI interface {
	CreateOrder(ctx context.Context, payload Payload) (Result, error)
}

// BasketReader exposes the basket contents an order is built from.
type BasketReader interface {
	ItemIDs() []string
	Total() types.Money
}
