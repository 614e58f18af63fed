package contracts

import (
	"github.com/rai/storefront-checkout-go/modules/shared/events"
	"github.com/rai/storefront-checkout-go/modules/shared/types"
)

const (
	OrderPlacedEventType           events.Type = "orders.OrderPlaced"
	OrderSubmissionFailedEventType events.Type = "orders.OrderSubmissionFailed"
)

// OrderPlacedEvent is published after the order API accepted an order.
type OrderPlacedEvent struct {
	events.BaseEvent
	OrderID string      `json:"order_id"`
	Total   types.Money `json:"total"`
	Items   []string    `json:"items"`
}

// OrderSubmissionFailedEvent is published when placing an order failed.
// Message is safe to show to the user.
type OrderSubmissionFailedEvent struct {
	events.BaseEvent
	Message string `json:"message"`
}
