package domain

import (
	"github.com/rai/storefront-checkout-go/modules/shared/events"
	"github.com/rai/storefront-checkout-go/modules/shared/events/contracts"
)

const (
	OrderPlacedEventType           = contracts.OrderPlacedEventType
	OrderSubmissionFailedEventType = contracts.OrderSubmissionFailedEventType
)

func NewOrderPlacedEvent(order *Order) contracts.OrderPlacedEvent {
	return contracts.OrderPlacedEvent{
		BaseEvent: events.NewBaseEvent(OrderPlacedEventType),
		OrderID:   order.ID().String(),
		Total:     order.Total(),
		Items:     order.Items(),
	}
}

func NewOrderSubmissionFailedEvent() contracts.OrderSubmissionFailedEvent {
	return contracts.OrderSubmissionFailedEvent{
		BaseEvent: events.NewBaseEvent(OrderSubmissionFailedEventType),
		Message:   FailureMessage,
	}
}
