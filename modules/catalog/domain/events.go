package domain

import (
	"github.com/rai/storefront-checkout-go/modules/shared/events"
	"github.com/rai/storefront-checkout-go/modules/shared/events/contracts"
)

func NewProductsLoadedEvent(count int) contracts.ProductsLoadedEvent {
	return contracts.ProductsLoadedEvent{
		BaseEvent: events.NewBaseEvent(contracts.ProductsLoadedEventType),
		Count:     count,
	}
}
