package contracts

import (
	"github.com/rai/storefront-checkout-go/modules/shared/events"
	"github.com/rai/storefront-checkout-go/modules/shared/types"
)

const (
	BasketChangedEventType  events.Type = "basket.BasketChanged"
	ProductsLoadedEventType events.Type = "catalog.ProductsLoaded"
)

// BasketChangedEvent is published after every basket mutation.
type BasketChangedEvent struct {
	events.BaseEvent
	Count int         `json:"count"`
	Total types.Money `json:"total"`
}

// ProductsLoadedEvent is published after the catalog was (re)loaded.
type ProductsLoadedEvent struct {
	events.BaseEvent
	Count int `json:"count"`
}
