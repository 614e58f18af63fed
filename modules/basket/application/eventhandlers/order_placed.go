package eventhandlers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rai/storefront-checkout-go/modules/basket/application/commands"
	"github.com/rai/storefront-checkout-go/modules/shared/events"
	"github.com/rai/storefront-checkout-go/modules/shared/events/contracts"
)

// OrderPlacedHandler empties the basket once its order was accepted.
type OrderPlacedHandler struct {
	clearBasket *commands.ClearBasketHandler
	logger      *slog.Logger
}

func NewOrderPlacedHandler(clearBasket *commands.ClearBasketHandler, logger *slog.Logger) *OrderPlacedHandler {
	return &OrderPlacedHandler{
		clearBasket: clearBasket,
		logger:      logger,
	}
}

func (h *OrderPlacedHandler) Handle(ctx context.Context, event events.Event) error {
	orderPlacedEvent, ok := event.(contracts.OrderPlacedEvent)
	if !ok {
		return fmt.Errorf("unexpected event type: %T", event)
	}

	h.logger.InfoContext(ctx, "clearing basket for placed order", slog.String("order_id", orderPlacedEvent.OrderID))

	if err := h.clearBasket.Handle(ctx); err != nil {
		return fmt.Errorf("clearing basket: %w", err)
	}
	return nil
}
