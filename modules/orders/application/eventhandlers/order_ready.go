package eventhandlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rai/storefront-checkout-go/modules/orders/application/commands"
	"github.com/rai/storefront-checkout-go/modules/orders/domain"
	"github.com/rai/storefront-checkout-go/modules/shared/events"
	"github.com/rai/storefront-checkout-go/modules/shared/events/contracts"
)

// OrderReadyHandler places the order once the checkout reports both steps
// valid. The outcome travels back as OrderPlaced or OrderSubmissionFailed,
// so a failed submission is not a handler error.
type OrderReadyHandler struct {
	submitOrder *commands.SubmitOrderHandler
	logger      *slog.Logger
}

func NewOrderReadyHandler(submitOrder *commands.SubmitOrderHandler, logger *slog.Logger) *OrderReadyHandler {
	return &OrderReadyHandler{
		submitOrder: submitOrder,
		logger:      logger,
	}
}

func (h *OrderReadyHandler) Handle(ctx context.Context, event events.Event) error {
	orderReadyEvent, ok := event.(contracts.OrderReadyEvent)
	if !ok {
		return fmt.Errorf("unexpected event type: %T", event)
	}

	h.logger.InfoContext(ctx, "handling order ready event", slog.String("event_id", orderReadyEvent.EventID()))

	_, err := h.submitOrder.Handle(ctx, commands.SubmitOrderCommand{
		Payment: orderReadyEvent.Payment,
		Address: orderReadyEvent.Address,
		Email:   orderReadyEvent.Email,
		Phone:   orderReadyEvent.Phone,
	})
	if errors.Is(err, domain.ErrEmptyBasket) {
		h.logger.WarnContext(ctx, "order ready with an empty basket")
	}
	return nil
}
