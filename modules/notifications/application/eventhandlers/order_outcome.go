package eventhandlers

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rai/storefront-checkout-go/modules/notifications/domain"
	"github.com/rai/storefront-checkout-go/modules/shared/events"
	"github.com/rai/storefront-checkout-go/modules/shared/events/contracts"
)

// OrderOutcomeHandler tells the customer how their order went. An event ID
// is notified at most once.
type OrderOutcomeHandler struct {
	sender domain.Sender
	logger *slog.Logger

	mu   sync.Mutex
	seen map[string]struct{}
}

func NewOrderOutcomeHandler(sender domain.Sender, logger *slog.Logger) *OrderOutcomeHandler {
	return &OrderOutcomeHandler{
		sender: sender,
		logger: logger,
		seen:   make(map[string]struct{}),
	}
}

func (h *OrderOutcomeHandler) Handle(ctx context.Context, event events.Event) error {
	if !h.markSeen(event.EventID()) {
		h.logger.DebugContext(ctx, "skipping duplicate event", slog.String("event_id", event.EventID()))
		return nil
	}

	var n domain.Notification
	switch e := event.(type) {
	case contracts.OrderPlacedEvent:
		n = domain.Notification{
			Kind:    domain.KindOrderConfirmation,
			OrderID: e.OrderID,
			Subject: "Order " + e.OrderID + " placed",
			Body:    "Charged " + e.Total.String(),
		}
	case contracts.OrderSubmissionFailedEvent:
		n = domain.Notification{
			Kind:    domain.KindOrderFailure,
			Subject: "Order not placed",
			Body:    e.Message,
		}
	default:
		return fmt.Errorf("unexpected event type: %T", event)
	}

	if err := h.sender.Send(ctx, n); err != nil {
		return fmt.Errorf("sending %s: %w", n.Kind, err)
	}
	return nil
}

func (h *OrderOutcomeHandler) markSeen(id string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.seen[id]; ok {
		return false
	}
	h.seen[id] = struct{}{}
	return true
}
