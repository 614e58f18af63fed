// Package eventbus provides the in-process event bus the storefront modules
// communicate through.
package eventbus

import (
	"context"
	"errors"
	"log/slog"

	"github.com/rai/storefront-checkout-go/modules/shared/events"
)

var (
	ErrEmptyTopic = errors.New("event topic is required")
	ErrNilHandler = errors.New("event handler is required")
)

// InMemoryEventBus implements a simple synchronous event bus.
// Events are delivered synchronously in the publishing goroutine, so a
// handler may publish further events from inside Handle.
type InMemoryEventBus struct {
	*EventHandlerRegistry
	logger *slog.Logger
}

func New(logger *slog.Logger) *InMemoryEventBus {
	if logger == nil {
		logger = slog.Default()
	}
	return &InMemoryEventBus{
		EventHandlerRegistry: NewEventHandlerRegistry(logger),
		logger:               logger,
	}
}

// Publish implements events.Publisher.
// A failing handler is logged and does not stop delivery to the others.
func (b *InMemoryEventBus) Publish(ctx context.Context, evts ...events.Event) error {
	for _, event := range evts {
		handlers := b.HandlersFor(event.EventType())

		b.logger.Debug("publishing event", slog.String("event_type", event.EventType().String()), slog.String("event_id", event.EventID()), slog.Int("handler_count", len(handlers)))

		for _, handler := range handlers {
			if err := handler.Handle(ctx, event); err != nil {
				b.logger.Error("event handler failed", slog.String("event_type", event.EventType().String()), slog.String("event_id", event.EventID()), slog.Any("error", err))
			}
		}
	}
	return nil
}

// Compile-time interface checks.
var (
	_ events.Publisher  = (*InMemoryEventBus)(nil)
	_ events.Subscriber = (*InMemoryEventBus)(nil)
)
