// Package notifications tells the customer about order outcomes.
package notifications

import (
	"fmt"
	"log/slog"

	"github.com/rai/storefront-checkout-go/modules/notifications/application/eventhandlers"
	"github.com/rai/storefront-checkout-go/modules/notifications/domain"
	"github.com/rai/storefront-checkout-go/modules/notifications/infrastructure/sender"
	"github.com/rai/storefront-checkout-go/modules/shared/events"
	"github.com/rai/storefront-checkout-go/modules/shared/events/contracts"
)

// Module is the notification module entry point. It has no API of its own.
type Module interface {
	Close()
}

type Config struct {
	EventSubscriber events.Subscriber
	// Sender defaults to logging the notifications.
	Sender domain.Sender
	Logger *slog.Logger
}

type module struct {
	subscriptions []events.Subscription
}

// New initializes the notification module and subscribes to events.
func New(cfg Config) (Module, error) {
	if cfg.EventSubscriber == nil {
		return nil, fmt.Errorf("notifications: event subscriber is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("module", "notifications")

	s := cfg.Sender
	if s == nil {
		s = sender.NewLogSender(logger)
	}

	handler := eventhandlers.NewOrderOutcomeHandler(s, logger)
	m := &module{}
	for _, t := range []events.Type{contracts.OrderPlacedEventType, contracts.OrderSubmissionFailedEventType} {
		sub, err := cfg.EventSubscriber.Subscribe(t, handler)
		if err != nil {
			m.Close()
			return nil, fmt.Errorf("notifications: subscribing to %s: %w", t, err)
		}
		m.subscriptions = append(m.subscriptions, sub)
	}
	return m, nil
}

func (m *module) Close() {
	for _, s := range m.subscriptions {
		s.Unsubscribe()
	}
	m.subscriptions = nil
}
