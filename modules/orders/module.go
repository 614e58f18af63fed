// Package orders places the orders the checkout hands over.
// This is the public API for the orders bounded context.
package orders

import (
	"fmt"
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/rai/storefront-checkout-go/internal/platform/eventbus"
	"github.com/rai/storefront-checkout-go/modules/orders/application/commands"
	"github.com/rai/storefront-checkout-go/modules/orders/application/eventhandlers"
	"github.com/rai/storefront-checkout-go/modules/orders/application/queries"
	"github.com/rai/storefront-checkout-go/modules/orders/domain"
	httphandler "github.com/rai/storefront-checkout-go/modules/orders/infrastructure/http"
	"github.com/rai/storefront-checkout-go/modules/orders/infrastructure/persistence"
	"github.com/rai/storefront-checkout-go/modules/shared/events"
	"github.com/rai/storefront-checkout-go/modules/shared/events/contracts"
)

// Module is the public API for the orders bounded context.
// External communication: HTTP API (RegisterRoutes)
// Cross-module communication: Domain Events (subscribed internally)
type Module interface {
	// RegisterRoutes registers the module's HTTP routes to the given router.
	RegisterRoutes(r chi.Router)
	// Close removes the module's subscriptions.
	Close()
}

// Config holds the module configuration.
type Config struct {
	API    domain.OrderAPI
	Basket domain.BasketReader
	// Repository defaults to an in-memory store.
	Repository domain.OrderRepository
	// HandlerRegistry dispatches OrderPlaced once an order is accepted.
	HandlerRegistry eventbus.HandlerRegistry
	EventPublisher  events.Publisher
	EventSubscriber events.Subscriber
	Recorder        commands.SubmissionRecorder
	Logger          *slog.Logger
}

type module struct {
	getOrderHandler   *queries.GetOrderHandler
	listOrdersHandler *queries.ListOrdersHandler
	subscription      events.Subscription
}

// New creates a new orders module.
func New(cfg Config) (Module, error) {
	if cfg.API == nil || cfg.Basket == nil {
		return nil, fmt.Errorf("orders: API and basket are required")
	}
	if cfg.HandlerRegistry == nil || cfg.EventPublisher == nil || cfg.EventSubscriber == nil {
		return nil, fmt.Errorf("orders: event bus is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("module", "orders")

	repo := cfg.Repository
	if repo == nil {
		repo = persistence.NewInMemoryRepository()
	}

	submitOrderHandler := commands.NewSubmitOrderHandler(cfg.API, cfg.Basket, repo, cfg.HandlerRegistry, cfg.EventPublisher, cfg.Recorder, logger)

	// Subscribe to cross-module events
	orderReadyHandler := eventhandlers.NewOrderReadyHandler(submitOrderHandler, logger)
	sub, err := cfg.EventSubscriber.Subscribe(contracts.OrderReadyEventType, orderReadyHandler)
	if err != nil {
		return nil, fmt.Errorf("orders: subscribing to order ready: %w", err)
	}

	return &module{
		getOrderHandler:   queries.NewGetOrderHandler(repo),
		listOrdersHandler: queries.NewListOrdersHandler(repo),
		subscription:      sub,
	}, nil
}

func (m *module) RegisterRoutes(r chi.Router) {
	httphandler.RegisterRoutes(r, m.getOrderHandler, m.listOrdersHandler)
}

func (m *module) Close() {
	m.subscription.Unsubscribe()
}
