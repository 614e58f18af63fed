// Package basket provides the shopping basket.
// This is the public API for the basket bounded context.
package basket

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/rai/storefront-checkout-go/modules/basket/application/commands"
	"github.com/rai/storefront-checkout-go/modules/basket/application/eventhandlers"
	"github.com/rai/storefront-checkout-go/modules/basket/application/queries"
	"github.com/rai/storefront-checkout-go/modules/basket/domain"
	httphandler "github.com/rai/storefront-checkout-go/modules/basket/infrastructure/http"
	"github.com/rai/storefront-checkout-go/modules/basket/infrastructure/persistence"
	"github.com/rai/storefront-checkout-go/modules/shared/events"
	"github.com/rai/storefront-checkout-go/modules/shared/events/contracts"
	"github.com/rai/storefront-checkout-go/modules/shared/types"
)

// Module is the public API for the basket bounded context.
// External communication: HTTP API (RegisterRoutes) and the basket reader
// methods used by order submission.
// Cross-module communication: Domain Events (subscribed internally)
type Module interface {
	RegisterRoutes(r chi.Router)
	Add(ctx context.Context, productID string) error
	Remove(ctx context.Context, productID string) error
	Basket(ctx context.Context) (*queries.BasketDTO, error)
	ItemIDs() []string
	Total() types.Money
	Close()
}

// Config holds the module configuration.
type Config struct {
	Products        domain.ProductLookup
	EventPublisher  events.Publisher
	EventSubscriber events.Subscriber
	Logger          *slog.Logger
}

type module struct {
	repo              domain.BasketRepository
	addItemHandler    *commands.AddItemHandler
	removeItemHandler *commands.RemoveItemHandler
	getBasketHandler  *queries.GetBasketHandler
	subscription      events.Subscription
}

// New creates a new basket module.
func New(cfg Config) (Module, error) {
	if cfg.Products == nil || cfg.EventPublisher == nil || cfg.EventSubscriber == nil {
		return nil, fmt.Errorf("basket: product lookup and event bus are required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("module", "basket")

	repo := persistence.NewInMemoryRepository()
	clearBasketHandler := commands.NewClearBasketHandler(repo, cfg.EventPublisher)

	// Subscribe to cross-module events
	sub, err := cfg.EventSubscriber.Subscribe(contracts.OrderPlacedEventType, eventhandlers.NewOrderPlacedHandler(clearBasketHandler, logger))
	if err != nil {
		return nil, fmt.Errorf("basket: subscribing to order placed: %w", err)
	}

	return &module{
		repo:              repo,
		addItemHandler:    commands.NewAddItemHandler(repo, cfg.Products, cfg.EventPublisher),
		removeItemHandler: commands.NewRemoveItemHandler(repo, cfg.EventPublisher),
		getBasketHandler:  queries.NewGetBasketHandler(repo),
		subscription:      sub,
	}, nil
}

func (m *module) RegisterRoutes(r chi.Router) {
	httphandler.RegisterRoutes(r, m.addItemHandler, m.removeItemHandler, m.getBasketHandler)
}

func (m *module) Add(ctx context.Context, productID string) error {
	return m.addItemHandler.Handle(ctx, commands.AddItemCommand{ProductID: productID})
}

func (m *module) Remove(ctx context.Context, productID string) error {
	return m.removeItemHandler.Handle(ctx, commands.RemoveItemCommand{ProductID: productID})
}

func (m *module) Basket(ctx context.Context) (*queries.BasketDTO, error) {
	return m.getBasketHandler.Handle(ctx)
}

// ItemIDs and Total read the in-memory basket, which cannot fail.

func (m *module) ItemIDs() []string {
	basket, _ := m.repo.Current(context.Background())
	return basket.ItemIDs()
}

func (m *module) Total() types.Money {
	basket, _ := m.repo.Current(context.Background())
	return basket.Total()
}

func (m *module) Close() {
	m.subscription.Unsubscribe()
}
