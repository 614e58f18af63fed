package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rai/storefront-checkout-go/internal/platform/config"
	"github.com/rai/storefront-checkout-go/internal/platform/eventbus"
	"github.com/rai/storefront-checkout-go/internal/platform/httpserver"
	"github.com/rai/storefront-checkout-go/internal/platform/metrics"
	"github.com/rai/storefront-checkout-go/modules/basket"
	basketdomain "github.com/rai/storefront-checkout-go/modules/basket/domain"
	"github.com/rai/storefront-checkout-go/modules/catalog"
	catalogdomain "github.com/rai/storefront-checkout-go/modules/catalog/domain"
	"github.com/rai/storefront-checkout-go/modules/catalog/infrastructure/source"
	"github.com/rai/storefront-checkout-go/modules/checkout"
	"github.com/rai/storefront-checkout-go/modules/checkout/application"
	"github.com/rai/storefront-checkout-go/modules/notifications"
	notificationsdomain "github.com/rai/storefront-checkout-go/modules/notifications/domain"
	"github.com/rai/storefront-checkout-go/modules/orders"
	ordersdomain "github.com/rai/storefront-checkout-go/modules/orders/domain"
	"github.com/rai/storefront-checkout-go/modules/orders/infrastructure/api"
	"github.com/rai/storefront-checkout-go/modules/shared/events"
	"github.com/rai/storefront-checkout-go/modules/shared/types"
)

// app is the wired storefront. Every module talks to the others only
// through the bus.
type app struct {
	logger        *slog.Logger
	bus           *eventbus.InMemoryEventBus
	metrics       *metrics.Metrics
	catalog       catalog.Module
	basket        basket.Module
	orders        orders.Module
	checkout      checkout.Module
	notifications notifications.Module
	subscriptions []events.Subscription
}

// appOptions overrides optional collaborators. The zero value is the
// production wiring.
type appOptions struct {
	// Renderer receives every checkout view model besides the form view.
	Renderer application.Renderer
	// Sender delivers customer notifications; defaults to the log.
	Sender notificationsdomain.Sender
}

// newApp wires all modules.
func newApp(cfg config.Config, logger *slog.Logger, opts appOptions) (*app, error) {
	a := &app{
		logger:  logger,
		bus:     eventbus.New(logger),
		metrics: metrics.New(),
	}

	sub, err := a.bus.SubscribeAll(a.metrics)
	if err != nil {
		return nil, fmt.Errorf("subscribing metrics: %w", err)
	}
	a.subscriptions = append(a.subscriptions, sub)

	productSource, err := newProductSource(cfg)
	if err != nil {
		return nil, err
	}
	a.catalog, err = catalog.New(catalog.Config{
		Source:         productSource,
		EventPublisher: a.bus,
		Logger:         logger,
	})
	if err != nil {
		return nil, err
	}

	a.basket, err = basket.New(basket.Config{
		Products:        productLookup(a.catalog),
		EventPublisher:  a.bus,
		EventSubscriber: a.bus,
		Logger:          logger,
	})
	if err != nil {
		return nil, err
	}

	orderAPI, err := newOrderAPI(cfg, logger)
	if err != nil {
		return nil, err
	}
	a.orders, err = orders.New(orders.Config{
		API:             orderAPI,
		Basket:          a.basket,
		HandlerRegistry: a.bus,
		EventPublisher:  a.bus,
		EventSubscriber: a.bus,
		Recorder:        a.metrics,
		Logger:          logger,
	})
	if err != nil {
		a.Close()
		return nil, err
	}

	a.notifications, err = notifications.New(notifications.Config{
		EventSubscriber: a.bus,
		Sender:          opts.Sender,
		Logger:          logger,
	})
	if err != nil {
		a.Close()
		return nil, err
	}

	// Checkout goes last: it starts a session on creation.
	a.checkout, err = checkout.New(checkout.Config{
		EventPublisher:  a.bus,
		EventSubscriber: a.bus,
		Renderer:        opts.Renderer,
		Logger:          logger,
	})
	if err != nil {
		a.Close()
		return nil, err
	}

	return a, nil
}

// Router builds the HTTP routes of every module. Module routes share one
// session and run one at a time.
func (a *app) Router() http.Handler {
	r := httpserver.NewRouter(a.logger)
	r.Method(http.MethodGet, "/metrics", a.metrics.Handler())

	r.Group(func(r chi.Router) {
		r.Use(httpserver.Serialize())
		a.catalog.RegisterRoutes(r)
		a.basket.RegisterRoutes(r)
		a.orders.RegisterRoutes(r)
		a.checkout.RegisterRoutes(r)
	})
	return r
}

// Close removes every subscription. Modules that were never created are
// skipped.
func (a *app) Close() {
	if a.checkout != nil {
		a.checkout.Close()
	}
	if a.notifications != nil {
		a.notifications.Close()
	}
	if a.orders != nil {
		a.orders.Close()
	}
	if a.basket != nil {
		a.basket.Close()
	}
	for _, s := range a.subscriptions {
		s.Unsubscribe()
	}
	a.subscriptions = nil
}

func newProductSource(cfg config.Config) (catalogdomain.ProductSource, error) {
	if cfg.Catalog.ProductAPIURL == "" {
		return source.NewYAMLSource(cfg.Catalog.SeedPath), nil
	}
	timeout, err := cfg.APITimeout()
	if err != nil {
		return nil, err
	}
	return source.NewHTTPSource(cfg.Catalog.ProductAPIURL, timeout, nil)
}

func newOrderAPI(cfg config.Config, logger *slog.Logger) (ordersdomain.OrderAPI, error) {
	if cfg.Orders.OrderAPIURL == "" {
		logger.Warn("no order API configured, orders are kept in memory")
		return api.NewInMemoryAPI(), nil
	}
	timeout, err := cfg.APITimeout()
	if err != nil {
		return nil, err
	}
	openTimeout, err := cfg.BreakerOpenTimeout()
	if err != nil {
		return nil, err
	}
	return api.NewClient(api.ClientConfig{
		BaseURL:            cfg.Orders.OrderAPIURL,
		Timeout:            timeout,
		BreakerFailures:    uint32(cfg.Orders.BreakerFailures),
		BreakerOpenTimeout: openTimeout,
		Logger:             logger,
	})
}

// productLookup lets the basket read prices from the catalog.
func productLookup(c catalog.Module) basketdomain.ProductLookup {
	return basketdomain.ProductLookupFunc(func(ctx context.Context, id types.ProductID) (basketdomain.ProductInfo, error) {
		p, err := c.Product(ctx, id.String())
		if errors.Is(err, catalogdomain.ErrProductNotFound) {
			return basketdomain.ProductInfo{}, basketdomain.ErrProductNotFound
		}
		if err != nil {
			return basketdomain.ProductInfo{}, err
		}
		return basketdomain.ProductInfo{ID: id, Title: p.Title, Price: p.Price}, nil
	})
}
