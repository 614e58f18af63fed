// Package catalog provides the product list of the storefront.
// This is the public API for the catalog bounded context.
package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/rai/storefront-checkout-go/modules/catalog/application/commands"
	"github.com/rai/storefront-checkout-go/modules/catalog/application/queries"
	"github.com/rai/storefront-checkout-go/modules/catalog/domain"
	httphandler "github.com/rai/storefront-checkout-go/modules/catalog/infrastructure/http"
	"github.com/rai/storefront-checkout-go/modules/catalog/infrastructure/persistence"
	"github.com/rai/storefront-checkout-go/modules/shared/events"
)

// Module is the public API for the catalog bounded context.
type Module interface {
	// RegisterRoutes registers the module's HTTP routes to the given router.
	RegisterRoutes(r chi.Router)
	// Load fetches the products from the source and replaces the catalog.
	Load(ctx context.Context) (int, error)
	// Product returns one product.
	Product(ctx context.Context, id string) (*queries.ProductDTO, error)
	// Products returns the whole catalog.
	Products(ctx context.Context) (*queries.ProductListDTO, error)
}

// Config holds the module configuration.
type Config struct {
	Source         domain.ProductSource
	EventPublisher events.Publisher
	Logger         *slog.Logger
}

type module struct {
	loadCatalogHandler  *commands.LoadCatalogHandler
	getProductHandler   *queries.GetProductHandler
	listProductsHandler *queries.ListProductsHandler
}

// New creates a new catalog module. The catalog starts empty until Load.
func New(cfg Config) (Module, error) {
	if cfg.Source == nil || cfg.EventPublisher == nil {
		return nil, fmt.Errorf("catalog: source and event publisher are required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("module", "catalog")

	repo := persistence.NewInMemoryRepository()

	return &module{
		loadCatalogHandler:  commands.NewLoadCatalogHandler(cfg.Source, repo, cfg.EventPublisher, logger),
		getProductHandler:   queries.NewGetProductHandler(repo),
		listProductsHandler: queries.NewListProductsHandler(repo),
	}, nil
}

func (m *module) RegisterRoutes(r chi.Router) {
	httphandler.RegisterRoutes(r, m.getProductHandler, m.listProductsHandler)
}

func (m *module) Load(ctx context.Context) (int, error) {
	return m.loadCatalogHandler.Handle(ctx)
}

func (m *module) Product(ctx context.Context, id string) (*queries.ProductDTO, error) {
	return m.getProductHandler.Handle(ctx, id)
}

func (m *module) Products(ctx context.Context) (*queries.ProductListDTO, error) {
	return m.listProductsHandler.Handle(ctx)
}
