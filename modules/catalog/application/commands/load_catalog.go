// Package commands contains write use cases for the catalog module.
package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rai/storefront-checkout-go/modules/catalog/domain"
	"github.com/rai/storefront-checkout-go/modules/shared/events"
)

type LoadCatalogHandler struct {
	source    domain.ProductSource
	repo      domain.ProductRepository
	publisher events.Publisher
	logger    *slog.Logger
}

func NewLoadCatalogHandler(source domain.ProductSource, repo domain.ProductRepository, publisher events.Publisher, logger *slog.Logger) *LoadCatalogHandler {
	return &LoadCatalogHandler{
		source:    source,
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// Handle replaces the catalog with the source's products and returns how
// many were loaded. On failure the stored catalog is left as it was.
func (h *LoadCatalogHandler) Handle(ctx context.Context) (int, error) {
	products, err := h.source.Fetch(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetching products: %w", err)
	}
	if err := domain.Validate(products); err != nil {
		return 0, fmt.Errorf("validating products: %w", err)
	}

	if err := h.repo.ReplaceAll(ctx, products); err != nil {
		return 0, fmt.Errorf("storing products: %w", err)
	}

	h.logger.InfoContext(ctx, "catalog loaded", slog.Int("products", len(products)))

	if err := h.publisher.Publish(ctx, domain.NewProductsLoadedEvent(len(products))); err != nil {
		return 0, fmt.Errorf("publishing products loaded: %w", err)
	}
	return len(products), nil
}
