// Package commands contains write use cases for the basket module.
package commands

import (
	"context"
	"fmt"

	"github.com/rai/storefront-checkout-go/modules/basket/domain"
	"github.com/rai/storefront-checkout-go/modules/shared/events"
	"github.com/rai/storefront-checkout-go/modules/shared/types"
)

// AddItemCommand puts a catalog product into the basket.
type AddItemCommand struct {
	ProductID string
}

type AddItemHandler struct {
	repo      domain.BasketRepository
	products  domain.ProductLookup
	publisher events.Publisher
}

func NewAddItemHandler(repo domain.BasketRepository, products domain.ProductLookup, publisher events.Publisher) *AddItemHandler {
	return &AddItemHandler{
		repo:      repo,
		products:  products,
		publisher: publisher,
	}
}

func (h *AddItemHandler) Handle(ctx context.Context, cmd AddItemCommand) error {
	productID, err := types.ParseProductID(cmd.ProductID)
	if err != nil {
		return fmt.Errorf("invalid product ID: %w", err)
	}

	product, err := h.products.LookupProduct(ctx, productID)
	if err != nil {
		return fmt.Errorf("looking up product: %w", err)
	}

	basket, err := h.repo.Current(ctx)
	if err != nil {
		return fmt.Errorf("loading basket: %w", err)
	}
	if err := basket.Add(product); err != nil {
		return err
	}

	return save(ctx, h.repo, h.publisher, basket)
}

// save stores the basket and publishes its events.
func save(ctx context.Context, repo domain.BasketRepository, publisher events.Publisher, basket *domain.Basket) error {
	if err := repo.Save(ctx, basket); err != nil {
		return fmt.Errorf("saving basket: %w", err)
	}
	if err := publisher.Publish(ctx, basket.PopDomainEvents()...); err != nil {
		return fmt.Errorf("publishing events: %w", err)
	}
	return nil
}
