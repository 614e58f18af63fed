package commands

import (
	"context"
	"fmt"

	"github.com/rai/storefront-checkout-go/modules/basket/domain"
	"github.com/rai/storefront-checkout-go/modules/shared/events"
	"github.com/rai/storefront-checkout-go/modules/shared/types"
)

// RemoveItemCommand takes a product out of the basket.
type RemoveItemCommand struct {
	ProductID string
}

type RemoveItemHandler struct {
	repo      domain.BasketRepository
	publisher events.Publisher
}

func NewRemoveItemHandler(repo domain.BasketRepository, publisher events.Publisher) *RemoveItemHandler {
	return &RemoveItemHandler{repo: repo, publisher: publisher}
}

func (h *RemoveItemHandler) Handle(ctx context.Context, cmd RemoveItemCommand) error {
	productID, err := types.ParseProductID(cmd.ProductID)
	if err != nil {
		return fmt.Errorf("invalid product ID: %w", err)
	}

	basket, err := h.repo.Current(ctx)
	if err != nil {
		return fmt.Errorf("loading basket: %w", err)
	}
	if err := basket.Remove(productID); err != nil {
		return err
	}

	return save(ctx, h.repo, h.publisher, basket)
}
