package commands

import (
	"context"
	"fmt"

	"github.com/rai/storefront-checkout-go/modules/basket/domain"
	"github.com/rai/storefront-checkout-go/modules/shared/events"
)

type ClearBasketHandler struct {
	repo      domain.BasketRepository
	publisher events.Publisher
}

func NewClearBasketHandler(repo domain.BasketRepository, publisher events.Publisher) *ClearBasketHandler {
	return &ClearBasketHandler{repo: repo, publisher: publisher}
}

func (h *ClearBasketHandler) Handle(ctx context.Context) error {
	basket, err := h.repo.Current(ctx)
	if err != nil {
		return fmt.Errorf("loading basket: %w", err)
	}
	basket.Clear()
	return save(ctx, h.repo, h.publisher, basket)
}
