// Package queries contains read use cases for the basket module.
package queries

import (
	"context"

	"github.com/rai/storefront-checkout-go/modules/basket/domain"
	"github.com/rai/storefront-checkout-go/modules/shared/types"
)

// BasketDTO is a read model for the basket.
type BasketDTO struct {
	Items     []BasketItemDTO `json:"items"`
	Count     int             `json:"count"`
	Total     types.Money     `json:"total"`
	TotalText string          `json:"total_text"`
}

type BasketItemDTO struct {
	Index     int         `json:"index"`
	ProductID string      `json:"product_id"`
	Title     string      `json:"title"`
	Price     types.Money `json:"price"`
}

type GetBasketHandler struct {
	repo domain.BasketRepository
}

func NewGetBasketHandler(repo domain.BasketRepository) *GetBasketHandler {
	return &GetBasketHandler{repo: repo}
}

func (h *GetBasketHandler) Handle(ctx context.Context) (*BasketDTO, error) {
	basket, err := h.repo.Current(ctx)
	if err != nil {
		return nil, err
	}

	items := basket.Items()
	dtos := make([]BasketItemDTO, len(items))
	for i, item := range items {
		dtos[i] = BasketItemDTO{
			Index:     i + 1,
			ProductID: item.ProductID.String(),
			Title:     item.Title,
			Price:     item.Price,
		}
	}

	total := basket.Total()
	return &BasketDTO{
		Items:     dtos,
		Count:     len(dtos),
		Total:     total,
		TotalText: total.String(),
	}, nil
}
