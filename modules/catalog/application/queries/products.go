// Package queries contains read use cases for the catalog module.
package queries

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rai/storefront-checkout-go/modules/catalog/domain"
	"github.com/rai/storefront-checkout-go/modules/shared/types"
)

// ProductDTO is a read model for a product. Price is null for priceless
// products.
type ProductDTO struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Category    string              `json:"category"`
	Image       string              `json:"image"`
	Price       decimal.NullDecimal `json:"price"`
	PriceText   string              `json:"price_text"`
	Buyable     bool                `json:"buyable"`
}

// ProductListDTO mirrors the product API listing.
type ProductListDTO struct {
	Total int           `json:"total"`
	Items []*ProductDTO `json:"items"`
}

type GetProductHandler struct {
	repo domain.ProductRepository
}

func NewGetProductHandler(repo domain.ProductRepository) *GetProductHandler {
	return &GetProductHandler{repo: repo}
}

func (h *GetProductHandler) Handle(ctx context.Context, id string) (*ProductDTO, error) {
	productID, err := types.ParseProductID(id)
	if err != nil {
		return nil, fmt.Errorf("invalid product ID: %w", err)
	}

	product, err := h.repo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	return toProductDTO(product), nil
}

type ListProductsHandler struct {
	repo domain.ProductRepository
}

func NewListProductsHandler(repo domain.ProductRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

func (h *ListProductsHandler) Handle(ctx context.Context) (*ProductListDTO, error) {
	products, err := h.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*ProductDTO, len(products))
	for i, p := range products {
		items[i] = toProductDTO(p)
	}
	return &ProductListDTO{Total: len(items), Items: items}, nil
}

func toProductDTO(p domain.Product) *ProductDTO {
	return &ProductDTO{
		ID:          p.ID.String(),
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		Image:       p.Image,
		Price:       p.Price,
		PriceText:   p.PriceText(),
		Buyable:     p.Priced(),
	}
}
