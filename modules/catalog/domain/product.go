// Package domain contains the catalog products.
package domain

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/rai/storefront-checkout-go/modules/shared/types"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrDuplicateID     = errors.New("duplicate product id")
)

// Product is a catalog entry. A product without a positive price is
// priceless and cannot be bought.
type Product struct {
	ID          types.ProductID
	Title       string
	Description string
	Category    string
	Image       string
	Price       decimal.NullDecimal
}

// Priced reports whether the product can be bought.
func (p Product) Priced() bool {
	return p.Price.Valid && p.Price.Decimal.IsPositive()
}

// Money returns the price of a priced product.
func (p Product) Money() (types.Money, bool) {
	if !p.Priced() {
		return types.Money{}, false
	}
	return types.MustNewMoney(p.Price.Decimal), true
}

// PriceText renders the price for display.
func (p Product) PriceText() string {
	if m, ok := p.Money(); ok {
		return m.String()
	}
	return "Priceless"
}

// ProductSource fetches the full product list.
type ProductSource interface {
	Fetch(ctx context.Context) ([]Product, error)
}

// ProductRepository stores the loaded catalog.
type ProductRepository interface {
	ReplaceAll(ctx context.Context, products []Product) error
	FindByID(ctx context.Context, id types.ProductID) (Product, error)
	FindAll(ctx context.Context) ([]Product, error)
}

// Validate checks a fetched product list for duplicate ids.
func Validate(products []Product) error {
	seen := make(map[string]struct{}, len(products))
	for _, p := range products {
		if _, ok := seen[p.ID.String()]; ok {
			return ErrDuplicateID
		}
		seen[p.ID.String()] = struct{}{}
	}
	return nil
}
