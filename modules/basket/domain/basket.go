// Package domain contains the shopping basket.
package domain

import (
	"context"
	"errors"
	"slices"

	"github.com/shopspring/decimal"

	shareddomain "github.com/rai/storefront-checkout-go/modules/shared/domain"
	"github.com/rai/storefront-checkout-go/modules/shared/events"
	"github.com/rai/storefront-checkout-go/modules/shared/events/contracts"
	"github.com/rai/storefront-checkout-go/modules/shared/types"
)

var (
	ErrPriceless       = errors.New("product has no price")
	ErrAlreadyInBasket = errors.New("product is already in the basket")
	ErrItemNotFound    = errors.New("product is not in the basket")
	ErrProductNotFound = errors.New("product not found")
)

// Item is one basket line. A product enters the basket at most once.
type Item struct {
	ProductID types.ProductID
	Title     string
	Price     types.Money
}

// ProductInfo is what the basket needs to know about a product.
type ProductInfo struct {
	ID    types.ProductID
	Title string
	Price decimal.NullDecimal
}

// ProductLookup finds products by id. It returns ErrProductNotFound for
// unknown ids.
type ProductLookup interface {
	LookupProduct(ctx context.Context, id types.ProductID) (ProductInfo, error)
}

// ProductLookupFunc adapts a function to ProductLookup.
type ProductLookupFunc func(ctx context.Context, id types.ProductID) (ProductInfo, error)

func (f ProductLookupFunc) LookupProduct(ctx context.Context, id types.ProductID) (ProductInfo, error) {
	return f(ctx, id)
}

// Basket is the aggregate root for the basket bounded context. Every
// mutation records a BasketChanged event.
type Basket struct {
	shareddomain.AggregateRoot
	items []Item
}

func NewBasket() *Basket {
	return &Basket{}
}

// Add puts a priced product into the basket.
func (b *Basket) Add(p ProductInfo) error {
	if !p.Price.Valid || !p.Price.Decimal.IsPositive() {
		return ErrPriceless
	}
	if b.Contains(p.ID) {
		return ErrAlreadyInBasket
	}

	b.items = append(b.items, Item{
		ProductID: p.ID,
		Title:     p.Title,
		Price:     types.MustNewMoney(p.Price.Decimal),
	})
	b.changed()
	return nil
}

func (b *Basket) Remove(id types.ProductID) error {
	i := b.index(id)
	if i < 0 {
		return ErrItemNotFound
	}
	b.items = slices.Delete(b.items, i, i+1)
	b.changed()
	return nil
}

func (b *Basket) Clear() {
	b.items = nil
	b.changed()
}

func (b *Basket) Items() []Item { return slices.Clone(b.items) }
func (b *Basket) Count() int    { return len(b.items) }

func (b *Basket) Contains(id types.ProductID) bool { return b.index(id) >= 0 }

// ItemIDs returns the product ids in insertion order.
func (b *Basket) ItemIDs() []string {
	ids := make([]string, len(b.items))
	for i, item := range b.items {
		ids[i] = item.ProductID.String()
	}
	return ids
}

func (b *Basket) Total() types.Money {
	total := types.MoneyFromInt(0)
	for _, item := range b.items {
		total = total.Add(item.Price)
	}
	return total
}

func (b *Basket) index(id types.ProductID) int {
	return slices.IndexFunc(b.items, func(item Item) bool {
		return item.ProductID == id
	})
}

func (b *Basket) changed() {
	b.AddDomainEvent(contracts.BasketChangedEvent{
		BaseEvent: events.NewBaseEvent(contracts.BasketChangedEventType),
		Count:     b.Count(),
		Total:     b.Total(),
	})
}
