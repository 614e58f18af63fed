// Package persistence implements repository interfaces for the catalog.
package persistence

import (
	"context"
	"slices"
	"sync"

	"github.com/rai/storefront-checkout-go/modules/catalog/domain"
	"github.com/rai/storefront-checkout-go/modules/shared/types"
)

// InMemoryRepository keeps the catalog in source order.
type InMemoryRepository struct {
	mu       sync.RWMutex
	products []domain.Product
	byID     map[string]int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{byID: make(map[string]int)}
}

func (r *InMemoryRepository) ReplaceAll(ctx context.Context, products []domain.Product) error {
	byID := make(map[string]int, len(products))
	for i, p := range products {
		byID[p.ID.String()] = i
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = slices.Clone(products)
	r.byID = byID
	return nil
}

func (r *InMemoryRepository) FindByID(ctx context.Context, id types.ProductID) (domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id.String()]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return r.products[i], nil
}

func (r *InMemoryRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.products), nil
}

var _ domain.ProductRepository = (*InMemoryRepository)(nil)
