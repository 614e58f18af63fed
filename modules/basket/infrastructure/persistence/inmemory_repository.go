// Package persistence implements repository interfaces for the basket.
package persistence

import (
	"context"
	"sync"

	"github.com/rai/storefront-checkout-go/modules/basket/domain"
)

// InMemoryRepository keeps the session basket in memory.
type InMemoryRepository struct {
	mu     sync.RWMutex
	basket *domain.Basket
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{basket: domain.NewBasket()}
}

func (r *InMemoryRepository) Current(ctx context.Context) (*domain.Basket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.basket, nil
}

func (r *InMemoryRepository) Save(ctx context.Context, basket *domain.Basket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.basket = basket
	return nil
}

var _ domain.BasketRepository = (*InMemoryRepository)(nil)
