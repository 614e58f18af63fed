// Package persistence implements repository interfaces for orders.
package persistence

import (
	"context"
	"sync"

	"github.com/rai/storefront-checkout-go/modules/orders/domain"
	"github.com/rai/storefront-checkout-go/modules/shared/types"
)

// InMemoryRepository implements OrderRepository using in-memory storage.
// FindAll returns orders newest first.
type InMemoryRepository struct {
	mu     sync.RWMutex
	orders map[string]*domain.Order
	order  []string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		orders: make(map[string]*domain.Order),
	}
}

func (r *InMemoryRepository) Save(ctx context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := order.ID().String()
	if _, exists := r.orders[id]; !exists {
		r.order = append(r.order, id)
	}
	r.orders[id] = order
	return nil
}

func (r *InMemoryRepository) FindByID(ctx context.Context, id types.OrderID) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, exists := r.orders[id.String()]
	if !exists {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

func (r *InMemoryRepository) FindAll(ctx context.Context, offset, limit int) ([]*domain.Order, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := len(r.order)
	if offset >= total {
		return []*domain.Order{}, total, nil
	}

	end := offset + limit
	if end > total {
		end = total
	}

	result := make([]*domain.Order, 0, end-offset)
	for i := offset; i < end; i++ {
		result = append(result, r.orders[r.order[total-1-i]])
	}
	return result, total, nil
}

var _ domain.OrderRepository = (*InMemoryRepository)(nil)
