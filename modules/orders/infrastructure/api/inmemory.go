package api

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/rai/storefront-checkout-go/modules/orders/domain"
)

// InMemoryAPI accepts every order locally. Failures can be queued to
// rehearse the error path.
type InMemoryAPI struct {
	mu       sync.Mutex
	orders   []domain.Payload
	failures []error
}

func NewInMemoryAPI() *InMemoryAPI {
	return &InMemoryAPI{}
}

// FailNext makes the next call return err.
func (a *InMemoryAPI) FailNext(err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.failures = append(a.failures, err)
}

func (a *InMemoryAPI) CreateOrder(ctx context.Context, payload domain.Payload) (domain.Result, error) {
	if err := ctx.Err(); err != nil {
		return domain.Result{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if len(a.failures) > 0 {
		err := a.failures[0]
		a.failures = a.failures[1:]
		return domain.Result{}, err
	}

	payload.Items = slices.Clone(payload.Items)
	a.orders = append(a.orders, payload)
	return domain.Result{ID: uuid.New().String(), Total: payload.Total}, nil
}

// Orders returns the accepted payloads in arrival order.
func (a *InMemoryAPI) Orders() []domain.Payload {
	a.mu.Lock()
	defer a.mu.Unlock()
	return slices.Clone(a.orders)
}

var _ domain.OrderAPI = (*InMemoryAPI)(nil)
