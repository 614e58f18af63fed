// Package application contains the checkout use cases: the order state
// service and the two-step controller driving the form.
package application

import (
	"context"
	"fmt"

	"github.com/rai/storefront-checkout-go/modules/checkout/domain"
	"github.com/rai/storefront-checkout-go/modules/shared/events"
)

// OrderState owns the order of the current checkout session. Every setter
// overwrites one field and publishes the recomputed form errors.
type OrderState struct {
	order     *domain.Order
	publisher events.Publisher
}

func NewOrderState(publisher events.Publisher) *OrderState {
	return &OrderState{
		order:     domain.NewOrder(),
		publisher: publisher,
	}
}

func (s *OrderState) SetPayment(ctx context.Context, method domain.PaymentMethod) error {
	s.order.SetPayment(method)
	return s.flush(ctx)
}

func (s *OrderState) SetAddress(ctx context.Context, address string) error {
	s.order.SetAddress(address)
	return s.flush(ctx)
}

func (s *OrderState) SetEmail(ctx context.Context, email string) error {
	s.order.SetEmail(email)
	return s.flush(ctx)
}

func (s *OrderState) SetPhone(ctx context.Context, phone string) error {
	s.order.SetPhone(phone)
	return s.flush(ctx)
}

// Update assigns raw input to the field named by key.
func (s *OrderState) Update(ctx context.Context, key, raw string) error {
	field, err := domain.ParseField(key)
	if err != nil {
		return fmt.Errorf("updating %q: %w", key, err)
	}
	if err := s.order.Set(field, raw); err != nil {
		return fmt.Errorf("updating %q: %w", key, err)
	}
	return s.flush(ctx)
}

// Reset empties the order without notifying anyone.
func (s *OrderState) Reset() {
	s.order.Reset()
	s.order.ClearDomainEvents()
}

func (s *OrderState) ValidateStep1() bool                { return s.order.ValidateStep1() }
func (s *OrderState) ValidateStep2() bool                { return s.order.ValidateStep2() }
func (s *OrderState) ValidateStep(step domain.Step) bool { return s.order.ValidateStep(step) }
func (s *OrderState) IsValid() bool                      { return s.order.IsValid() }
func (s *OrderState) Errors() domain.ValidationErrors    { return s.order.Errors() }
func (s *OrderState) Snapshot() domain.Record            { return s.order.Snapshot() }
func (s *OrderState) Value(f domain.Field) string        { return s.order.Value(f) }

func (s *OrderState) flush(ctx context.Context) error {
	if err := s.publisher.Publish(ctx, s.order.PopDomainEvents()...); err != nil {
		return fmt.Errorf("publishing form errors: %w", err)
	}
	return nil
}
