// Package eventhandlers adapts bus events to the checkout use cases.
package eventhandlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rai/storefront-checkout-go/modules/checkout/application"
	"github.com/rai/storefront-checkout-go/modules/checkout/domain"
	"github.com/rai/storefront-checkout-go/modules/shared/events"
	"github.com/rai/storefront-checkout-go/modules/shared/events/contracts"
)

// Subscription binds a handler to its topic.
type Subscription struct {
	Type    events.Type
	Handler events.Handler
}

// Handlers returns every checkout subscription.
func Handlers(state *application.OrderState, ctrl *application.StepController, logger *slog.Logger) []Subscription {
	return []Subscription{
		{contracts.OrderFieldChangedEventType, NewOrderFieldChangedHandler(state, logger)},
		{contracts.FormErrorsChangedEventType, events.On(func(ctx context.Context, _ contracts.FormErrorsChangedEvent) error {
			ctrl.FormErrorsChanged(ctx)
			return nil
		})},
		{contracts.StepChangedEventType, events.On(func(ctx context.Context, e contracts.StepChangedEvent) error {
			step, err := domain.ParseStep(e.Step)
			if err != nil {
				return err
			}
			return ctrl.SetStep(ctx, step)
		})},
		{contracts.SubmitRequestedEventType, NewSubmitRequestedHandler(ctrl, logger)},
		{contracts.CheckoutStartedEventType, events.On(func(ctx context.Context, _ contracts.CheckoutStartedEvent) error {
			ctrl.Start(ctx)
			return nil
		})},
		{contracts.OrderPlacedEventType, events.On(func(ctx context.Context, e contracts.OrderPlacedEvent) error {
			ctrl.OrderPlaced(ctx, e.OrderID, e.Total)
			return nil
		})},
		{contracts.OrderSubmissionFailedEventType, events.On(func(ctx context.Context, e contracts.OrderSubmissionFailedEvent) error {
			ctrl.OrderFailed(ctx, e.Message)
			return nil
		})},
	}
}

// OrderFieldChangedHandler writes user input into the order state.
type OrderFieldChangedHandler struct {
	state  *application.OrderState
	logger *slog.Logger
}

func NewOrderFieldChangedHandler(state *application.OrderState, logger *slog.Logger) *OrderFieldChangedHandler {
	return &OrderFieldChangedHandler{state: state, logger: logger}
}

// Handle ignores unknown keys after logging them.
func (h *OrderFieldChangedHandler) Handle(ctx context.Context, event events.Event) error {
	changed, ok := event.(contracts.OrderFieldChangedEvent)
	if !ok {
		return fmt.Errorf("unexpected event type: %T", event)
	}

	err := h.state.Update(ctx, changed.Key, changed.Value)
	if errors.Is(err, domain.ErrUnknownField) {
		h.logger.WarnContext(ctx, "ignoring unknown order field", slog.String("key", changed.Key))
		return nil
	}
	return err
}

// SubmitRequestedHandler forwards the submit control to the controller.
type SubmitRequestedHandler struct {
	ctrl   *application.StepController
	logger *slog.Logger
}

func NewSubmitRequestedHandler(ctrl *application.StepController, logger *slog.Logger) *SubmitRequestedHandler {
	return &SubmitRequestedHandler{ctrl: ctrl, logger: logger}
}

// Handle treats refused submits as normal outcomes; the view model already
// shows why.
func (h *SubmitRequestedHandler) Handle(ctx context.Context, event events.Event) error {
	if _, ok := event.(contracts.SubmitRequestedEvent); !ok {
		return fmt.Errorf("unexpected event type: %T", event)
	}

	err := h.ctrl.Submit(ctx)
	switch {
	case errors.Is(err, domain.ErrStepNotReady), errors.Is(err, domain.ErrSubmissionInFlight):
		h.logger.DebugContext(ctx, "submit refused", slog.Any("reason", err))
		return nil
	default:
		return err
	}
}
