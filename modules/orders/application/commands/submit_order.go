// Package commands contains write use cases for the orders module.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rai/storefront-checkout-go/internal/platform/eventbus"
	"github.com/rai/storefront-checkout-go/modules/orders/domain"
	"github.com/rai/storefront-checkout-go/modules/shared/events"
	"github.com/rai/storefront-checkout-go/modules/shared/types"
)

// Submission outcomes reported to the SubmissionRecorder.
const (
	OutcomePlaced = "placed"
	OutcomeFailed = "failed"
)

// SubmissionRecorder observes finished submissions.
type SubmissionRecorder interface {
	ObserveSubmission(outcome string, duration time.Duration)
}

// SubmitOrderCommand places an order with the contacts entered at checkout.
type SubmitOrderCommand struct {
	Payment string
	Address string
	Email   string
	Phone   string
}

type SubmitOrderHandler struct {
	api             domain.OrderAPI
	basket          domain.BasketReader
	repo            domain.OrderRepository
	handlerRegistry eventbus.HandlerRegistry
	publisher       events.Publisher
	recorder        SubmissionRecorder
	logger          *slog.Logger
}

func NewSubmitOrderHandler(
	api domain.OrderAPI,
	basket domain.BasketReader,
	repo domain.OrderRepository,
	handlerRegistry eventbus.HandlerRegistry,
	publisher events.Publisher,
	recorder SubmissionRecorder,
	logger *slog.Logger,
) *SubmitOrderHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SubmitOrderHandler{
		api:             api,
		basket:          basket,
		repo:            repo,
		handlerRegistry: handlerRegistry,
		publisher:       publisher,
		recorder:        recorder,
		logger:          logger,
	}
}

// Handle executes the submit order use case.
// OrderPlaced is buffered and dispatched only after the order API accepted
// the order and it was stored. Any failure is logged and reported as
// OrderSubmissionFailed carrying the generic user-facing message; nothing
// else changes.
func (h *SubmitOrderHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) (string, error) {
	start := time.Now()

	id, err := h.place(ctx, cmd)
	if err != nil {
		h.logger.ErrorContext(ctx, "order submission failed", slog.Any("error", err))
		h.observe(OutcomeFailed, start)
		if pubErr := h.publisher.Publish(ctx, domain.NewOrderSubmissionFailedEvent()); pubErr != nil {
			h.logger.ErrorContext(ctx, "failed to publish submission failure", slog.Any("error", pubErr))
		}
		return "", err
	}

	h.observe(OutcomePlaced, start)
	return id, nil
}

func (h *SubmitOrderHandler) place(ctx context.Context, cmd SubmitOrderCommand) (string, error) {
	order, err := domain.NewOrder(domain.Contacts(cmd), h.basket.ItemIDs(), h.basket.Total())
	if err != nil {
		return "", fmt.Errorf("building order: %w", err)
	}

	result, err := h.api.CreateOrder(ctx, order.Payload())
	if err != nil {
		return "", fmt.Errorf("creating order: %w", err)
	}

	orderID, err := types.ParseOrderID(result.ID)
	if err != nil {
		return "", fmt.Errorf("order API returned id %q: %w", result.ID, err)
	}
	if err := order.MarkPlaced(orderID, result.Total); err != nil {
		return "", err
	}

	if err := h.repo.Save(ctx, order); err != nil {
		return "", fmt.Errorf("saving order: %w", err)
	}

	h.logger.InfoContext(ctx, "order placed",
		slog.String("order_id", orderID.String()),
		slog.String("total", order.Total().String()),
		slog.Int("items", len(order.Items())),
	)

	// Create the buffered publisher per submission so nothing leaks between calls
	publisher := eventbus.NewBufferedPublisher(h.handlerRegistry, 10)
	if err := publisher.Publish(ctx, order.PopDomainEvents()...); err != nil {
		return "", fmt.Errorf("publishing event: %w", err)
	}
	if err := publisher.Flush(ctx); err != nil {
		h.logger.ErrorContext(ctx, "order placed but a handler failed", slog.String("order_id", orderID.String()), slog.Any("error", err))
	}

	return orderID.String(), nil
}

func (h *SubmitOrderHandler) observe(outcome string, start time.Time) {
	if h.recorder != nil {
		h.recorder.ObserveSubmission(outcome, time.Since(start))
	}
}
