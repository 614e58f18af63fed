package eventhandlers_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rai/storefront-checkout-go/modules/notifications/application/eventhandlers"
	"github.com/rai/storefront-checkout-go/modules/notifications/domain"
	"github.com/rai/storefront-checkout-go/modules/notifications/infrastructure/sender"
	"github.com/rai/storefront-checkout-go/modules/shared/events"
	"github.com/rai/storefront-checkout-go/modules/shared/events/contracts"
	"github.com/rai/storefront-checkout-go/modules/shared/types"
)

type mockSender struct {
	sendFn func(ctx context.Context, n domain.Notification) error
}

func (m *mockSender) Send(ctx context.Context, n domain.Notification) error {
	return m.sendFn(ctx, n)
}

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestOrderOutcomeHandler(t *testing.T) {
	ctx := context.Background()
	s := sender.NewLogSender(discard())
	h := eventhandlers.NewOrderOutcomeHandler(s, discard())

	placed := contracts.OrderPlacedEvent{
		BaseEvent: events.NewBaseEvent(contracts.OrderPlacedEventType),
		OrderID:   "28c57cb4-3002-4445-8aa1-2a06a5055ae5",
		Total:     types.MoneyFromInt(14200),
	}
	failed := contracts.OrderSubmissionFailedEvent{
		BaseEvent: events.NewBaseEvent(contracts.OrderSubmissionFailedEventType),
		Message:   "Order submission failed. Please try again.",
	}

	require.NoError(t, h.Handle(ctx, placed))
	require.NoError(t, h.Handle(ctx, placed))
	require.NoError(t, h.Handle(ctx, failed))

	sent := s.Sent()
	require.Len(t, sent, 2, "duplicates must be skipped")
	assert.Equal(t, domain.KindOrderConfirmation, sent[0].Kind)
	assert.Equal(t, "Charged 14 200 synapses", sent[0].Body)
	assert.Equal(t, domain.KindOrderFailure, sent[1].Kind)
	assert.Equal(t, failed.Message, sent[1].Body)
}

func TestOrderOutcomeHandler_Errors(t *testing.T) {
	ctx := context.Background()
	errSMTP := errors.New("smtp down")
	h := eventhandlers.NewOrderOutcomeHandler(&mockSender{
		sendFn: func(context.Context, domain.Notification) error { return errSMTP },
	}, discard())

	err := h.Handle(ctx, contracts.OrderPlacedEvent{BaseEvent: events.NewBaseEvent(contracts.OrderPlacedEventType)})
	assert.ErrorIs(t, err, errSMTP)

	err = h.Handle(ctx, contracts.CheckoutStartedEvent{BaseEvent: events.NewBaseEvent(contracts.CheckoutStartedEventType)})
	assert.ErrorContains(t, err, "unexpected event type")
}
