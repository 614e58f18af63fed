package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rai/storefront-checkout-go/internal/platform/eventbus"
	"github.com/rai/storefront-checkout-go/modules/orders/application/commands"
	"github.com/rai/storefront-checkout-go/modules/orders/domain"
	"github.com/rai/storefront-checkout-go/modules/orders/infrastructure/persistence"
	"github.com/rai/storefront-checkout-go/modules/shared/events"
	"github.com/rai/storefront-checkout-go/modules/shared/events/contracts"
	"github.com/rai/storefront-checkout-go/modules/shared/types"
)

// --- Mocks ---

type mockOrderAPI struct {
	createOrderFn func(ctx context.Context, payload domain.Payload) (domain.Result, error)
	calls         int
}

func (m *mockOrderAPI) CreateOrder(ctx context.Context, payload domain.Payload) (domain.Result, error) {
	m.calls++
	return m.createOrderFn(ctx, payload)
}

type mockBasket struct {
	ids   []string
	total types.Money
}

func (m *mockBasket) ItemIDs() []string  { return m.ids }
func (m *mockBasket) Total() types.Money { return m.total }

type mockRecorder struct {
	outcomes []string
}

func (m *mockRecorder) ObserveSubmission(outcome string, _ time.Duration) {
	m.outcomes = append(m.outcomes, outcome)
}

// --- Fixture ---

type fixture struct {
	bus       *eventbus.InMemoryEventBus
	repo      *persistence.InMemoryRepository
	recorder  *mockRecorder
	published []events.Event
	// apiCallsAtPlaced is the API call count seen when OrderPlaced arrived.
	apiCallsAtPlaced int
}

func newFixture(t *testing.T, api *mockOrderAPI, basket *mockBasket) (*fixture, *commands.SubmitOrderHandler) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f := &fixture{
		bus:      eventbus.New(logger),
		repo:     persistence.NewInMemoryRepository(),
		recorder: &mockRecorder{},
	}
	_, err := f.bus.SubscribeAll(events.HandlerFunc(func(_ context.Context, e events.Event) error {
		if e.EventType() == contracts.OrderPlacedEventType {
			f.apiCallsAtPlaced = api.calls
		}
		f.published = append(f.published, e)
		return nil
	}))
	require.NoError(t, err)

	handler := commands.NewSubmitOrderHandler(api, basket, f.repo, f.bus, f.bus, f.recorder, logger)
	return f, handler
}

func validCommand() commands.SubmitOrderCommand {
	return commands.SubmitOrderCommand{
		Payment: "card",
		Address: "123 Main Street",
		Email:   "a@b.com",
		Phone:   "+79001234567",
	}
}

// --- Tests ---

func TestSubmitOrderHandler_Handle_Success(t *testing.T) {
	var sent domain.Payload
	api := &mockOrderAPI{
		createOrderFn: func(ctx context.Context, payload domain.Payload) (domain.Result, error) {
			sent = payload
			return domain.Result{ID: "order-7", Total: types.MoneyFromInt(3000)}, nil
		},
	}
	basket := &mockBasket{ids: []string{"p1", "p2"}, total: types.MoneyFromInt(3000)}
	f, handler := newFixture(t, api, basket)

	id, err := handler.Handle(context.Background(), validCommand())
	require.NoError(t, err)
	assert.Equal(t, "order-7", id)

	assert.Equal(t, domain.Payload{
		Payment: "card",
		Address: "123 Main Street",
		Email:   "a@b.com",
		Phone:   "+79001234567",
		Total:   types.MoneyFromInt(3000),
		Items:   []string{"p1", "p2"},
	}, sent)

	require.Len(t, f.published, 1)
	placed, ok := f.published[0].(contracts.OrderPlacedEvent)
	require.True(t, ok, "expected OrderPlacedEvent, got %T", f.published[0])
	assert.Equal(t, "order-7", placed.OrderID)
	assert.Equal(t, []string{"p1", "p2"}, placed.Items)
	assert.Equal(t, 1, f.apiCallsAtPlaced, "OrderPlaced must follow the API call")

	orderID, err := types.ParseOrderID("order-7")
	require.NoError(t, err)
	saved, err := f.repo.FindByID(context.Background(), orderID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPlaced, saved.Status())
	assert.Equal(t, []string{commands.OutcomePlaced}, f.recorder.outcomes)
}

func TestSubmitOrderHandler_Handle_APIFailure(t *testing.T) {
	api := &mockOrderAPI{
		createOrderFn: func(ctx context.Context, payload domain.Payload) (domain.Result, error) {
			return domain.Result{}, errors.New("connection refused")
		},
	}
	basket := &mockBasket{ids: []string{"p1"}, total: types.MoneyFromInt(750)}
	f, handler := newFixture(t, api, basket)

	_, err := handler.Handle(context.Background(), validCommand())
	require.Error(t, err)

	require.Len(t, f.published, 1)
	failed, ok := f.published[0].(contracts.OrderSubmissionFailedEvent)
	require.True(t, ok, "expected OrderSubmissionFailedEvent, got %T", f.published[0])
	assert.Equal(t, "Order submission failed. Please try again.", failed.Message)

	_, total, err := f.repo.FindAll(context.Background(), 0, 10)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Equal(t, []string{commands.OutcomeFailed}, f.recorder.outcomes)
}

func TestSubmitOrderHandler_Handle_EmptyBasket(t *testing.T) {
	api := &mockOrderAPI{
		createOrderFn: func(ctx context.Context, payload domain.Payload) (domain.Result, error) {
			t.Fatal("order API must not be called for an empty basket")
			return domain.Result{}, nil
		},
	}
	f, handler := newFixture(t, api, &mockBasket{})

	_, err := handler.Handle(context.Background(), validCommand())
	require.ErrorIs(t, err, domain.ErrEmptyBasket)

	assert.Zero(t, api.calls)
	require.Len(t, f.published, 1)
	assert.Equal(t, contracts.OrderSubmissionFailedEventType, f.published[0].EventType())
}

func TestSubmitOrderHandler_Handle_BlankOrderID(t *testing.T) {
	api := &mockOrderAPI{
		createOrderFn: func(ctx context.Context, payload domain.Payload) (domain.Result, error) {
			return domain.Result{ID: "  "}, nil
		},
	}
	f, handler := newFixture(t, api, &mockBasket{ids: []string{"p1"}, total: types.MoneyFromInt(1)})

	_, err := handler.Handle(context.Background(), validCommand())
	require.ErrorIs(t, err, types.ErrInvalidID)
	require.Len(t, f.published, 1)
	assert.Equal(t, contracts.OrderSubmissionFailedEventType, f.published[0].EventType())
}
