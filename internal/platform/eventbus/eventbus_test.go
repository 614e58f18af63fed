package eventbus_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rai/storefront-checkout-go/internal/platform/eventbus"
	"github.com/rai/storefront-checkout-go/modules/shared/events"
)

type pingEvent struct {
	events.BaseEvent
	N int
}

func ping(topic events.Type, n int) pingEvent {
	return pingEvent{BaseEvent: events.NewBaseEvent(topic), N: n}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recorder collects the topics it was handed, tagged with a label.
type recorder struct {
	got []string
}

func (r *recorder) handler(label string) events.Handler {
	return events.HandlerFunc(func(_ context.Context, e events.Event) error {
		r.got = append(r.got, label+":"+e.EventType().String())
		return nil
	})
}

func TestInMemoryEventBus_ExactTopic(t *testing.T) {
	bus := eventbus.New(discardLogger())
	rec := &recorder{}

	_, err := bus.Subscribe("checkout.A", rec.handler("a"))
	require.NoError(t, err)

	require.NoError(t, bus.Publish(context.Background(), ping("checkout.A", 1), ping("checkout.B", 2)))

	assert.Equal(t, []string{"a:checkout.A"}, rec.got)
}

func TestInMemoryEventBus_WildcardAndPattern(t *testing.T) {
	bus := eventbus.New(discardLogger())
	rec := &recorder{}

	_, err := bus.SubscribeAll(rec.handler("all"))
	require.NoError(t, err)
	_, err = bus.SubscribePattern(regexp.MustCompile(`^checkout\.`), rec.handler("checkout"))
	require.NoError(t, err)
	_, err = bus.Subscribe("orders.OrderPlaced", rec.handler("placed"))
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, bus.Publish(ctx, ping("checkout.StepChanged", 1)))
	require.NoError(t, bus.Publish(ctx, ping("orders.OrderPlaced", 2)))

	assert.Equal(t, []string{
		"all:checkout.StepChanged",
		"checkout:checkout.StepChanged",
		"all:orders.OrderPlaced",
		"placed:orders.OrderPlaced",
	}, rec.got)
}

func TestInMemoryEventBus_Unsubscribe(t *testing.T) {
	bus := eventbus.New(discardLogger())
	rec := &recorder{}

	sub, err := bus.Subscribe("t", rec.handler("x"))
	require.NoError(t, err)
	require.Equal(t, 1, bus.Len())

	sub.Unsubscribe()
	sub.Unsubscribe()

	require.NoError(t, bus.Publish(context.Background(), ping("t", 1)))
	assert.Empty(t, rec.got)
	assert.Zero(t, bus.Len())
}

func TestInMemoryEventBus_HandlerErrorDoesNotStopDelivery(t *testing.T) {
	bus := eventbus.New(discardLogger())
	rec := &recorder{}

	_, err := bus.Subscribe("t", events.HandlerFunc(func(context.Context, events.Event) error {
		return errors.New("boom")
	}))
	require.NoError(t, err)
	_, err = bus.Subscribe("t", rec.handler("second"))
	require.NoError(t, err)

	require.NoError(t, bus.Publish(context.Background(), ping("t", 1)))
	assert.Equal(t, []string{"second:t"}, rec.got)
}

func TestInMemoryEventBus_NestedPublish(t *testing.T) {
	bus := eventbus.New(discardLogger())
	rec := &recorder{}

	_, err := bus.Subscribe("outer", events.HandlerFunc(func(ctx context.Context, _ events.Event) error {
		return bus.Publish(ctx, ping("inner", 2))
	}))
	require.NoError(t, err)
	_, err = bus.Subscribe("inner", rec.handler("inner"))
	require.NoError(t, err)

	require.NoError(t, bus.Publish(context.Background(), ping("outer", 1)))
	assert.Equal(t, []string{"inner:inner"}, rec.got)
}

func TestEventHandlerRegistry_RejectsInvalidSubscriptions(t *testing.T) {
	registry := eventbus.NewEventHandlerRegistry(discardLogger())

	_, err := registry.Subscribe("", events.HandlerFunc(nil))
	assert.ErrorIs(t, err, eventbus.ErrEmptyTopic)

	_, err = registry.Subscribe("t", nil)
	assert.ErrorIs(t, err, eventbus.ErrNilHandler)

	_, err = registry.SubscribePattern(nil, events.HandlerFunc(nil))
	assert.ErrorIs(t, err, eventbus.ErrEmptyTopic)
}

func TestOn_TypedHandler(t *testing.T) {
	bus := eventbus.New(discardLogger())

	var got []int
	_, err := bus.Subscribe("t", events.On(func(_ context.Context, e pingEvent) error {
		got = append(got, e.N)
		return nil
	}))
	require.NoError(t, err)

	require.NoError(t, bus.Publish(context.Background(), ping("t", 7)))
	assert.Equal(t, []int{7}, got)

	handler := events.On(func(context.Context, pingEvent) error { return nil })
	err = handler.Handle(context.Background(), otherEvent{events.NewBaseEvent("t")})
	assert.Error(t, err)
}

type otherEvent struct {
	events.BaseEvent
}
