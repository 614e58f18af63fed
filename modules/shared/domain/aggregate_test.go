package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rai/storefront-checkout-go/modules/shared/domain"
	"github.com/rai/storefront-checkout-go/modules/shared/events"
)

type testEvent struct {
	events.BaseEvent
}

func TestAggregateRoot_PopDomainEvents(t *testing.T) {
	var root domain.AggregateRoot

	first := testEvent{events.NewBaseEvent("test.First")}
	second := testEvent{events.NewBaseEvent("test.Second")}
	root.AddDomainEvent(first)
	root.AddDomainEvent(second)

	assert.Len(t, root.DomainEvents(), 2)

	popped := root.PopDomainEvents()
	assert.Equal(t, []events.Event{first, second}, popped)
	assert.Empty(t, root.DomainEvents())
	assert.Empty(t, root.PopDomainEvents())
}
