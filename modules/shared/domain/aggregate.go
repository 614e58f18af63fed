// Package domain provides shared domain primitives.
package domain

import "github.com/rai/storefront-checkout-go/modules/shared/events"

// AggregateRoot is a base type for aggregates that collect events.
// Embed this in aggregate structs to gain event collection capability.
//
// Example:
//
//	type Basket struct {
//	    domain.AggregateRoot
//	    items []Item
//	}
//
//	func (b *Basket) Clear() {
//	    b.items = nil
//	    b.AddDomainEvent(newBasketChangedEvent(b))
//	}
type AggregateRoot struct {
	domainEvents []events.Event
}

// AddDomainEvent adds an event to the aggregate's internal collection.
// Events are collected during business operations and published by the
// application layer once the operation is complete.
func (a *AggregateRoot) AddDomainEvent(event events.Event) {
	a.domainEvents = append(a.domainEvents, event)
}

// DomainEvents returns all collected events.
func (a *AggregateRoot) DomainEvents() []events.Event {
	return a.domainEvents
}

// ClearDomainEvents removes all collected events.
func (a *AggregateRoot) ClearDomainEvents() {
	a.domainEvents = nil
}

// PopDomainEvents returns the collected events and clears the collection.
func (a *AggregateRoot) PopDomainEvents() []events.Event {
	evts := a.domainEvents
	a.domainEvents = nil
	return evts
}
