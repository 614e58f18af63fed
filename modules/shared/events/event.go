// Package events provides the event infrastructure the storefront modules
// use to talk to each other. Modules publish typed events without knowing
// who will handle them.
package events

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Type names a topic. Every concrete event type belongs to exactly one topic.
type Type string

func (t Type) String() string { return string(t) }

// Wildcard subscribes a handler to every topic.
const Wildcard Type = "*"

// Event represents something that happened in the storefront.
// Events are immutable facts.
type Event interface {
	// EventID returns the unique identifier for this event instance.
	EventID() string
	// EventType returns the topic of the event (e.g., "checkout.OrderReady").
	EventType() Type
	// OccurredAt returns when the event occurred.
	OccurredAt() time.Time
}

// BaseEvent provides common event fields. Embed this in concrete event types.
type BaseEvent struct {
	ID        string    `json:"id"`
	Type      Type      `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}

func NewBaseEvent(eventType Type) BaseEvent {
	return BaseEvent{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
	}
}

func (e BaseEvent) EventID() string       { return e.ID }
func (e BaseEvent) EventType() Type       { return e.Type }
func (e BaseEvent) OccurredAt() time.Time { return e.Timestamp }

// Publisher publishes events for other modules to consume.
type Publisher interface {
	Publish(ctx context.Context, evts ...Event) error
}

// Handler handles a delivered event.
type Handler interface {
	Handle(ctx context.Context, event Event) error
}

// Subscription is returned by Subscribe and removes the handler again.
type Subscription interface {
	Unsubscribe()
}

// Subscriber subscribes handlers to topics.
type Subscriber interface {
	Subscribe(eventType Type, handler Handler) (Subscription, error)
}

// HandlerFunc is an adapter to use ordinary functions as event handlers.
type HandlerFunc func(ctx context.Context, event Event) error

func (f HandlerFunc) Handle(ctx context.Context, event Event) error {
	return f(ctx, event)
}

// On adapts a function taking one concrete event type into a Handler.
// Delivering any other type to it is a wiring bug and returns an error.
func On[E Event](fn func(ctx context.Context, event E) error) Handler {
	return HandlerFunc(func(ctx context.Context, event Event) error {
		typed, ok := event.(E)
		if !ok {
			return fmt.Errorf("unexpected event type: %T", event)
		}
		return fn(ctx, typed)
	})
}
