package eventbus

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rai/storefront-checkout-go/modules/shared/events"
)

// ErrEventProcessingDepthExceeded is returned when event handlers
// trigger too many nested events.
var ErrEventProcessingDepthExceeded = errors.New("event processing depth exceeded")

// BufferedPublisher buffers events and dispatches them only when Flush is
// called. Create a new instance per operation whose outcome decides whether
// the events happened at all; call Discard when it did not.
//
// Example:
//
//	publisher := eventbus.NewBufferedPublisher(registry, 10)
//	if err := doWork(ctx, publisher); err != nil {
//	    publisher.Discard()
//	    return err
//	}
//	return publisher.Flush(ctx)
type BufferedPublisher struct {
	registry HandlerRegistry
	pending  []events.Event
	mu       sync.Mutex
	maxDepth int
}

// NewBufferedPublisher creates a BufferedPublisher with the given registry.
// maxDepth limits nested event processing to prevent infinite loops (default: 10).
func NewBufferedPublisher(registry HandlerRegistry, maxDepth int) *BufferedPublisher {
	if maxDepth <= 0 {
		maxDepth = 10
	}
	return &BufferedPublisher{
		registry: registry,
		maxDepth: maxDepth,
	}
}

// Publish buffers events for later processing.
// Implements events.Publisher.
func (b *BufferedPublisher) Publish(ctx context.Context, evts ...events.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending = append(b.pending, evts...)
	return nil
}

// Flush processes all buffered events synchronously.
// Handlers may publish additional events to this publisher, which are
// processed in the same flush. A failing handler does not stop delivery
// to the others; all handler errors are joined into the result.
func (b *BufferedPublisher) Flush(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	var errs []error
	depth := 0
	for len(b.pending) > 0 {
		if depth >= b.maxDepth {
			return errors.Join(append(errs, ErrEventProcessingDepthExceeded)...)
		}

		event := b.pending[0]
		b.pending = b.pending[1:]

		handlers := b.registry.HandlersFor(event.EventType())
		for _, handler := range handlers {
			// Unlock during handler execution to allow Publish calls from handlers
			b.mu.Unlock()
			err := handler.Handle(ctx, event)
			b.mu.Lock()

			if err != nil {
				errs = append(errs, fmt.Errorf("handler failed for event %s: %w", event.EventType().String(), err))
			}
		}

		depth++
	}

	return errors.Join(errs...)
}

// Discard drops every buffered event.
func (b *BufferedPublisher) Discard() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending = nil
}

// PendingCount returns the number of buffered events (useful for testing).
func (b *BufferedPublisher) PendingCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pending)
}

// Compile-time interface check.
var _ events.Publisher = (*BufferedPublisher)(nil)
