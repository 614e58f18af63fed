package eventbus

import (
	"log/slog"
	"regexp"
	"sync"

	"github.com/rai/storefront-checkout-go/modules/shared/events"
)

// HandlerRegistry provides access to registered event handlers.
// This allows BufferedPublisher to dispatch to handlers without
// managing subscriptions itself.
type HandlerRegistry interface {
	// HandlersFor returns every handler whose subscription matches the
	// given topic, in subscription order.
	HandlersFor(eventType events.Type) []events.Handler
}

type subscription struct {
	id        uint64
	eventType events.Type
	pattern   *regexp.Regexp
	handler   events.Handler
}

func (s subscription) matches(eventType events.Type) bool {
	switch {
	case s.pattern != nil:
		return s.pattern.MatchString(eventType.String())
	case s.eventType == events.Wildcard:
		return true
	default:
		return s.eventType == eventType
	}
}

// EventHandlerRegistry manages event handler subscriptions.
// A subscription targets one topic, every topic (events.Wildcard) or
// every topic matching a regular expression.
type EventHandlerRegistry struct {
	mu     sync.RWMutex
	nextID uint64
	subs   []subscription
	logger *slog.Logger
}

// NewEventHandlerRegistry creates a new registry for event handlers.
func NewEventHandlerRegistry(logger *slog.Logger) *EventHandlerRegistry {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventHandlerRegistry{logger: logger}
}

// Subscribe implements events.Subscriber.
func (r *EventHandlerRegistry) Subscribe(eventType events.Type, handler events.Handler) (events.Subscription, error) {
	if eventType == "" {
		return nil, ErrEmptyTopic
	}
	if handler == nil {
		return nil, ErrNilHandler
	}
	id := r.add(subscription{eventType: eventType, handler: handler})
	r.logger.Debug("subscribed to event", slog.String("event_type", eventType.String()))
	return &handle{registry: r, id: id}, nil
}

// SubscribeAll subscribes handler to every topic.
func (r *EventHandlerRegistry) SubscribeAll(handler events.Handler) (events.Subscription, error) {
	return r.Subscribe(events.Wildcard, handler)
}

// SubscribePattern subscribes handler to every topic matching pattern.
func (r *EventHandlerRegistry) SubscribePattern(pattern *regexp.Regexp, handler events.Handler) (events.Subscription, error) {
	if pattern == nil {
		return nil, ErrEmptyTopic
	}
	if handler == nil {
		return nil, ErrNilHandler
	}
	id := r.add(subscription{pattern: pattern, handler: handler})
	r.logger.Debug("subscribed to event pattern", slog.String("pattern", pattern.String()))
	return &handle{registry: r, id: id}, nil
}

// HandlersFor implements HandlerRegistry.
// Returns a fresh slice so callers may run handlers without holding the lock.
func (r *EventHandlerRegistry) HandlersFor(eventType events.Type) []events.Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []events.Handler
	for _, s := range r.subs {
		if s.matches(eventType) {
			result = append(result, s.handler)
		}
	}
	return result
}

// Len returns the number of live subscriptions.
func (r *EventHandlerRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.subs)
}

// Reset drops every subscription.
func (r *EventHandlerRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs = nil
}

func (r *EventHandlerRegistry) add(s subscription) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	s.id = r.nextID
	r.subs = append(r.subs, s)
	return s.id
}

func (r *EventHandlerRegistry) remove(id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.subs {
		if s.id == id {
			r.subs = append(r.subs[:i:i], r.subs[i+1:]...)
			return
		}
	}
}

type handle struct {
	registry *EventHandlerRegistry
	once     sync.Once
	id       uint64
}

func (h *handle) Unsubscribe() {
	h.once.Do(func() { h.registry.remove(h.id) })
}

// Compile-time interface checks.
var (
	_ events.Subscriber = (*EventHandlerRegistry)(nil)
	_ HandlerRegistry   = (*EventHandlerRegistry)(nil)
)
