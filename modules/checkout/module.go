// Package checkout provides the two-step checkout form.
// This is the public API for the checkout bounded context.
package checkout

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/rai/storefront-checkout-go/modules/checkout/application"
	"github.com/rai/storefront-checkout-go/modules/checkout/application/eventhandlers"
	httphandler "github.com/rai/storefront-checkout-go/modules/checkout/infrastructure/http"
	"github.com/rai/storefront-checkout-go/modules/checkout/infrastructure/view"
	"github.com/rai/storefront-checkout-go/modules/shared/events"
)

// Module is the public API for the checkout bounded context.
// External communication: HTTP API (RegisterRoutes) and the Form.
// Cross-module communication: Domain Events (subscribed internally)
type Module interface {
	// RegisterRoutes registers the module's HTTP routes to the given router.
	RegisterRoutes(r chi.Router)
	// Form returns the view that accepts user input and renders the form.
	Form() *view.FormView
	// ViewModel returns the current state of the form.
	ViewModel() application.ViewModel
	// Close removes the module's subscriptions.
	Close()
}

// Config holds the module configuration.
type Config struct {
	EventPublisher  events.Publisher
	EventSubscriber events.Subscriber
	// Renderer optionally receives every view model besides the form view.
	Renderer application.Renderer
	Logger   *slog.Logger
}

type module struct {
	form          *view.FormView
	controller    *application.StepController
	subscriptions []events.Subscription
}

// New creates the checkout module and subscribes it to the bus.
func New(cfg Config) (Module, error) {
	if cfg.EventPublisher == nil || cfg.EventSubscriber == nil {
		return nil, fmt.Errorf("checkout: event publisher and subscriber are required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("module", "checkout")

	form, err := view.New(cfg.EventPublisher)
	if err != nil {
		return nil, fmt.Errorf("checkout: building form view: %w", err)
	}

	state := application.NewOrderState(cfg.EventPublisher)
	controller := application.NewStepController(state, cfg.EventPublisher, application.Renderers{form, cfg.Renderer}, logger)

	m := &module{form: form, controller: controller}
	for _, s := range eventhandlers.Handlers(state, controller, logger) {
		sub, err := cfg.EventSubscriber.Subscribe(s.Type, s.Handler)
		if err != nil {
			m.Close()
			return nil, fmt.Errorf("checkout: subscribing to %s: %w", s.Type, err)
		}
		m.subscriptions = append(m.subscriptions, sub)
	}

	controller.Start(context.Background())
	return m, nil
}

func (m *module) RegisterRoutes(r chi.Router) {
	httphandler.RegisterRoutes(r, m.form)
}

func (m *module) Form() *view.FormView { return m.form }

func (m *module) ViewModel() application.ViewModel { return m.controller.ViewModel() }

func (m *module) Close() {
	for _, s := range m.subscriptions {
		s.Unsubscribe()
	}
	m.subscriptions = nil
}
