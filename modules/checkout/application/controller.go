package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rai/storefront-checkout-go/modules/checkout/domain"
	"github.com/rai/storefront-checkout-go/modules/shared/events"
	"github.com/rai/storefront-checkout-go/modules/shared/types"
)

// StepController drives the two checkout steps. It recomputes readiness of
// the active step after every change and pushes a fresh ViewModel to the
// renderer.
type StepController struct {
	state     *OrderState
	publisher events.Publisher
	renderer  Renderer
	logger    *slog.Logger

	step        domain.Step
	pending     bool
	submitError string
	lastOrder   *PlacedOrder
}

func NewStepController(state *OrderState, publisher events.Publisher, renderer Renderer, logger *slog.Logger) *StepController {
	if logger == nil {
		logger = slog.Default()
	}
	if renderer == nil {
		renderer = Renderers(nil)
	}
	return &StepController{
		state:     state,
		publisher: publisher,
		renderer:  renderer,
		logger:    logger,
		step:      domain.Step1,
	}
}

// Start opens a fresh checkout session on the first step.
func (c *StepController) Start(ctx context.Context) {
	c.state.Reset()
	c.step = domain.Step1
	c.pending = false
	c.submitError = ""
	c.lastOrder = nil
	c.logger.DebugContext(ctx, "checkout started")
	c.Refresh()
}

// Submit advances from the first step or places the order from the second.
// When the active step is not ready nothing changes and ErrStepNotReady is
// returned; its errors are already part of the view model.
func (c *StepController) Submit(ctx context.Context) error {
	if c.pending {
		return domain.ErrSubmissionInFlight
	}

	if !c.state.ValidateStep(c.step) {
		c.Refresh()
		return fmt.Errorf("%s step: %w", c.step, domain.ErrStepNotReady)
	}

	if c.step == domain.Step1 {
		c.step = domain.Step2
		c.submitError = ""
		c.Refresh()
		return nil
	}

	c.pending = true
	c.submitError = ""
	c.Refresh()

	c.logger.InfoContext(ctx, "order ready", slog.String("payment", c.state.Snapshot().Payment.String()))

	// Delivery is synchronous: the submission result may already have been
	// applied when Publish returns.
	if err := c.publisher.Publish(ctx, domain.NewOrderReadyEvent(c.state.Snapshot())); err != nil {
		c.pending = false
		c.Refresh()
		return fmt.Errorf("publishing order ready: %w", err)
	}
	return nil
}

// SetStep shows the given step without validating the current one.
func (c *StepController) SetStep(ctx context.Context, step domain.Step) error {
	if !step.IsValid() {
		return domain.ErrInvalidStep
	}
	c.step = step
	c.submitError = ""
	c.lastOrder = nil
	c.logger.DebugContext(ctx, "step changed", slog.Int("step", int(step)))
	c.Refresh()
	return nil
}

// FormErrorsChanged recomputes readiness after a field mutation. Editing
// the form leaves the success screen of the previous order.
func (c *StepController) FormErrorsChanged(ctx context.Context) {
	c.submitError = ""
	c.lastOrder = nil
	c.Refresh()
}

// OrderPlaced resets the session after a successful submission.
func (c *StepController) OrderPlaced(ctx context.Context, orderID string, total types.Money) {
	c.state.Reset()
	c.step = domain.Step1
	c.pending = false
	c.submitError = ""
	c.lastOrder = &PlacedOrder{ID: orderID, Total: total}
	c.logger.InfoContext(ctx, "order placed", slog.String("order_id", orderID), slog.String("total", total.String()))
	c.Refresh()
}

// OrderFailed keeps the entered data and shows message.
func (c *StepController) OrderFailed(ctx context.Context, message string) {
	c.pending = false
	c.submitError = message
	c.logger.WarnContext(ctx, "order submission failed", slog.String("message", message))
	c.Refresh()
}

func (c *StepController) Step() domain.Step { return c.step }
func (c *StepController) Pending() bool     { return c.pending }

// Ready reports whether the fields of the active step validate.
func (c *StepController) Ready() bool { return c.state.ValidateStep(c.step) }

// ViewModel builds a snapshot of the current form.
func (c *StepController) ViewModel() ViewModel {
	record := c.state.Snapshot()

	errText := c.submitError
	if errText == "" {
		errText = c.state.Errors().Only(c.step.Fields()...).Join("\n")
	}

	values := make(map[string]string, len(domain.Fields))
	for _, f := range domain.Fields {
		values[f.String()] = c.state.Value(f)
	}

	payment := make([]PaymentOption, 0, len(domain.PaymentMethods))
	for _, m := range domain.PaymentMethods {
		payment = append(payment, PaymentOption{Method: m, Selected: record.Payment == m})
	}

	var last *PlacedOrder
	if c.lastOrder != nil {
		cp := *c.lastOrder
		last = &cp
	}

	return ViewModel{
		Step:          c.step,
		StepName:      c.step.String(),
		SubmitLabel:   c.step.SubmitLabel(),
		SubmitEnabled: c.Ready() && !c.pending,
		Pending:       c.pending,
		Errors:        errText,
		Values:        values,
		Payment:       payment,
		LastOrder:     last,
	}
}

// Refresh pushes the current view model to the renderer.
func (c *StepController) Refresh() {
	c.renderer.Render(c.ViewModel())
}
