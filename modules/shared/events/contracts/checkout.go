// Package contracts defines the public event contracts modules exchange.
// Modules import event types from here, never from another module's domain
// package. Each type is bound to exactly one topic constant.
package contracts

import "github.com/rai/storefront-checkout-go/modules/shared/events"

// Checkout module topics.
const (
	CheckoutStartedEventType   events.Type = "checkout.CheckoutStarted"
	OrderFieldChangedEventType events.Type = "checkout.OrderFieldChanged"
	FormErrorsChangedEventType events.Type = "checkout.FormErrorsChanged"
	StepChangedEventType       events.Type = "checkout.StepChanged"
	SubmitRequestedEventType   events.Type = "checkout.SubmitRequested"
	OrderReadyEventType        events.Type = "checkout.OrderReady"
)

// CheckoutStartedEvent opens a fresh checkout session.
type CheckoutStartedEvent struct {
	events.BaseEvent
}

// OrderFieldChangedEvent carries one raw user input keyed by field name
// (payment, address, email or phone).
type OrderFieldChangedEvent struct {
	events.BaseEvent
	Key   string `json:"key"`
	Value string `json:"value"`
}

// FormErrorsChangedEvent carries the full field→message mapping recomputed
// after an order field mutation. Valid fields have no entry.
type FormErrorsChangedEvent struct {
	events.BaseEvent
	Errors map[string]string `json:"errors"`
}

// StepChangedEvent asks the checkout to display the given step without
// validating the current one.
type StepChangedEvent struct {
	events.BaseEvent
	Step int `json:"step"`
}

// SubmitRequestedEvent is published when the user presses the submit
// control of the active step.
type SubmitRequestedEvent struct {
	events.BaseEvent
}

// OrderReadyEvent is published once both checkout steps validate and the
// order may be placed.
type OrderReadyEvent struct {
	events.BaseEvent
	Payment string `json:"payment"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}
