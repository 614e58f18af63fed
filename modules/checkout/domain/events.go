package domain

import (
	"github.com/rai/storefront-checkout-go/modules/shared/events"
	"github.com/rai/storefront-checkout-go/modules/shared/events/contracts"
)

func NewCheckoutStartedEvent() contracts.CheckoutStartedEvent {
	return contracts.CheckoutStartedEvent{
		BaseEvent: events.NewBaseEvent(contracts.CheckoutStartedEventType),
	}
}

func NewOrderFieldChangedEvent(key, value string) contracts.OrderFieldChangedEvent {
	return contracts.OrderFieldChangedEvent{
		BaseEvent: events.NewBaseEvent(contracts.OrderFieldChangedEventType),
		Key:       key,
		Value:     value,
	}
}

func NewFormErrorsChangedEvent(errs ValidationErrors) contracts.FormErrorsChangedEvent {
	return contracts.FormErrorsChangedEvent{
		BaseEvent: events.NewBaseEvent(contracts.FormErrorsChangedEventType),
		Errors:    errs.StringMap(),
	}
}

func NewStepChangedEvent(step Step) contracts.StepChangedEvent {
	return contracts.StepChangedEvent{
		BaseEvent: events.NewBaseEvent(contracts.StepChangedEventType),
		Step:      int(step),
	}
}

func NewSubmitRequestedEvent() contracts.SubmitRequestedEvent {
	return contracts.SubmitRequestedEvent{
		BaseEvent: events.NewBaseEvent(contracts.SubmitRequestedEventType),
	}
}

func NewOrderReadyEvent(r Record) contracts.OrderReadyEvent {
	return contracts.OrderReadyEvent{
		BaseEvent: events.NewBaseEvent(contracts.OrderReadyEventType),
		Payment:   r.Payment.String(),
		Address:   r.Address,
		Email:     r.Email,
		Phone:     r.Phone,
	}
}
