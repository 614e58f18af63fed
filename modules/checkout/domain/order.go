// Package domain contains the checkout order record and its validation rules.
package domain

import (
	"strings"

	shareddomain "github.com/rai/storefront-checkout-go/modules/shared/domain"
)

// Record is an immutable snapshot of the order fields.
type Record struct {
	Payment PaymentMethod `json:"payment"`
	Address string        `json:"address"`
	Email   string        `json:"email"`
	Phone   string        `json:"phone"`
	IsValid bool          `json:"is_valid"`
}

// Order holds the four order fields of one checkout session.
// Every mutation recomputes validity and the error mapping from scratch
// and records a FormErrorsChanged event carrying the fresh mapping.
type Order struct {
	shareddomain.AggregateRoot

	payment PaymentMethod
	address string
	email   string
	phone   string

	valid  bool
	errors ValidationErrors
}

// NewOrder creates an empty order.
func NewOrder() *Order {
	o := &Order{}
	o.revalidate()
	return o
}

// Getters

func (o *Order) Payment() PaymentMethod { return o.payment }
func (o *Order) Address() string        { return o.address }
func (o *Order) Email() string          { return o.email }
func (o *Order) Phone() string          { return o.phone }
func (o *Order) IsValid() bool          { return o.valid }

// Errors returns a copy of the current field→message mapping.
func (o *Order) Errors() ValidationErrors { return o.errors.Clone() }

func (o *Order) Snapshot() Record {
	return Record{
		Payment: o.payment,
		Address: o.address,
		Email:   o.email,
		Phone:   o.phone,
		IsValid: o.valid,
	}
}

// Value returns the raw value of a field as shown in the form.
func (o *Order) Value(f Field) string {
	switch f {
	case FieldPayment:
		return o.payment.String()
	case FieldAddress:
		return o.address
	case FieldEmail:
		return o.email
	case FieldPhone:
		return o.phone
	default:
		return ""
	}
}

// Setters

func (o *Order) SetPayment(method PaymentMethod) {
	o.payment = method
	o.changed()
}

func (o *Order) SetAddress(address string) {
	o.address = address
	o.changed()
}

func (o *Order) SetEmail(email string) {
	o.email = email
	o.changed()
}

func (o *Order) SetPhone(phone string) {
	o.phone = phone
	o.changed()
}

// Set assigns a raw value to the named field. Only an unknown field fails;
// the value itself is validated, never rejected.
func (o *Order) Set(f Field, raw string) error {
	switch f {
	case FieldPayment:
		o.SetPayment(ParsePaymentMethod(raw))
	case FieldAddress:
		o.SetAddress(raw)
	case FieldEmail:
		o.SetEmail(raw)
	case FieldPhone:
		o.SetPhone(raw)
	default:
		return ErrUnknownField
	}
	return nil
}

// Reset restores the empty order. No event is recorded.
func (o *Order) Reset() {
	o.payment = PaymentUnset
	o.address = ""
	o.email = ""
	o.phone = ""
	o.revalidate()
}

// Validation

// ValidateStep1 reports whether payment and address are acceptable.
func (o *Order) ValidateStep1() bool {
	return o.payment.IsSet() && ValidAddress(o.address)
}

// ValidateStep2 reports whether email and phone are acceptable.
func (o *Order) ValidateStep2() bool {
	return ValidEmail(o.email) && ValidPhone(o.phone)
}

// ValidateStep reports readiness of the fields shown on step s.
func (o *Order) ValidateStep(s Step) bool {
	if s == Step2 {
		return o.ValidateStep2()
	}
	return o.ValidateStep1()
}

func (o *Order) changed() {
	o.revalidate()
	o.AddDomainEvent(NewFormErrorsChangedEvent(o.errors))
}

func (o *Order) revalidate() {
	o.valid = o.ValidateStep1() && o.ValidateStep2()

	errs := make(ValidationErrors, len(Fields))
	if !o.payment.IsSet() {
		errs[FieldPayment] = MsgPaymentRequired
	}
	switch {
	case strings.TrimSpace(o.address) == "":
		errs[FieldAddress] = MsgAddressRequired
	case !ValidAddress(o.address):
		errs[FieldAddress] = MsgAddressTooShort
	}
	switch {
	case strings.TrimSpace(o.email) == "":
		errs[FieldEmail] = MsgEmailRequired
	case !ValidEmail(o.email):
		errs[FieldEmail] = MsgEmailInvalid
	}
	switch {
	case strings.TrimSpace(o.phone) == "":
		errs[FieldPhone] = MsgPhoneRequired
	case !ValidPhone(o.phone):
		errs[FieldPhone] = MsgPhoneInvalid
	}
	o.errors = errs
}
