package domain

import (
	"errors"
	"maps"
	"strings"
)

var (
	ErrUnknownField       = errors.New("unknown order field")
	ErrInvalidStep        = errors.New("checkout step must be 1 or 2")
	ErrSubmissionInFlight = errors.New("order submission already in progress")
	ErrStepNotReady       = errors.New("checkout step has invalid fields")
)

// Validation messages. Empty takes precedence over malformed.
const (
	MsgPaymentRequired = "Select a payment method"
	MsgAddressRequired = "Enter a delivery address"
	MsgAddressTooShort = "Address must be at least 10 characters"
	MsgEmailRequired   = "Enter an email"
	MsgEmailInvalid    = "Enter a valid email"
	MsgPhoneRequired   = "Enter a phone number"
	MsgPhoneInvalid    = "Enter a valid phone number"
)

// ValidationErrors maps each failing field to its message.
// A valid field has no entry.
type ValidationErrors map[Field]string

func (e ValidationErrors) Has(f Field) bool {
	_, ok := e[f]
	return ok
}

// Only returns the entries for the given fields.
func (e ValidationErrors) Only(fields ...Field) ValidationErrors {
	out := make(ValidationErrors, len(fields))
	for _, f := range fields {
		if msg, ok := e[f]; ok {
			out[f] = msg
		}
	}
	return out
}

// Messages returns the messages in field display order.
func (e ValidationErrors) Messages() []string {
	var out []string
	for _, f := range Fields {
		if msg, ok := e[f]; ok {
			out = append(out, msg)
		}
	}
	return out
}

// Join renders the messages as one display string.
func (e ValidationErrors) Join(sep string) string {
	return strings.Join(e.Messages(), sep)
}

// StringMap converts the mapping to plain keys for event payloads.
func (e ValidationErrors) StringMap() map[string]string {
	out := make(map[string]string, len(e))
	for f, msg := range e {
		out[f.String()] = msg
	}
	return out
}

func (e ValidationErrors) Clone() ValidationErrors {
	return maps.Clone(e)
}
