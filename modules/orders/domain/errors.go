package domain

import "errors"

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrOrderNotPending = errors.New("order is not pending")
	ErrEmptyBasket     = errors.New("basket is empty")
	ErrInvalidPayment  = errors.New("payment method must be card or cash")
	ErrMissingContacts = errors.New("order requires address, email and phone")
	ErrOrderRejected   = errors.New("order API rejected the order")
	ErrAPIUnavailable  = errors.New("order API unavailable")
)

// FailureMessage is shown to the user whatever the cause of a failed
// submission was.
const FailureMessage = "Order submission failed. Please try again."
