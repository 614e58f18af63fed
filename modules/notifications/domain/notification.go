// Package domain contains the customer notifications.
package domain

import "context"

// Notification is a message for the customer.
type Notification struct {
	Kind    string
	OrderID string
	Subject string
	Body    string
}

const (
	KindOrderConfirmation = "order_confirmation"
	KindOrderFailure      = "order_failure"
)

// Sender delivers notifications.
type Sender interface {
	Send(ctx context.Context, n Notification) error
}
