// Package domain contains business entities and rules for orders.
package domain

import (
	"slices"
	"strings"
	"time"

	shareddomain "github.com/rai/storefront-checkout-go/modules/shared/domain"
	"github.com/rai/storefront-checkout-go/modules/shared/types"
)

// Contacts are the checkout fields an order is placed with.
type Contacts struct {
	Payment string
	Address string
	Email   string
	Phone   string
}

// Order is the aggregate root for the order bounded context. It is created
// pending from the checkout and the basket, and becomes placed once the
// order API accepted it.
type Order struct {
	shareddomain.AggregateRoot

	id        types.OrderID
	contacts  Contacts
	items     []string
	total     types.Money
	status    Status
	createdAt time.Time
	placedAt  time.Time
}

// NewOrder creates a pending order. The basket must not be empty.
func NewOrder(contacts Contacts, items []string, total types.Money) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyBasket
	}
	if contacts.Payment != "card" && contacts.Payment != "cash" {
		return nil, ErrInvalidPayment
	}
	if strings.TrimSpace(contacts.Address) == "" || strings.TrimSpace(contacts.Email) == "" || strings.TrimSpace(contacts.Phone) == "" {
		return nil, ErrMissingContacts
	}

	return &Order{
		contacts:  contacts,
		items:     slices.Clone(items),
		total:     total,
		status:    StatusPending,
		createdAt: time.Now().UTC(),
	}, nil
}

// Reconstitute rebuilds an order from storage.
func Reconstitute(id types.OrderID, contacts Contacts, items []string, total types.Money, status Status, createdAt, placedAt time.Time) *Order {
	return &Order{
		id:        id,
		contacts:  contacts,
		items:     slices.Clone(items),
		total:     total,
		status:    status,
		createdAt: createdAt,
		placedAt:  placedAt,
	}
}

// Getters

func (o *Order) ID() types.OrderID    { return o.id }
func (o *Order) Contacts() Contacts   { return o.contacts }
func (o *Order) Items() []string      { return slices.Clone(o.items) }
func (o *Order) Total() types.Money   { return o.total }
func (o *Order) Status() Status       { return o.status }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) PlacedAt() time.Time  { return o.placedAt }

// Payload builds the order API request body.
func (o *Order) Payload() Payload {
	return Payload{
		Payment: o.contacts.Payment,
		Address: o.contacts.Address,
		Email:   o.contacts.Email,
		Phone:   o.contacts.Phone,
		Total:   o.total,
		Items:   slices.Clone(o.items),
	}
}

// Business methods

// MarkPlaced records the API's acceptance. The API's total wins over the
// basket total when it reports one.
func (o *Order) MarkPlaced(id types.OrderID, total types.Money) error {
	if o.status != StatusPending {
		return ErrOrderNotPending
	}

	o.id = id
	if !total.IsZero() {
		o.total = total
	}
	o.status = StatusPlaced
	o.placedAt = time.Now().UTC()
	o.AddDomainEvent(NewOrderPlacedEvent(o))
	return nil
}
