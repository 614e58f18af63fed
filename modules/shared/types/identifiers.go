// Package types provides shared value objects and type definitions
// used across multiple modules (Shared Kernel pattern).
package types

import (
	"strings"

	"github.com/google/uuid"
)

// ProductID represents a unique identifier for a catalog product.
// Using a distinct type prevents mixing up different ID types.
type ProductID struct {
	value string
}

func ParseProductID(s string) (ProductID, error) {
	if _, err := uuid.Parse(s); err != nil {
		return ProductID{}, ErrInvalidID
	}
	return ProductID{value: s}, nil
}

func MustParseProductID(s string) ProductID {
	id, err := ParseProductID(s)
	if err != nil {
		panic(err)
	}
	return id
}

func (id ProductID) String() string { return id.value }
func (id ProductID) IsZero() bool   { return id.value == "" }

// OrderID identifies an order accepted by the order API. The API owns
// the format, so any non-blank value is accepted.
type OrderID struct {
	value string
}

func NewOrderID() OrderID {
	return OrderID{value: uuid.New().String()}
}

func ParseOrderID(s string) (OrderID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return OrderID{}, ErrInvalidID
	}
	return OrderID{value: s}, nil
}

func (id OrderID) String() string { return id.value }
func (id OrderID) IsZero() bool   { return id.value == "" }
