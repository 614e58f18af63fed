package types

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Unit is the storefront's single currency unit.
const Unit = "synapses"

// ErrNegativeAmount is returned when a price or total would be negative.
var ErrNegativeAmount = errors.New("amount must not be negative")

// Money represents a non-negative amount of synapses.
// Immutable value object - all operations return new instances.
type Money struct {
	amount decimal.Decimal
}

func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, ErrNegativeAmount
	}
	return Money{amount: amount}, nil
}

func MustNewMoney(amount decimal.Decimal) Money {
	m, err := NewMoney(amount)
	if err != nil {
		panic(err)
	}
	return m
}

// MoneyFromInt is a shorthand for whole amounts.
func MoneyFromInt(amount int64) Money {
	return MustNewMoney(decimal.NewFromInt(amount))
}

func (m Money) Amount() decimal.Decimal { return m.amount }
func (m Money) IsZero() bool            { return m.amount.IsZero() }

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

func (m Money) Multiply(factor int64) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(factor))}
}

func (m Money) Equals(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String formats the amount with space-separated thousands, e.g. "12 500 synapses".
func (m Money) String() string {
	whole, frac, _ := strings.Cut(m.amount.String(), ".")
	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	if frac != "" {
		b.WriteString("." + frac)
	}
	return b.String() + " " + Unit
}

// MarshalJSON encodes the amount as a bare JSON number.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.amount.String()), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	parsed, err := NewMoney(d)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
