package domain

// Field names one of the four order fields. The string values are the keys
// carried by OrderFieldChanged events.
type Field string

const (
	FieldPayment Field = "payment"
	FieldAddress Field = "address"
	FieldEmail   Field = "email"
	FieldPhone   Field = "phone"
)

// Fields lists every order field in display order.
var Fields = []Field{FieldPayment, FieldAddress, FieldEmail, FieldPhone}

func (f Field) String() string { return string(f) }

func (f Field) IsValid() bool {
	switch f {
	case FieldPayment, FieldAddress, FieldEmail, FieldPhone:
		return true
	default:
		return false
	}
}

// ParseField maps an event key to a Field.
func ParseField(key string) (Field, error) {
	f := Field(key)
	if !f.IsValid() {
		return "", ErrUnknownField
	}
	return f, nil
}

// PaymentMethod is the chosen way to pay. The zero value means unset.
type PaymentMethod string

const (
	PaymentUnset PaymentMethod = ""
	PaymentCard  PaymentMethod = "card"
	PaymentCash  PaymentMethod = "cash"
)

// PaymentMethods lists the selectable methods in display order.
var PaymentMethods = []PaymentMethod{PaymentCard, PaymentCash}

func (p PaymentMethod) String() string { return string(p) }
func (p PaymentMethod) IsSet() bool    { return p == PaymentCard || p == PaymentCash }

// ParsePaymentMethod maps raw input to a method; anything unknown is unset.
func ParsePaymentMethod(raw string) PaymentMethod {
	switch p := PaymentMethod(raw); p {
	case PaymentCard, PaymentCash:
		return p
	default:
		return PaymentUnset
	}
}
