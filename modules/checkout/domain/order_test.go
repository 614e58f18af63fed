package domain_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rai/storefront-checkout-go/modules/checkout/domain"
	"github.com/rai/storefront-checkout-go/modules/shared/events/contracts"
)

func TestOrder_AddressRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		address string
		want    bool
	}{
		{name: "empty", address: "", want: false},
		{name: "short", address: "short", want: false},
		{name: "nine chars", address: "123456789", want: false},
		{name: "exactly ten", address: "1234567890", want: true},
		{name: "padded short", address: "   short    ", want: false},
		{name: "padded ten", address: "  1234567890  ", want: true},
		{name: "multibyte ten", address: "ул. Ленина", want: true},
		{name: "whitespace only", address: "            ", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			o := domain.NewOrder()
			o.SetPayment(domain.PaymentCard)
			o.SetAddress(tt.address)

			assert.Equal(t, tt.want, o.ValidateStep1())
			assert.Equal(t, tt.want, len([]rune(strings.TrimSpace(tt.address))) >= domain.MinAddressLength)
		})
	}
}

func TestOrder_PaymentClearsError(t *testing.T) {
	t.Parallel()

	for _, method := range domain.PaymentMethods {
		o := domain.NewOrder()
		require.True(t, o.Errors().Has(domain.FieldPayment))

		o.SetPayment(method)
		assert.False(t, o.Errors().Has(domain.FieldPayment), method)
		assert.Equal(t, method, o.Payment())
	}
}

func TestOrder_Reset(t *testing.T) {
	t.Parallel()

	o := domain.NewOrder()
	o.SetPayment(domain.PaymentCash)
	o.SetAddress("123 Main Street")
	o.SetEmail("a@b.com")
	o.SetPhone("+7 (900) 123-45-67")
	require.True(t, o.IsValid())
	o.PopDomainEvents()

	o.Reset()

	assert.False(t, o.ValidateStep1())
	assert.False(t, o.ValidateStep2())
	assert.False(t, o.IsValid())
	want := domain.ValidationErrors{
		domain.FieldPayment: domain.MsgPaymentRequired,
		domain.FieldAddress: domain.MsgAddressRequired,
		domain.FieldEmail:   domain.MsgEmailRequired,
		domain.FieldPhone:   domain.MsgPhoneRequired,
	}
	if diff := cmp.Diff(want, o.Errors()); diff != "" {
		t.Errorf("errors after reset (-want +got):\n%s", diff)
	}
	assert.Empty(t, o.DomainEvents(), "reset must not notify")
	assert.Equal(t, domain.Record{}, o.Snapshot())
}

func TestOrder_SetEmailIdempotent(t *testing.T) {
	t.Parallel()

	for _, v := range []string{"", "not-an-email", "a@b.com"} {
		o := domain.NewOrder()
		o.SetEmail(v)
		first := o.Errors()
		o.SetEmail(v)
		if diff := cmp.Diff(first, o.Errors()); diff != "" {
			t.Errorf("SetEmail(%q) twice changed errors (-first +second):\n%s", v, diff)
		}
	}
}

func TestOrder_Scenarios(t *testing.T) {
	t.Parallel()

	t.Run("valid step one", func(t *testing.T) {
		t.Parallel()
		o := domain.NewOrder()
		o.SetPayment(domain.PaymentCard)
		o.SetAddress("123 Main Street")
		assert.True(t, o.ValidateStep1())
		assert.False(t, o.IsValid())
	})

	t.Run("short address", func(t *testing.T) {
		t.Parallel()
		o := domain.NewOrder()
		o.SetAddress("short")
		assert.Equal(t, domain.MsgAddressTooShort, o.Errors()[domain.FieldAddress])
		assert.False(t, o.ValidateStep1())
	})

	t.Run("email error clears", func(t *testing.T) {
		t.Parallel()
		o := domain.NewOrder()
		o.SetEmail("not-an-email")
		assert.Equal(t, domain.MsgEmailInvalid, o.Errors()[domain.FieldEmail])
		o.SetEmail("a@b.com")
		assert.False(t, o.Errors().Has(domain.FieldEmail))
	})
}

func TestOrder_Set(t *testing.T) {
	t.Parallel()

	o := domain.NewOrder()
	require.NoError(t, o.Set(domain.FieldPayment, "cash"))
	require.NoError(t, o.Set(domain.FieldAddress, "123 Main Street"))
	require.NoError(t, o.Set(domain.FieldEmail, "a@b.com"))
	require.NoError(t, o.Set(domain.FieldPhone, "89001234567"))
	assert.True(t, o.IsValid())

	require.NoError(t, o.Set(domain.FieldPayment, "bitcoin"))
	assert.Equal(t, domain.PaymentUnset, o.Payment())
	assert.False(t, o.IsValid())

	before := o.Snapshot()
	require.ErrorIs(t, o.Set(domain.Field("name"), "x"), domain.ErrUnknownField)
	assert.Equal(t, before, o.Snapshot())
}

func TestOrder_RecordsFormErrorsChanged(t *testing.T) {
	t.Parallel()

	o := domain.NewOrder()
	o.SetAddress("short")
	o.SetEmail("a@b.com")

	evts := o.PopDomainEvents()
	require.Len(t, evts, 2)

	last, ok := evts[1].(contracts.FormErrorsChangedEvent)
	require.True(t, ok)
	assert.Equal(t, contracts.FormErrorsChangedEventType, last.EventType())
	want := map[string]string{
		"payment": domain.MsgPaymentRequired,
		"address": domain.MsgAddressTooShort,
		"phone":   domain.MsgPhoneRequired,
	}
	if diff := cmp.Diff(want, last.Errors); diff != "" {
		t.Errorf("event errors (-want +got):\n%s", diff)
	}
	assert.Empty(t, o.DomainEvents())
}

func TestOrder_IsValidIndependentOfStep(t *testing.T) {
	t.Parallel()

	o := domain.NewOrder()
	o.SetEmail("a@b.com")
	o.SetPhone("+79001234567")
	assert.True(t, o.ValidateStep(domain.Step2))
	assert.False(t, o.ValidateStep(domain.Step1))
	assert.False(t, o.IsValid())

	o.SetPayment(domain.PaymentCard)
	o.SetAddress("123 Main Street")
	assert.True(t, o.IsValid())
	assert.Empty(t, o.Errors())
}
