package types_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rai/storefront-checkout-go/modules/shared/types"
)

func TestMoney_String(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "0 synapses"},
		{"750", "750 synapses"},
		{"2500", "2 500 synapses"},
		{"12500", "12 500 synapses"},
		{"1234567", "1 234 567 synapses"},
		{"1450.5", "1 450.5 synapses"},
	}
	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			m := types.MustNewMoney(decimal.RequireFromString(tt.amount))
			assert.Equal(t, tt.want, m.String())
		})
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	total := types.MoneyFromInt(750).Add(types.MoneyFromInt(1450))
	assert.True(t, total.Equals(types.MoneyFromInt(2200)))
	assert.True(t, types.MoneyFromInt(120).Multiply(3).Equals(types.MoneyFromInt(360)))
	assert.True(t, types.Money{}.IsZero())
}

func TestNewMoney_Negative(t *testing.T) {
	_, err := types.NewMoney(decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, types.ErrNegativeAmount)
}

func TestMoney_JSON(t *testing.T) {
	data, err := json.Marshal(struct {
		Total types.Money `json:"total"`
	}{types.MoneyFromInt(12500)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"total":12500}`, string(data))

	var m types.Money
	assert.ErrorIs(t, json.Unmarshal([]byte(`-5`), &m), types.ErrNegativeAmount)
}

func TestParseIDs(t *testing.T) {
	_, err := types.ParseProductID("not-a-uuid")
	assert.ErrorIs(t, err, types.ErrInvalidID)

	_, err = types.ParseOrderID("   ")
	assert.ErrorIs(t, err, types.ErrInvalidID)

	id, err := types.ParseOrderID(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, "42", id.String())
	assert.False(t, types.NewOrderID().IsZero())
}
