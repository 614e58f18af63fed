package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rai/storefront-checkout-go/modules/basket/domain"
	"github.com/rai/storefront-checkout-go/modules/shared/events/contracts"
	"github.com/rai/storefront-checkout-go/modules/shared/types"
)

func info(id string, price *int64) domain.ProductInfo {
	p := domain.ProductInfo{ID: types.MustParseProductID(id), Title: "product"}
	if price != nil {
		p.Price = decimal.NewNullDecimal(decimal.NewFromInt(*price))
	}
	return p
}

func ptr(v int64) *int64 { return &v }

const (
	idA = "854cef69-976d-4c2a-a18c-2aa45046c390"
	idB = "c101ab44-ed99-4a54-990d-47aa2bb4e7d9"
	idC = "b06cde61-912f-4663-9751-09956c0eed67"
)

func TestBasket_AddAndTotal(t *testing.T) {
	b := domain.NewBasket()

	require.NoError(t, b.Add(info(idA, ptr(750))))
	require.NoError(t, b.Add(info(idB, ptr(12500))))

	assert.Equal(t, 2, b.Count())
	assert.Equal(t, []string{idA, idB}, b.ItemIDs())
	assert.Equal(t, "13 250 synapses", b.Total().String())

	evts := b.PopDomainEvents()
	require.Len(t, evts, 2)
	last := evts[1].(contracts.BasketChangedEvent)
	assert.Equal(t, 2, last.Count)
	assert.True(t, last.Total.Equals(types.MoneyFromInt(13250)))
}

func TestBasket_AddRejects(t *testing.T) {
	b := domain.NewBasket()
	require.NoError(t, b.Add(info(idA, ptr(750))))
	b.PopDomainEvents()

	assert.ErrorIs(t, b.Add(info(idA, ptr(750))), domain.ErrAlreadyInBasket)
	assert.ErrorIs(t, b.Add(info(idC, nil)), domain.ErrPriceless)
	assert.ErrorIs(t, b.Add(info(idB, ptr(0))), domain.ErrPriceless)

	assert.Equal(t, 1, b.Count())
	assert.Empty(t, b.DomainEvents(), "rejected adds must not notify")
}

func TestBasket_RemoveAndClear(t *testing.T) {
	b := domain.NewBasket()
	require.NoError(t, b.Add(info(idA, ptr(750))))
	require.NoError(t, b.Add(info(idB, ptr(1450))))

	require.NoError(t, b.Remove(types.MustParseProductID(idA)))
	assert.Equal(t, []string{idB}, b.ItemIDs())
	assert.ErrorIs(t, b.Remove(types.MustParseProductID(idA)), domain.ErrItemNotFound)

	b.Clear()
	assert.Zero(t, b.Count())
	assert.True(t, b.Total().IsZero())
	assert.Len(t, b.PopDomainEvents(), 4)
}
