package basket_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rai/storefront-checkout-go/internal/platform/eventbus"
	"github.com/rai/storefront-checkout-go/modules/basket"
	"github.com/rai/storefront-checkout-go/modules/basket/domain"
	"github.com/rai/storefront-checkout-go/modules/shared/events"
	"github.com/rai/storefront-checkout-go/modules/shared/events/contracts"
	"github.com/rai/storefront-checkout-go/modules/shared/types"
)

const (
	pricedID    = "854cef69-976d-4c2a-a18c-2aa45046c390"
	pricelessID = "b06cde61-912f-4663-9751-09956c0eed67"
	unknownID   = "1c586b22-1e1f-4f9e-9c08-2d7d3f4d2a11"
)

func lookup(_ context.Context, id types.ProductID) (domain.ProductInfo, error) {
	switch id.String() {
	case pricedID:
		return domain.ProductInfo{ID: id, Title: "+1 hour", Price: decimal.NewNullDecimal(decimal.NewFromInt(750))}, nil
	case pricelessID:
		return domain.ProductInfo{ID: id, Title: "Mamka-timer"}, nil
	}
	return domain.ProductInfo{}, domain.ErrProductNotFound
}

func newModule(t *testing.T) (basket.Module, *eventbus.InMemoryEventBus) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	bus := eventbus.New(logger)
	m, err := basket.New(basket.Config{
		Products:        domain.ProductLookupFunc(lookup),
		EventPublisher:  bus,
		EventSubscriber: bus,
		Logger:          logger,
	})
	require.NoError(t, err)
	t.Cleanup(m.Close)
	return m, bus
}

func TestModule_ClearsOnOrderPlaced(t *testing.T) {
	ctx := context.Background()
	m, bus := newModule(t)

	var changes []contracts.BasketChangedEvent
	_, err := bus.Subscribe(contracts.BasketChangedEventType, events.On(func(_ context.Context, e contracts.BasketChangedEvent) error {
		changes = append(changes, e)
		return nil
	}))
	require.NoError(t, err)

	require.NoError(t, m.Add(ctx, pricedID))
	assert.Equal(t, []string{pricedID}, m.ItemIDs())
	assert.True(t, m.Total().Equals(types.MoneyFromInt(750)))

	require.NoError(t, bus.Publish(ctx, contracts.OrderPlacedEvent{
		BaseEvent: events.NewBaseEvent(contracts.OrderPlacedEventType),
		OrderID:   "order-1",
		Total:     types.MoneyFromInt(750),
		Items:     []string{pricedID},
	}))

	assert.Empty(t, m.ItemIDs())
	assert.True(t, m.Total().IsZero())
	require.Len(t, changes, 2)
	assert.Zero(t, changes[1].Count)
}

func TestModule_Add(t *testing.T) {
	ctx := context.Background()
	m, _ := newModule(t)

	assert.ErrorIs(t, m.Add(ctx, "not-a-uuid"), types.ErrInvalidID)
	assert.ErrorIs(t, m.Add(ctx, unknownID), domain.ErrProductNotFound)
	assert.ErrorIs(t, m.Add(ctx, pricelessID), domain.ErrPriceless)
	require.NoError(t, m.Add(ctx, pricedID))
	assert.ErrorIs(t, m.Add(ctx, pricedID), domain.ErrAlreadyInBasket)

	require.NoError(t, m.Remove(ctx, pricedID))
	assert.ErrorIs(t, m.Remove(ctx, pricedID), domain.ErrItemNotFound)
}

func TestModule_Routes(t *testing.T) {
	m, _ := newModule(t)
	r := chi.NewRouter()
	m.RegisterRoutes(r)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{"add priced", http.MethodPost, "/api/v1/basket/items", `{"product_id":"` + pricedID + `"}`, http.StatusCreated, `"total_text":"750 synapses"`},
		{"add twice", http.MethodPost, "/api/v1/basket/items", `{"product_id":"` + pricedID + `"}`, http.StatusConflict, "already"},
		{"add priceless", http.MethodPost, "/api/v1/basket/items", `{"product_id":"` + pricelessID + `"}`, http.StatusUnprocessableEntity, "no price"},
		{"add unknown", http.MethodPost, "/api/v1/basket/items", `{"product_id":"` + unknownID + `"}`, http.StatusNotFound, "not found"},
		{"add malformed id", http.MethodPost, "/api/v1/basket/items", `{"product_id":"x"}`, http.StatusBadRequest, "invalid"},
		{"bad body", http.MethodPost, "/api/v1/basket/items", `{"sku":1}`, http.StatusBadRequest, "invalid request body"},
		{"get", http.MethodGet, "/api/v1/basket/", "", http.StatusOK, `"count":1`},
		{"remove", http.MethodDelete, "/api/v1/basket/items/" + pricedID, "", http.StatusOK, `"count":0`},
		{"remove missing", http.MethodDelete, "/api/v1/basket/items/" + pricedID, "", http.StatusNotFound, "not in the basket"},
	}
	// Cases share one basket and run in order.
	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, tt.wantStatus, rec.Code, tt.name)
		assert.Contains(t, rec.Body.String(), tt.wantBody, tt.name)
	}
}
