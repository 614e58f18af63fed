package metrics_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rai/storefront-checkout-go/internal/platform/eventbus"
	"github.com/rai/storefront-checkout-go/internal/platform/metrics"
	"github.com/rai/storefront-checkout-go/modules/shared/events"
	"github.com/rai/storefront-checkout-go/modules/shared/events/contracts"
)

func TestMetrics_CountsEvents(t *testing.T) {
	m := metrics.New()
	bus := eventbus.New(nil)
	_, err := bus.SubscribeAll(m)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, bus.Publish(ctx,
		contracts.CheckoutStartedEvent{BaseEvent: events.NewBaseEvent(contracts.CheckoutStartedEventType)},
		contracts.SubmitRequestedEvent{BaseEvent: events.NewBaseEvent(contracts.SubmitRequestedEventType)},
		contracts.SubmitRequestedEvent{BaseEvent: events.NewBaseEvent(contracts.SubmitRequestedEventType)},
	))

	body := scrape(t, m)
	assert.Contains(t, body, `storefront_events_total{type="checkout.CheckoutStarted"} 1`)
	assert.Contains(t, body, `storefront_events_total{type="checkout.SubmitRequested"} 2`)
}

func TestMetrics_ObserveSubmission(t *testing.T) {
	m := metrics.New()
	m.ObserveSubmission("placed", 120*time.Millisecond)
	m.ObserveSubmission("failed", time.Second)
	m.ObserveSubmission("placed", 80*time.Millisecond)

	body := scrape(t, m)
	assert.Contains(t, body, `storefront_order_submissions_total{outcome="placed"} 2`)
	assert.Contains(t, body, `storefront_order_submissions_total{outcome="failed"} 1`)
	assert.Contains(t, body, `storefront_order_submission_duration_seconds_count{outcome="placed"} 2`)
}

func TestMetrics_Lint(t *testing.T) {
	m := metrics.New()
	m.ObserveSubmission("placed", time.Millisecond)

	problems, err := testutil.GatherAndLint(m.Gatherer(),
		"storefront_order_submissions_total",
		"storefront_order_submission_duration_seconds",
	)
	require.NoError(t, err)
	assert.Empty(t, problems)
}

func scrape(t *testing.T, m *metrics.Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}
