// Package api implements the order API used to place orders.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/rai/storefront-checkout-go/modules/orders/domain"
)

const tracerName = "github.com/rai/storefront-checkout-go/modules/orders/infrastructure/api"

// ClientConfig holds the HTTP order API settings.
type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
	// BreakerFailures is the number of consecutive failures that open the
	// breaker.
	BreakerFailures uint32
	// BreakerOpenTimeout is how long the breaker stays open before letting
	// a trial request through.
	BreakerOpenTimeout time.Duration
	// Transport overrides the base transport (tests).
	Transport http.RoundTripper
	Logger    *slog.Logger
}

// Client posts orders to {BaseURL}/order as JSON. Calls go through a
// circuit breaker; while it is open they fail with ErrAPIUnavailable
// without touching the network.
type Client struct {
	endpoint string
	http     *http.Client
	breaker  *gobreaker.CircuitBreaker[domain.Result]
	tracer   trace.Tracer
	logger   *slog.Logger
}

func NewClient(cfg ClientConfig) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid order API URL %q", cfg.BaseURL)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.BreakerFailures == 0 {
		cfg.BreakerFailures = 5
	}
	if cfg.BreakerOpenTimeout <= 0 {
		cfg.BreakerOpenTimeout = 30 * time.Second
	}
	if cfg.Transport == nil {
		cfg.Transport = http.DefaultTransport
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	c := &Client{
		endpoint: base.String() + "/order",
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(cfg.Transport),
		},
		tracer: otel.Tracer(tracerName),
		logger: logger,
	}

	failures := cfg.BreakerFailures
	c.breaker = gobreaker.NewCircuitBreaker[domain.Result](gobreaker.Settings{
		Name:        "order-api",
		MaxRequests: 1,
		Timeout:     cfg.BreakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return c, nil
}

// CreateOrder implements domain.OrderAPI.
func (c *Client) CreateOrder(ctx context.Context, payload domain.Payload) (domain.Result, error) {
	ctx, span := c.tracer.Start(ctx, "orders.CreateOrder", trace.WithAttributes(
		attribute.Int("order.items", len(payload.Items)),
		attribute.String("order.payment", payload.Payment),
	))
	defer span.End()

	result, err := c.breaker.Execute(func() (domain.Result, error) {
		return c.post(ctx, payload)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		err = fmt.Errorf("%w: %v", domain.ErrAPIUnavailable, err)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return domain.Result{}, err
	}

	span.SetAttributes(attribute.String("order.id", result.ID))
	return result, nil
}

// State reports the breaker state.
func (c *Client) State() gobreaker.State { return c.breaker.State() }

func (c *Client) post(ctx context.Context, payload domain.Payload) (domain.Result, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return domain.Result{}, fmt.Errorf("encoding order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return domain.Result{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.Result{}, fmt.Errorf("posting order: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return domain.Result{}, fmt.Errorf("%w: status %d: %s", domain.ErrOrderRejected, resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var result domain.Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return domain.Result{}, fmt.Errorf("decoding order response: %w", err)
	}
	return result, nil
}

var _ domain.OrderAPI = (*Client)(nil)
