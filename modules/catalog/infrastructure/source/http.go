// Package source provides the product sources the catalog loads from.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/rai/storefront-checkout-go/modules/catalog/domain"
	"github.com/rai/storefront-checkout-go/modules/shared/types"
)

const tracerName = "github.com/rai/storefront-checkout-go/modules/catalog/infrastructure/source"

type productListResponse struct {
	Total int               `json:"total"`
	Items []productResponse `json:"items"`
}

type productResponse struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Category    string              `json:"category"`
	Image       string              `json:"image"`
	Price       decimal.NullDecimal `json:"price"`
}

// HTTPSource reads GET {BaseURL}/product/.
type HTTPSource struct {
	endpoint string
	http     *http.Client
	tracer   trace.Tracer
}

func NewHTTPSource(baseURL string, timeout time.Duration, transport http.RoundTripper) (*HTTPSource, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid product API URL %q", baseURL)
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if transport == nil {
		transport = http.DefaultTransport
	}
	return &HTTPSource{
		endpoint: base.String() + "/product/",
		http:     &http.Client{Timeout: timeout, Transport: otelhttp.NewTransport(transport)},
		tracer:   otel.Tracer(tracerName),
	}, nil
}

func (s *HTTPSource) Fetch(ctx context.Context) ([]domain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.FetchProducts")
	defer span.End()

	products, err := s.fetch(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("catalog.products", len(products)))
	return products, nil
}

func (s *HTTPSource) fetch(ctx context.Context) ([]domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting products: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("product API answered %d", resp.StatusCode)
	}

	var body productListResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding products: %w", err)
	}

	products := make([]domain.Product, 0, len(body.Items))
	for _, item := range body.Items {
		id, err := types.ParseProductID(item.ID)
		if err != nil {
			return nil, fmt.Errorf("product %q: %w", item.ID, err)
		}
		products = append(products, domain.Product{
			ID:          id,
			Title:       item.Title,
			Description: item.Description,
			Category:    item.Category,
			Image:       item.Image,
			Price:       item.Price,
		})
	}
	return products, nil
}

var _ domain.ProductSource = (*HTTPSource)(nil)
