package source_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/rai/storefront-checkout-go/modules/catalog/infrastructure/source"
	"github.com/rai/storefront-checkout-go/modules/shared/types"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestYAMLSource_EmbeddedSeed(t *testing.T) {
	products, err := source.NewYAMLSource("").Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 8)

	first := products[0]
	assert.Equal(t, "854cef69-976d-4c2a-a18c-2aa45046c390", first.ID.String())
	assert.Equal(t, "750 synapses", first.PriceText())

	priceless := products[2]
	assert.False(t, priceless.Priced())
	assert.Equal(t, "Priceless", priceless.PriceText())

	last := products[7]
	m, ok := last.Money()
	require.True(t, ok)
	assert.True(t, m.Equals(types.MoneyFromInt(12500)))
}

func TestYAMLSource_Errors(t *testing.T) {
	fsys := fstest.MapFS{
		"bad-id.yaml":    {Data: []byte("products:\n  - id: nope\n    price: 1\n")},
		"bad-price.yaml": {Data: []byte("products:\n  - id: 854cef69-976d-4c2a-a18c-2aa45046c390\n    price: lots\n")},
		"broken.yaml":    {Data: []byte("products: [")},
	}

	for _, name := range []string{"bad-id.yaml", "bad-price.yaml", "broken.yaml", "missing.yaml"} {
		_, err := source.NewYAMLSourceFS(fsys, name).Fetch(context.Background())
		assert.Error(t, err, name)
	}

	_, err := source.NewYAMLSourceFS(fsys, "bad-id.yaml").Fetch(context.Background())
	assert.ErrorIs(t, err, types.ErrInvalidID)
}

func TestHTTPSource_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/weblarek/product/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total":2,"items":[
			{"id":"854cef69-976d-4c2a-a18c-2aa45046c390","title":"+1 hour","description":"d","category":"soft-skill","image":"/5_Dots.svg","price":750},
			{"id":"b06cde61-912f-4663-9751-09956c0eed67","title":"Timer","description":"d","category":"soft-skill","image":"/a.svg","price":null}
		]}`))
	}))
	transport := &http.Transport{}
	t.Cleanup(func() {
		transport.CloseIdleConnections()
		srv.Close()
	})

	src, err := source.NewHTTPSource(srv.URL+"/api/weblarek", time.Second, transport)
	require.NoError(t, err)

	products, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.True(t, products[0].Priced())
	assert.Equal(t, "750 synapses", products[0].PriceText())
	assert.False(t, products[1].Price.Valid)
}

func TestHTTPSource_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	transport := &http.Transport{}
	t.Cleanup(func() {
		transport.CloseIdleConnections()
		srv.Close()
	})

	src, err := source.NewHTTPSource(srv.URL, time.Second, transport)
	require.NoError(t, err)

	_, err = src.Fetch(context.Background())
	assert.ErrorContains(t, err, "502")
}
