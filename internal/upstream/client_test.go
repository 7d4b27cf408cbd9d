package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalogproxy/internal/catalog"
)

func newUpstream(t *testing.T, electronics, brands string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/get-electronics", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(electronics))
	})
	mux.HandleFunc("/get-electronics-brands", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(brands))
	})
	mux.HandleFunc("/broken", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientDecodesArrays(t *testing.T) {
	srv := newUpstream(t, `[{"productId":"A"},{"productId":"B"},42]`, `[{"name":"Zenith"}]`)
	c := NewClient(srv.URL+"/", "/get-electronics", "/get-electronics-brands", 0)

	items, err := c.Electronics(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "A", items[0]["productId"])
	assert.Empty(t, items[2], "non-object elements become empty items")

	brands, err := c.Brands(context.Background())
	require.NoError(t, err)
	require.Len(t, brands, 1)
	assert.Equal(t, "Zenith", brands[0]["name"])
}

func TestClientCoercesNonArrayToEmpty(t *testing.T) {
	for _, body := range []string{`{"items":[]}`, `"hello"`, `not json`, ``, `null`} {
		srv := newUpstream(t, body, body)
		c := NewClient(srv.URL, "/get-electronics", "/get-electronics-brands", 0)
		items, err := c.Electronics(context.Background())
		require.NoError(t, err, body)
		assert.NotNil(t, items)
		assert.Empty(t, items, body)
	}
}

func TestClientHTTPError(t *testing.T) {
	srv := newUpstream(t, `[]`, `[]`)
	c := NewClient(srv.URL, "/broken", "/get-electronics-brands", 0)
	_, err := c.Electronics(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status code 502")
}

func TestClientTransportError(t *testing.T) {
	srv := newUpstream(t, `[]`, `[]`)
	url := srv.URL
	srv.Close()
	c := NewClient(url, "/get-electronics", "/get-electronics-brands", 0)
	_, err := c.Electronics(context.Background())
	assert.Error(t, err)
}

type fakeSource struct {
	products, brands []catalog.Item
	brandsErr        error
	calls            atomic.Int32
}

func (f *fakeSource) Electronics(ctx context.Context) ([]catalog.Item, error) {
	f.calls.Add(1)
	return f.products, nil
}

func (f *fakeSource) Brands(ctx context.Context) ([]catalog.Item, error) {
	f.calls.Add(1)
	return f.brands, f.brandsErr
}

func TestFetchBoth(t *testing.T) {
	src := &fakeSource{
		products: []catalog.Item{{"productId": "A"}},
		brands:   []catalog.Item{{"name": "Zenith"}},
	}
	p, b, err := FetchBoth(context.Background(), src)
	require.NoError(t, err)
	assert.Len(t, p, 1)
	assert.Len(t, b, 1)
	assert.EqualValues(t, 2, src.calls.Load())
}

func TestFetchBothFailsIfEitherFails(t *testing.T) {
	src := &fakeSource{brandsErr: errors.New("brands down")}
	_, _, err := FetchBoth(context.Background(), src)
	require.Error(t, err)
	assert.Equal(t, "brands down", err.Error())
}
