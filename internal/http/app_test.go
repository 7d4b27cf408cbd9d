package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/require"

	"catalogproxy/internal/http/handlers"
	applog "catalogproxy/internal/log"
	"catalogproxy/internal/repos"
	"catalogproxy/internal/upstream"
)

// Upstream fixture: one record per interesting case.
const electronicsJSON = `[
  {"productId":"p1","productName":"Zenith Book","brandName":"Zenith","category":"Laptops","description":"d1",
   "price":1200.5,"currency":"USD","processor":"i7","memory":"16GB","releaseDate":"2024-01-10","averageRating":4.5,"ratingCount":10},
  {"productId":"p2","productName":"Aura Phone","brandName":"Aura","category":"Mobiles","description":"d2",
   "price":800,"currency":"USD","processor":"SD8","memory":"8GB","releaseDate":"2024-03-05","averageRating":4.2,"ratingCount":40},
  {"productId":"p3","productName":"Free Thing","brandName":"Zenith","category":"Misc","description":"d3",
   "price":0,"currency":"USD","processor":"none","memory":"0GB","releaseDate":"2024-02-01","averageRating":3,"ratingCount":1},
  {"productId":"p4","productName":"Ghost Tab","brandName":"Ghost","category":"Tablets","description":"d4",
   "price":300,"currency":"USD","processor":"A1","memory":"4GB","releaseDate":"2024-06-30","averageRating":3.9,"ratingCount":7},
  {"productId":"p5","productName":"No Memory","brandName":"Aura","category":"Mobiles","description":"d5",
   "price":100,"currency":"USD","processor":"X","releaseDate":"2024-04-01","averageRating":4,"ratingCount":2}
]`

const brandsJSON = `[
  {"name":"Zenith","year_founded":"1995","address":{"street":"123 Innovation Drive","city":"Sanjose","state":"California","postal_code":"95113","country":"USA"}},
  {"name":"Aura","year_founded":"2005","address":{"street":"456 Tech Park","city":"Bangalore","state":"","postal_code":"560001","country":"India"}}
]`

type fakeUpstream struct {
	*httptest.Server
	mu       sync.Mutex
	status   int
	products string
	brands   string
}

func newUpstream(t *testing.T) *fakeUpstream {
	t.Helper()
	f := &fakeUpstream{status: http.StatusOK, products: electronicsJSON, brands: brandsJSON}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		if f.status != http.StatusOK {
			w.WriteHeader(f.status)
			_, _ = w.Write([]byte(`{"message":"down"}`))
			return
		}
		switch r.URL.Path {
		case "/get-electronics":
			_, _ = w.Write([]byte(f.products))
		case "/get-electronics-brands":
			_, _ = w.Write([]byte(f.brands))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(f.Close)
	return f
}

func (f *fakeUpstream) serve(products, brands string) {
	f.mu.Lock()
	if products != "" {
		f.products = products
	}
	if brands != "" {
		f.brands = brands
	}
	f.mu.Unlock()
}

func (f *fakeUpstream) fail(status int) {
	f.mu.Lock()
	f.status = status
	f.mu.Unlock()
}

type testEnv struct {
	app      *fiber.App
	store    *repos.SQLStore
	upstream *fakeUpstream
	deps     *handlers.Deps
}

func newEnv(t *testing.T) *testEnv {
	t.Helper()
	store, err := repos.OpenSQLStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	up := newUpstream(t)
	src := upstream.NewClient(up.URL, "/get-electronics", "/get-electronics-brands", 5*time.Second)

	app := handlers.NewApp()
	app.Use(recover.New())
	app.Use(requestid.New())

	deps := handlers.NewDeps(store, src)
	deps.StepHandler.Catalog.Now = func() time.Time { return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) }
	handlers.Register(app, deps)

	return &testEnv{app: app, store: store, upstream: up, deps: deps}
}

func (e *testEnv) do(t *testing.T, method, target, body string) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	b, _ := io.ReadAll(resp.Body)
	return resp, b
}

func decode[T any](t *testing.T, b []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(b, &v), "body=%s", string(b))
	return v
}

type logEntry struct {
	Level  string         `json:"level"`
	Action string         `json:"action"`
	Err    string         `json:"err"`
	ReqID  string         `json:"req_id"`
	Status int            `json:"status"`
	Fields map[string]any `json:"fields"`
}

type lockedBuf struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (l *lockedBuf) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.Write(p)
}

func captureLogs(t *testing.T, fn func()) []logEntry {
	t.Helper()
	buf := &lockedBuf{}
	applog.SetOutput(buf)
	defer applog.SetOutput(io.Discard)

	fn()

	var entries []logEntry
	for _, line := range strings.Split(strings.TrimSpace(buf.b.String()), "\n") {
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		var e logEntry
		if err := json.Unmarshal([]byte(line), &e); err == nil {
			entries = append(entries, e)
		}
	}
	return entries
}

func findAction(entries []logEntry, action string) (logEntry, bool) {
	for _, e := range entries {
		if e.Action == action {
			return e, true
		}
	}
	return logEntry{}, false
}
