package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"property-listings/internal/redis"
)

func setupResponseCache(t *testing.T, ttl time.Duration) (func(http.Handler) http.Handler, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client, err := redis.NewClient(&redis.Config{Address: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return ResponseCache(client, ttl), mr
}

func countingHandler(calls *int, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	})
}

func TestResponseCache_HitSkipsHandler(t *testing.T) {
	middleware, _ := setupResponseCache(t, 15*time.Minute)

	calls := 0
	handler := middleware(countingHandler(&calls, `{"count":1}`))

	// First request misses and invokes the handler
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/properties", nil))
	assert.Equal(t, 1, calls)
	assert.Equal(t, "MISS", rec.Header().Get("X-Cache"))
	assert.Equal(t, `{"count":1}`, rec.Body.String())

	// Second request replays without invoking the handler
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/properties", nil))
	assert.Equal(t, 1, calls)
	assert.Equal(t, "HIT", rec.Header().Get("X-Cache"))
	assert.Equal(t, `{"count":1}`, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestResponseCache_ServesStaleUntilExpiry(t *testing.T) {
	middleware, mr := setupResponseCache(t, 15*time.Minute)

	version := 0
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(fmt.Sprintf("version %d", version)))
	}))

	// Warm the cache with the pre-write snapshot
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/properties", nil))
	assert.Equal(t, "version 0", rec.Body.String())

	// An underlying write happens but the response tier has no invalidation
	// hook, so the stale snapshot keeps being served
	version = 1
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/properties", nil))
	assert.Equal(t, "version 0", rec.Body.String())

	// The fresh data appears only after the tier's own TTL elapses
	mr.FastForward(16 * time.Minute)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/properties", nil))
	assert.Equal(t, "version 1", rec.Body.String())
}

func TestResponseCache_KeyIncludesMethodPathQuery(t *testing.T) {
	middleware, _ := setupResponseCache(t, time.Minute)

	calls := 0
	handler := middleware(countingHandler(&calls, "ok"))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/properties", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/properties?format=html", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/other", nil))

	// Three distinct request identities, three misses
	assert.Equal(t, 3, calls)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/properties?format=html", nil))
	assert.Equal(t, 3, calls)
}

func TestResponseCache_DoesNotCacheErrors(t *testing.T) {
	middleware, _ := setupResponseCache(t, time.Minute)

	calls := 0
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/properties", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/properties", nil))

	// Error responses are recomputed every time
	assert.Equal(t, 2, calls)
}

func TestResponseCache_StoreOutagePassesThrough(t *testing.T) {
	middleware, mr := setupResponseCache(t, time.Minute)
	mr.Close()

	calls := 0
	handler := middleware(countingHandler(&calls, "still here"))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/properties", nil))

	assert.Equal(t, 1, calls)
	assert.Equal(t, "still here", rec.Body.String())
}

func TestResponseCache_NilStorePassesThrough(t *testing.T) {
	middleware := ResponseCache(nil, time.Minute)

	calls := 0
	handler := middleware(countingHandler(&calls, "direct"))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/properties", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/properties", nil))

	assert.Equal(t, 2, calls)
}
