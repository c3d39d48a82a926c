package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"property-listings/internal/common/logging"
	"property-listings/internal/redis"
)

// responseKeyPrefix namespaces response-cache entries away from the queryset
// key space
const responseKeyPrefix = "response:"

// ResponseStore is the key-value capability the response cache consumes
type ResponseStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

// cachedResponse is the serialized form of a whole response
type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// recordingWriter passes the response through while keeping a copy for the cache
type recordingWriter struct {
	http.ResponseWriter
	statusCode int
	body       bytes.Buffer
}

func (rw *recordingWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *recordingWriter) Write(data []byte) (int, error) {
	rw.body.Write(data)
	return rw.ResponseWriter.Write(data)
}

// ResponseCache caches whole successful responses keyed by request identity
// (method, path and query) for the given TTL. On a hit the wrapped handler is
// not invoked at all, so lower cache tiers are not consulted either; entries
// leave this tier only by expiry, never by explicit invalidation. A served
// entry may therefore be up to one TTL staler than the queryset cache after a
// write. With a nil store the middleware passes requests straight through.
func ResponseCache(store ResponseStore, ttl time.Duration) func(http.Handler) http.Handler {
	logger := logging.GetGlobalLogger().WithFields(logging.Field{Key: "component", Value: "response_cache"})

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if store == nil {
				next.ServeHTTP(w, r)
				return
			}

			key := cacheKey(r)

			var cached cachedResponse
			data, err := store.Get(r.Context(), key)
			if err == nil {
				if unmarshalErr := json.Unmarshal([]byte(data), &cached); unmarshalErr == nil {
					w.Header().Set("Content-Type", cached.ContentType)
					w.Header().Set("X-Cache", "HIT")
					w.WriteHeader(cached.Status)
					w.Write(cached.Body)
					return
				}
			} else if !redis.IsNil(err) {
				logger.Warn("Response cache unavailable, serving uncached",
					logging.String("key", key), logging.Err(err))
			}

			recorder := &recordingWriter{ResponseWriter: w, statusCode: http.StatusOK}
			recorder.Header().Set("X-Cache", "MISS")
			next.ServeHTTP(recorder, r)

			// Only complete successful responses are worth replaying
			if recorder.statusCode != http.StatusOK {
				return
			}

			entry := cachedResponse{
				Status:      recorder.statusCode,
				ContentType: recorder.Header().Get("Content-Type"),
				Body:        recorder.body.Bytes(),
			}
			if err := store.Set(r.Context(), key, entry, ttl); err != nil {
				logger.Warn("Failed to store response cache entry",
					logging.String("key", key), logging.Err(err))
			}
		})
	}
}

// cacheKey derives the entry key from the request identity
func cacheKey(r *http.Request) string {
	key := responseKeyPrefix + r.Method + ":" + r.URL.Path
	if r.URL.RawQuery != "" {
		key += "?" + r.URL.RawQuery
	}
	return key
}
