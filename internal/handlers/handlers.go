// Package handlers contains the HTTP boundary of the listing service
package handlers

import (
	"encoding/json"
	"html/template"
	"net/http"

	"property-listings/internal/cache"
	"property-listings/internal/config"
	"property-listings/internal/storage"
)

type Handlers struct {
	storage  storage.Storage
	cache    *cache.PropertyCache
	analyzer *cache.Analyzer
	config   *config.Config
	template *template.Template
	redis    RedisHealthChecker
}

// RedisHealthChecker reports cache-store liveness for the health endpoint.
// It is nil when the service runs without a cache store.
type RedisHealthChecker interface {
	Health() error
}

func New(store storage.Storage, propertyCache *cache.PropertyCache, analyzer *cache.Analyzer, cfg *config.Config, tmpl *template.Template, redisHealth RedisHealthChecker) *Handlers {
	return &Handlers{
		storage:  store,
		cache:    propertyCache,
		analyzer: analyzer,
		config:   cfg,
		template: tmpl,
		redis:    redisHealth,
	}
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func (h *Handlers) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
