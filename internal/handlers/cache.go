package handlers

import (
	"net/http"

	"property-listings/internal/cache"
)

// cacheInfoResponse pairs the live entry state with the configured TTL so
// callers can tell remaining lifetime from full lifetime
type cacheInfoResponse struct {
	*cache.Diagnostics
	ConfiguredTTLSeconds float64 `json:"configured_ttl_seconds"`
}

// CacheMetrics reports Redis keyspace statistics and a cache efficiency rating
// @Summary Cache performance metrics
// @Description Returns keyspace hit/miss counters, the derived hit ratio, an efficiency rating and a tuning recommendation.
// @Tags cache
// @Produce json
// @Success 200 {object} cache.Metrics "Cache metrics"
// @Router /api/cache/metrics [get]
func (h *Handlers) CacheMetrics(w http.ResponseWriter, r *http.Request) {
	metrics := h.analyzer.Metrics(r.Context())
	h.writeJSON(w, http.StatusOK, metrics)
}

// CacheInfo reports the state of the queryset cache entry
// @Summary Queryset cache diagnostics
// @Description Returns whether the all_properties key is populated, how many entries it holds, its remaining TTL and the configured TTL. Read-only.
// @Tags cache
// @Produce json
// @Success 200 {object} handlers.cacheInfoResponse "Queryset cache state"
// @Router /api/cache/info [get]
func (h *Handlers) CacheInfo(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, cacheInfoResponse{
		Diagnostics:          h.cache.Diagnostics(r.Context()),
		ConfiguredTTLSeconds: h.config.QuerysetCacheTTL.Seconds(),
	})
}
