package handlers

import (
	"net/http"
	"time"
)

// HealthCheck reports service health
// @Summary Service health
// @Description Checks the relational store and reports whether the Redis cache is reachable. A cache outage degrades the report but does not fail it.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service healthy"
// @Failure 503 {object} map[string]string "Database unhealthy"
// @Router /health [get]
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	// The relational store is the source of truth, so its outage is fatal
	if err := h.storage.Health(); err != nil {
		h.writeError(w, http.StatusServiceUnavailable, "Database unhealthy")
		return
	}

	// The cache is optional. The service keeps serving from the store when
	// Redis is down, so report the outage without failing the check.
	cacheStatus := "healthy"
	if h.redis == nil {
		cacheStatus = "disabled"
	} else if err := h.redis.Health(); err != nil {
		cacheStatus = "unhealthy"
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"cache":     cacheStatus,
		"timestamp": time.Now().UTC(),
		"version":   "1.0.0",
	})
}
