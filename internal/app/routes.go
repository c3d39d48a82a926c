package app

import (
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "property-listings/docs"
	"property-listings/internal/handlers"
	"property-listings/internal/middleware"
)

// SetupRoutes configures all HTTP routes for the application. The two read
// endpoints go through the response cache, every other route bypasses it.
func SetupRoutes(router *mux.Router, h *handlers.Handlers, responseCache func(http.Handler) http.Handler) {
	// Add logging middleware to all routes
	router.Use(middleware.LoggingMiddleware)

	// Read endpoints, served through the response cache
	router.Handle("/api/properties",
		responseCache(http.HandlerFunc(h.ListProperties))).Methods("GET")
	router.Handle("/properties/html",
		responseCache(http.HandlerFunc(h.ListPropertiesHTML))).Methods("GET")

	// Write endpoints, always uncached
	router.HandleFunc("/api/properties", h.CreateProperty).Methods("POST")
	router.HandleFunc("/api/properties/{id}", h.UpdateProperty).Methods("PUT")
	router.HandleFunc("/api/properties/{id}", h.DeleteProperty).Methods("DELETE")

	// Cache diagnostics
	router.HandleFunc("/api/cache/metrics", h.CacheMetrics).Methods("GET")
	router.HandleFunc("/api/cache/info", h.CacheInfo).Methods("GET")

	// Health check
	router.HandleFunc("/health", h.HealthCheck).Methods("GET")

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
}
