package app

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gorilla/mux"
	"property-listings/internal/handlers"
	"property-listings/internal/middleware"
	"property-listings/internal/server"
)

// RunServer starts the HTTP server with all handlers configured
func (app *App) RunServer(webFiles embed.FS) (*server.Server, http.Handler) {
	tmpl := template.Must(template.ParseFS(webFiles, "web/templates/*.html"))

	h := handlers.New(
		app.Storage,
		app.PropertyCache,
		app.Analyzer,
		app.Config,
		tmpl,
		app.redisHealth(),
	)

	// The response cache uses the same store as the queryset cache. With no
	// Redis client it degrades to a pass-through.
	var responseStore middleware.ResponseStore
	if app.RedisClient != nil {
		responseStore = app.RedisClient
	}
	responseCache := middleware.ResponseCache(responseStore, app.Config.ResponseCacheTTL)

	router := mux.NewRouter()
	SetupRoutes(router, h, responseCache)

	srv := server.New(router, app.Config.Port)

	return srv, router
}

// redisHealth returns the health probe for the cache store, nil when the
// service runs without one. The indirection keeps a typed nil client out of
// the interface value.
func (app *App) redisHealth() handlers.RedisHealthChecker {
	if app.RedisClient == nil {
		return nil
	}
	return app.RedisClient
}
