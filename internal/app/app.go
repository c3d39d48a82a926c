// Package app wires the listing service together: storage, the event bus,
// the cache layers and the HTTP surface.
package app

import (
	"property-listings/internal/cache"
	"property-listings/internal/common/logging"
	"property-listings/internal/config"
	"property-listings/internal/events"
	"property-listings/internal/redis"
	"property-listings/internal/storage"
)

// App holds all the application dependencies
type App struct {
	Config        *config.Config
	Storage       storage.Storage
	Bus           *events.Bus
	RedisClient   *redis.Client
	PropertyCache *cache.PropertyCache
	Analyzer      *cache.Analyzer
	Logger        logging.Logger
}

// New creates a new application instance with all dependencies
func New(cfg *config.Config) (*App, error) {
	app := &App{
		Config: cfg,
		Bus:    events.NewBus(),
		Logger: logging.GetGlobalLogger().WithFields(logging.Field{Key: "component", Value: "app"}),
	}

	if err := app.initializeStorage(); err != nil {
		return nil, err
	}

	if err := app.initializeRedis(); err != nil {
		// Redis is optional. The service degrades to uncached reads.
		app.Logger.Warn("Redis initialization failed, continuing without caching",
			logging.Field{Key: "error", Value: err.Error()})
	}

	app.initializeCache()

	return app, nil
}

// initializeCache builds the queryset cache, the metrics analyzer and the
// write-event invalidation hook. With no Redis client the cache runs in
// pass-through mode and the analyzer reports unavailable.
func (app *App) initializeCache() {
	var store cache.Store
	var source cache.StatsSource
	if app.RedisClient != nil {
		store = app.RedisClient
		source = app.RedisClient
	}

	app.PropertyCache = cache.NewPropertyCache(store, app.Storage, app.Config.QuerysetCacheTTL)
	app.Analyzer = cache.NewAnalyzer(source)

	cache.NewInvalidator(app.PropertyCache).Register(app.Bus)
}

// Cleanup releases all resources
func (app *App) Cleanup() {
	if app.Storage != nil {
		app.Storage.Close()
	}
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
