package cache

import (
	"context"

	"property-listings/internal/common/logging"
	"property-listings/internal/events"
)

// Invalidator removes the queryset cache entry whenever a property changes.
// It subscribes once, at startup, to the persistent-store layer's change
// events (create, update, delete) and invalidates synchronously: by the time
// the write's caller observes completion, the stale aggregate is gone.
//
// Repeated invalidations are harmless, each is a delete-if-present.
type Invalidator struct {
	cache  *PropertyCache
	logger logging.Logger
}

func NewInvalidator(cache *PropertyCache) *Invalidator {
	return &Invalidator{
		cache:  cache,
		logger: logging.GetGlobalLogger().WithFields(logging.Field{Key: "component", Value: "cache_invalidator"}),
	}
}

// Register wires the invalidator to the event bus. Call once during startup.
func (i *Invalidator) Register(bus *events.Bus) {
	bus.Subscribe(i.handle)
}

func (i *Invalidator) handle(event events.Event) {
	removed := i.cache.Invalidate(context.Background())

	fields := []logging.Field{
		logging.String("event", string(event.Kind)),
		logging.Int64("property_id", event.PropertyID),
		logging.String("title", event.Title),
	}

	if removed {
		i.logger.Info("Cache invalidated after property change", fields...)
	} else {
		i.logger.Info("Property changed, cache key was already absent", fields...)
	}
}
