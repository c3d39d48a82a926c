package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"property-listings/internal/events"
)

func TestInvalidator_RemovesCacheOnEveryEventKind(t *testing.T) {
	kinds := []events.Kind{
		events.PropertyCreated,
		events.PropertyUpdated,
		events.PropertyDeleted,
	}

	for _, kind := range kinds {
		t.Run(string(kind), func(t *testing.T) {
			f := setupCache(t)
			ctx := context.Background()
			f.seed(t, "cached")

			bus := events.NewBus()
			NewInvalidator(f.cache).Register(bus)

			_, err := f.cache.GetAll(ctx)
			require.NoError(t, err)
			require.True(t, f.mr.Exists(AllPropertiesKey))

			bus.Publish(events.Event{Kind: kind, PropertyID: 1, Title: "cached"})

			// Invalidation is synchronous: the key is gone by the time
			// Publish returns
			assert.False(t, f.mr.Exists(AllPropertiesKey))
		})
	}
}

func TestInvalidator_NextReadRecomputes(t *testing.T) {
	f := setupCache(t)
	ctx := context.Background()
	f.seed(t, "original")

	bus := events.NewBus()
	NewInvalidator(f.cache).Register(bus)

	_, err := f.cache.GetAll(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, f.lister.calls)

	f.seed(t, "added later")
	bus.Publish(events.Event{Kind: events.PropertyCreated, PropertyID: 2, Title: "added later"})

	properties, err := f.cache.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, f.lister.calls)
	assert.Len(t, properties, 2)
	assert.Equal(t, "added later", properties[0].Title)
}

func TestInvalidator_IdempotentUnderRapidWrites(t *testing.T) {
	f := setupCache(t)
	f.seed(t, "busy")

	bus := events.NewBus()
	NewInvalidator(f.cache).Register(bus)

	_, err := f.cache.GetAll(context.Background())
	require.NoError(t, err)

	// A burst of writes produces a burst of invalidations; all but the first
	// are deletes of an absent key and must be harmless.
	for i := 0; i < 5; i++ {
		bus.Publish(events.Event{Kind: events.PropertyUpdated, PropertyID: 1, Title: "busy"})
	}

	assert.False(t, f.mr.Exists(AllPropertiesKey))
}
