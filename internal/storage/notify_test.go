package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"property-listings/internal/events"
	"property-listings/internal/storage"
	"property-listings/internal/storage/sqlite"
)

func setupNotifyingStorage(t *testing.T) (storage.Storage, *[]events.Event) {
	adapter, err := sqlite.NewAdapter(&sqlite.Config{DatabasePath: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })

	bus := events.NewBus()
	received := &[]events.Event{}
	bus.Subscribe(func(e events.Event) {
		*received = append(*received, e)
	})

	return storage.WithEvents(adapter, bus), received
}

func TestWithEvents_CreatePublishes(t *testing.T) {
	store, received := setupNotifyingStorage(t)

	property := &storage.Property{Title: "Bungalow", Price: "300000.00", Location: "Abuja"}
	require.NoError(t, store.CreateProperty(property))

	require.Len(t, *received, 1)
	event := (*received)[0]
	assert.Equal(t, events.PropertyCreated, event.Kind)
	assert.Equal(t, property.ID, event.PropertyID)
	assert.Equal(t, "Bungalow", event.Title)
}

func TestWithEvents_UpdatePublishes(t *testing.T) {
	store, received := setupNotifyingStorage(t)

	property := &storage.Property{Title: "Bungalow", Price: "300000.00", Location: "Abuja"}
	require.NoError(t, store.CreateProperty(property))

	property.Title = "Renovated bungalow"
	require.NoError(t, store.UpdateProperty(property))

	require.Len(t, *received, 2)
	assert.Equal(t, events.PropertyUpdated, (*received)[1].Kind)
	assert.Equal(t, "Renovated bungalow", (*received)[1].Title)
}

func TestWithEvents_DeletePublishesSnapshot(t *testing.T) {
	store, received := setupNotifyingStorage(t)

	property := &storage.Property{Title: "Short-lived", Price: "1.00", Location: "Nowhere"}
	require.NoError(t, store.CreateProperty(property))
	require.NoError(t, store.DeleteProperty(property.ID))

	require.Len(t, *received, 2)
	event := (*received)[1]
	assert.Equal(t, events.PropertyDeleted, event.Kind)
	assert.Equal(t, "Short-lived", event.Title)
}

func TestWithEvents_FailedWritePublishesNothing(t *testing.T) {
	store, received := setupNotifyingStorage(t)

	t.Run("update of missing row", func(t *testing.T) {
		missing := &storage.Property{ID: 9999, Title: "ghost"}
		err := store.UpdateProperty(missing)
		require.Error(t, err)
		assert.Empty(t, *received)
	})

	t.Run("delete of missing row", func(t *testing.T) {
		err := store.DeleteProperty(9999)
		require.Error(t, err)
		assert.Empty(t, *received)
	})
}

func TestWithEvents_ReadsDoNotPublish(t *testing.T) {
	store, received := setupNotifyingStorage(t)

	property := &storage.Property{Title: "Quiet", Price: "5.00", Location: "Here"}
	require.NoError(t, store.CreateProperty(property))
	*received = (*received)[:0]

	_, err := store.ListProperties()
	require.NoError(t, err)
	_, err = store.GetProperty(property.ID)
	require.NoError(t, err)
	_, err = store.CountProperties()
	require.NoError(t, err)

	assert.Empty(t, *received)
}
