package sqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "property-listings/internal/common/errors"
	"property-listings/internal/storage"
)

func setupTestAdapter(t *testing.T) *Adapter {
	adapter, err := NewAdapter(&Config{DatabasePath: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })
	return adapter
}

func newTestProperty(title string) *storage.Property {
	return &storage.Property{
		Title:       title,
		Description: "A test listing",
		Price:       "1250.00",
		Location:    "Lagos",
	}
}

func TestNewAdapter(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		adapter, err := NewAdapter(&Config{DatabasePath: ":memory:"})
		require.NoError(t, err)
		defer adapter.Close()

		assert.NoError(t, adapter.Health())
	})

	t.Run("missing path", func(t *testing.T) {
		adapter, err := NewAdapter(&Config{})
		assert.Error(t, err)
		assert.Nil(t, adapter)
	})
}

func TestAdapter_CreateProperty(t *testing.T) {
	adapter := setupTestAdapter(t)

	property := newTestProperty("Two-bed flat")
	require.NoError(t, adapter.CreateProperty(property))

	assert.NotZero(t, property.ID)
	assert.False(t, property.CreatedAt.IsZero())

	got, err := adapter.GetProperty(property.ID)
	require.NoError(t, err)
	assert.Equal(t, "Two-bed flat", got.Title)
	assert.Equal(t, "1250.00", got.Price)
	assert.Equal(t, "Lagos", got.Location)
}

func TestAdapter_ListProperties_NewestFirst(t *testing.T) {
	adapter := setupTestAdapter(t)

	first := newTestProperty("first")
	require.NoError(t, adapter.CreateProperty(first))
	second := newTestProperty("second")
	require.NoError(t, adapter.CreateProperty(second))
	third := newTestProperty("third")
	require.NoError(t, adapter.CreateProperty(third))

	properties, err := adapter.ListProperties()
	require.NoError(t, err)
	require.Len(t, properties, 3)

	// Rows created in the same instant fall back to id DESC, so the listing
	// is newest first either way.
	assert.Equal(t, "third", properties[0].Title)
	assert.Equal(t, "second", properties[1].Title)
	assert.Equal(t, "first", properties[2].Title)
}

func TestAdapter_ListProperties_Empty(t *testing.T) {
	adapter := setupTestAdapter(t)

	properties, err := adapter.ListProperties()
	require.NoError(t, err)
	assert.NotNil(t, properties)
	assert.Empty(t, properties)
}

func TestAdapter_CountProperties(t *testing.T) {
	adapter := setupTestAdapter(t)

	count, err := adapter.CountProperties()
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	require.NoError(t, adapter.CreateProperty(newTestProperty("one")))
	require.NoError(t, adapter.CreateProperty(newTestProperty("two")))

	count, err = adapter.CountProperties()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestAdapter_UpdateProperty(t *testing.T) {
	adapter := setupTestAdapter(t)

	property := newTestProperty("Before")
	require.NoError(t, adapter.CreateProperty(property))
	createdAt := property.CreatedAt

	property.Title = "After"
	property.Price = "999.99"
	require.NoError(t, adapter.UpdateProperty(property))

	got, err := adapter.GetProperty(property.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", got.Title)
	assert.Equal(t, "999.99", got.Price)
	assert.True(t, got.CreatedAt.Equal(createdAt), "created_at must be immutable")
}

func TestAdapter_UpdateProperty_NotFound(t *testing.T) {
	adapter := setupTestAdapter(t)

	missing := newTestProperty("ghost")
	missing.ID = 12345

	err := adapter.UpdateProperty(missing)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeNotFound))
}

func TestAdapter_DeleteProperty(t *testing.T) {
	adapter := setupTestAdapter(t)

	property := newTestProperty("doomed")
	require.NoError(t, adapter.CreateProperty(property))

	require.NoError(t, adapter.DeleteProperty(property.ID))

	_, err := adapter.GetProperty(property.ID)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeNotFound))

	err = adapter.DeleteProperty(property.ID)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeNotFound))
}

func TestAdapter_CreatedAtIsUTC(t *testing.T) {
	adapter := setupTestAdapter(t)

	property := newTestProperty("utc check")
	before := time.Now().UTC().Add(-time.Second)
	require.NoError(t, adapter.CreateProperty(property))
	after := time.Now().UTC().Add(time.Second)

	assert.True(t, property.CreatedAt.After(before))
	assert.True(t, property.CreatedAt.Before(after))
}
