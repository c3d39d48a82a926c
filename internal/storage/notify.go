package storage

import (
	"property-listings/internal/events"
)

// notifyingStorage decorates a Storage backend with change notification.
// Events are published only after the underlying write succeeds, so a failed
// write never triggers cache invalidation.
type notifyingStorage struct {
	Storage
	bus *events.Bus
}

// WithEvents wraps a Storage backend so that successful create, update and
// delete operations publish a change event on the given bus.
func WithEvents(inner Storage, bus *events.Bus) Storage {
	return &notifyingStorage{Storage: inner, bus: bus}
}

func (n *notifyingStorage) CreateProperty(property *Property) error {
	if err := n.Storage.CreateProperty(property); err != nil {
		return err
	}
	n.bus.Publish(events.Event{
		Kind:       events.PropertyCreated,
		PropertyID: property.ID,
		Title:      property.Title,
	})
	return nil
}

func (n *notifyingStorage) UpdateProperty(property *Property) error {
	if err := n.Storage.UpdateProperty(property); err != nil {
		return err
	}
	n.bus.Publish(events.Event{
		Kind:       events.PropertyUpdated,
		PropertyID: property.ID,
		Title:      property.Title,
	})
	return nil
}

func (n *notifyingStorage) DeleteProperty(id int64) error {
	// Snapshot the row first so the event can carry its title. A missing row
	// fails the delete before any event is published.
	property, err := n.Storage.GetProperty(id)
	if err != nil {
		return err
	}

	if err := n.Storage.DeleteProperty(id); err != nil {
		return err
	}
	n.bus.Publish(events.Event{
		Kind:       events.PropertyDeleted,
		PropertyID: property.ID,
		Title:      property.Title,
	})
	return nil
}
