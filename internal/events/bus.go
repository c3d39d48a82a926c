// Package events provides the change-notification capability of the
// persistent-store layer. Writes to property listings publish an event;
// subscribers (the cache invalidation trigger) run synchronously, before the
// write's caller observes completion.
package events

import (
	"sync"
)

// Kind identifies the kind of change that happened to a property
type Kind string

const (
	PropertyCreated Kind = "property.created"
	PropertyUpdated Kind = "property.updated"
	PropertyDeleted Kind = "property.deleted"
)

// Event describes a single committed write. It carries a minimal snapshot of
// the affected row rather than the row itself so subscribers cannot hold
// references into storage state.
type Event struct {
	Kind       Kind
	PropertyID int64
	Title      string
}

// Handler receives published events
type Handler func(Event)

// Bus is a process-wide synchronous event bus. Handlers are registered once
// at startup; Publish invokes them in registration order on the caller's
// goroutine and does not buffer or defer.
type Bus struct {
	mu       sync.RWMutex
	handlers []Handler
}

// NewBus creates an empty event bus
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a handler for all subsequent events
func (b *Bus) Subscribe(handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, handler)
}

// Publish delivers the event to every registered handler, synchronously and
// in registration order.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers))
	copy(handlers, b.handlers)
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}
