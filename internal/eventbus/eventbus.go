package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"xdgmimer/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventSearchQueryChanged = domain.EventSearchQueryChanged
	EventItemSelected       = domain.EventItemSelected
	EventDefaultRequested   = domain.EventDefaultRequested
	EventSourcesResolved    = domain.EventSourcesResolved
	EventStoreBuilt         = domain.EventStoreBuilt
	EventCommandExecuted    = domain.EventCommandExecuted
	EventError              = domain.EventError
)

// Re-export domain event types
type SearchQueryChangedEvent = domain.SearchQueryChangedEvent
type ItemSelectedEvent = domain.ItemSelectedEvent
type DefaultRequestedEvent = domain.DefaultRequestedEvent
type SourcesResolvedEvent = domain.SourcesResolvedEvent
type StoreBuiltEvent = domain.StoreBuiltEvent
type CommandExecutedEvent = domain.CommandExecutedEvent
type ErrorEvent = domain.ErrorEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

// bus is the concrete implementation of EventBus.
//
// Dispatch is synchronous and in subscription order: the whole
// application processes one event to completion before the next one is
// accepted, so handlers run on the publisher's goroutine.
type bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]EventHandler
	nextID   int
	ids      map[EventType][]int
}

// New creates a new event bus
func New() EventBus {
	return &bus{
		handlers: make(map[EventType][]EventHandler),
		ids:      make(map[EventType][]int),
	}
}

// Publish delivers an event to all subscribers before returning.
func (b *bus) Publish(event DomainEvent) {
	b.mu.RLock()
	handlers := make([]EventHandler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	for _, handler := range handlers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("Event handler panic for %s: %v\nStack: %s", event.Type(), r, debug.Stack())
				}
			}()
			handler(event)
		}()
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], handler)
	b.ids[eventType] = append(b.ids[eventType], id)

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		ids := b.ids[eventType]
		for i, got := range ids {
			if got == id {
				b.handlers[eventType] = append(b.handlers[eventType][:i], b.handlers[eventType][i+1:]...)
				b.ids[eventType] = append(ids[:i], ids[i+1:]...)
				break
			}
		}
	}
}
