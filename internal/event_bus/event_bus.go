package event_bus

import (
	"context"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// EventType is an identifier for events.
type EventType string

// Event is the envelope published on the bus. Data is kept as any so
// different payload types can share one bus.
type Event struct {
	ctx       context.Context
	Type      EventType
	Timestamp time.Time
	Data      any
}

// NewEvent creates an Event carrying the given context, type, and payload.
func NewEvent(ctx context.Context, eventType EventType, data any) Event {
	return Event{
		ctx:       ctx,
		Type:      eventType,
		Timestamp: time.Now(),
		Data:      data,
	}
}

// Context returns the context the event was published with. Handlers should
// use it for cancellation and request-scoped values.
func (e Event) Context() context.Context {
	if e.ctx == nil {
		return context.Background()
	}
	return e.ctx
}

// Bus is a concurrency-safe synchronous dispatcher. Handlers run sequentially
// during Publish, in registration order.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[EventType][]func(Event) error
}

func NewBus() *Bus {
	return &Bus{subscribers: make(map[EventType][]func(Event) error)}
}

// Subscribe registers a handler for the given event type.
func (b *Bus) Subscribe(eventType EventType, h func(Event) error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers[eventType] = append(b.subscribers[eventType], h)
}

// Publish delivers the event to every handler registered for its type.
// A failing handler does not stop delivery to the remaining ones; errors are
// logged and the first one is returned. Panics are recovered and treated as
// handler errors.
func (b *Bus) Publish(e Event) error {
	if err := e.Context().Err(); err != nil {
		return fmt.Errorf("event %s: context cancelled before publish: %w", e.Type, err)
	}

	b.mu.RLock()
	handlers := make([]func(Event) error, len(b.subscribers[e.Type]))
	copy(handlers, b.subscribers[e.Type])
	b.mu.RUnlock()

	var firstErr error
	for _, h := range handlers {
		err := func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("handler panic for event %s: %v", e.Type, r)
				}
			}()
			return h(e)
		}()
		if err != nil {
			log.Errorf("event bus: handler error for event %s: %v", e.Type, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
