package notification

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	coreport "github.com/amirhossein-jamali/locker-rental/internal/domain/port/core"
	"github.com/amirhossein-jamali/locker-rental/internal/domain/port/event"
)

// Handler handles a published event
type Handler func(context.Context, event.Event) error

// Dispatcher delivers events synchronously to in-process subscribers
type Dispatcher struct {
	mu        sync.RWMutex
	listeners map[event.Type][]Handler
	all       []Handler
	logger    coreport.Logger
}

var _ event.Notifier = (*Dispatcher)(nil)

// NewDispatcher creates a dispatcher with no subscribers
func NewDispatcher(logger coreport.Logger) *Dispatcher {
	return &Dispatcher{
		listeners: make(map[event.Type][]Handler),
		logger:    logger,
	}
}

// Subscribe registers a handler for one event type
func (d *Dispatcher) Subscribe(eventType event.Type, handler Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners[eventType] = append(d.listeners[eventType], handler)
}

// SubscribeAll registers a handler for every event type
func (d *Dispatcher) SubscribeAll(handler Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.all = append(d.all, handler)
}

// Publish invokes every matching handler. A failing handler does not stop the others;
// their errors are joined.
func (d *Dispatcher) Publish(ctx context.Context, evt event.Event) error {
	evt = withID(evt)

	d.mu.RLock()
	handlers := append(append([]Handler{}, d.listeners[evt.Type]...), d.all...)
	d.mu.RUnlock()

	var errList []error
	for _, handler := range handlers {
		if err := handler(ctx, evt); err != nil {
			d.logger.Warn("Event handler failed", map[string]any{
				"event_id":   evt.ID,
				"event_type": string(evt.Type),
				"error":      err.Error(),
			})
			errList = append(errList, err)
		}
	}
	return errors.Join(errList...)
}

// withID assigns an event ID unless the producer already did
func withID(evt event.Event) event.Event {
	if evt.ID == "" {
		evt.ID = uuid.NewString()
	}
	return evt
}
