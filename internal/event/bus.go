package event

import (
	"sync"

	"go.uber.org/zap"
)

// Handler processes the payload of a published event.
type Handler func(payload any)

// Bus is an in-memory publish/subscribe registry keyed by plain event names.
// Names form a flat namespace; the colon-separated segments used across the
// application ("basket:changed", "order:submit") are a readability convention
// the bus itself assigns no meaning to.
//
// Dispatch is synchronous and depth-first: a handler that publishes again runs
// the nested dispatch to completion before control returns to the outer
// publish's remaining handlers. Handler cycles are not guarded against and
// must be avoided by design.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	logger   *zap.Logger
}

// NewBus creates an empty event bus.
func NewBus(logger *zap.Logger) *Bus {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bus{
		handlers: make(map[string][]Handler),
		logger:   logger,
	}
}

// Subscribe registers a handler for an exact event name. Handlers run in
// registration order. Subscriptions live for the session; there is no
// unsubscribe.
func (b *Bus) Subscribe(name string, h Handler) {
	if h == nil {
		return
	}
	b.mu.Lock()
	b.handlers[name] = append(b.handlers[name], h)
	b.mu.Unlock()

	b.logger.Debug("handler subscribed", zap.String("event", name))
}

// Publish invokes every handler currently registered for name, passing the
// payload unchanged. Fire-and-forget: handlers return nothing, and a
// panicking handler is logged and does not stop the remaining ones.
func (b *Bus) Publish(name string, payload any) {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[name]...)
	b.mu.RUnlock()

	for _, h := range handlers {
		b.dispatch(name, h, payload)
	}
}

// dispatch safely invokes a single handler.
func (b *Bus) dispatch(name string, h Handler, payload any) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event handler panicked",
				zap.String("event", name),
				zap.Any("panic", r),
			)
		}
	}()

	h(payload)
}
