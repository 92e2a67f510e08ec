package events

import (
	"context"
	"fmt"
	"sync"

	"travel_backend/internal/logger"
)

// Event is anything published on the Bus. Name selects the subscribers.
type Event interface {
	Name() string
}

type Handler func(ctx context.Context, e Event) error

// Bus delivers events synchronously on the publisher's goroutine.
// Handler errors are logged and never reach the publisher: by the time an
// event is published the change it describes is already committed.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

func NewBus() *Bus {
	return &Bus{handlers: make(map[string][]Handler)}
}

func (b *Bus) Subscribe(name string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[name] = append(b.handlers[name], h)
}

func (b *Bus) Publish(ctx context.Context, e Event) {
	if b == nil {
		return
	}

	b.mu.RLock()
	hs := make([]Handler, len(b.handlers[e.Name()]))
	copy(hs, b.handlers[e.Name()])
	b.mu.RUnlock()

	for _, h := range hs {
		if err := safeCall(ctx, h, e); err != nil {
			logger.CtxWarn(ctx, "event handler failed", "event", e.Name(), "error", err.Error())
		}
	}
}

func safeCall(ctx context.Context, h Handler, e Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return h(ctx, e)
}
