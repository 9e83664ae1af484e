package event

import (
	"context"
	"errors"
	"sync"

	"github.com/shandysiswandi/healthsheet/internal/health/entity"
)

var ErrBusClosed = errors.New("event bus is closed")

type Bus struct {
	mu     sync.RWMutex
	closed bool
	ch     chan entity.DatasetReplacedEvent
}

func NewBus(buffer int) *Bus {
	if buffer < 1 {
		buffer = 1
	}

	return &Bus{
		ch: make(chan entity.DatasetReplacedEvent, buffer),
	}
}

// Publish blocks until the event is buffered, ctx is done or the bus is closed.
func (b *Bus) Publish(ctx context.Context, event entity.DatasetReplacedEvent) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrBusClosed
	}

	select {
	case b.ch <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (b *Bus) Subscribe() <-chan entity.DatasetReplacedEvent {
	return b.ch
}

func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	b.closed = true
	close(b.ch)
}
