package event

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/shandysiswandi/healthsheet/internal/health/entity"
)

type Handler interface {
	Handle(ctx context.Context, event entity.DatasetReplacedEvent) error
}

type ConsumerConfig struct {
	Workers     int
	MaxRetries  int
	BaseBackoff time.Duration
}

// Consumer drains the bus with a pool of workers. Events are handled at most
// once per EventID and retried with exponential backoff on failure.
type Consumer struct {
	bus         *Bus
	handler     Handler
	workers     int
	maxRetries  int
	baseBackoff time.Duration
	seen        sync.Map
	wg          sync.WaitGroup
}

func NewConsumer(bus *Bus, handler Handler, cfg ConsumerConfig) *Consumer {
	workers := cfg.Workers
	if workers < 1 {
		workers = 2
	}

	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	baseBackoff := cfg.BaseBackoff
	if baseBackoff <= 0 {
		baseBackoff = 100 * time.Millisecond
	}

	return &Consumer{
		bus:         bus,
		handler:     handler,
		workers:     workers,
		maxRetries:  maxRetries,
		baseBackoff: baseBackoff,
	}
}

func (c *Consumer) Start() {
	for i := 0; i < c.workers; i++ {
		c.wg.Add(1)
		go c.worker()
	}
}

// Stop closes the bus and waits for in-flight events until ctx is done.
func (c *Consumer) Stop(ctx context.Context) error {
	if c.bus != nil {
		c.bus.Close()
	}

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Consumer) worker() {
	defer c.wg.Done()

	for event := range c.bus.Subscribe() {
		c.processEvent(event)
	}
}

func (c *Consumer) processEvent(event entity.DatasetReplacedEvent) {
	if c.handler == nil {
		return
	}

	if event.EventID != "" {
		if _, loaded := c.seen.LoadOrStore(event.EventID, struct{}{}); loaded {
			slog.Info("skip duplicate dataset event", "event_id", event.EventID, "upload_id", event.UploadID)
			return
		}
	}

	backoff := c.baseBackoff
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		err := c.handler.Handle(context.Background(), event)
		if err == nil {
			return
		}

		if attempt == c.maxRetries {
			slog.Error("failed to handle dataset event after retries", "event_id", event.EventID, "upload_id", event.UploadID, "error", err)
			return
		}

		sleepBackoff(backoff)
		backoff *= 2
	}
}

func sleepBackoff(d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	<-timer.C
}

// AuditLogger writes one structured log line per replaced dataset.
type AuditLogger struct {
	Logger *slog.Logger
}

func (a AuditLogger) Handle(ctx context.Context, event entity.DatasetReplacedEvent) error {
	if event.EventID == "" {
		return errors.New("missing event id")
	}

	logger := a.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger.InfoContext(ctx, "dataset replaced",
		"event_id", event.EventID,
		"username", event.Username,
		"upload_id", event.UploadID,
		"filename", event.Filename,
		"records", event.RecordCount,
		"previous_records", event.Previous,
		"occurred_at", event.OccurredAt,
	)

	return nil
}
