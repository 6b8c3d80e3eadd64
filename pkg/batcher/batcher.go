// Package batcher buffers items and hands them to a flush callback in order,
// either when a batch fills up or when the flush interval elapses.
package batcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// ErrStopped is returned by Add once the batcher has been stopped.
var ErrStopped = errors.New("batcher stopped")

// Config tunes a Batcher.
type Config struct {
	// FlushSize is the maximum number of items handed to one flush.
	FlushSize int
	// FlushInterval bounds how long an item waits in the buffer.
	FlushInterval time.Duration
	// RPS limits flushes per second.
	RPS int
}

func (c Config) withDefaults() Config {
	if c.FlushSize <= 0 {
		c.FlushSize = 100
	}
	if c.FlushInterval <= 0 {
		c.FlushInterval = time.Second
	}
	if c.RPS <= 0 {
		c.RPS = 10
	}
	return c
}

// Batcher buffers items and flushes them in arrival order.
type Batcher[T any] struct {
	flush  func(context.Context, []T) error
	cfg    Config
	rl     ratelimit.Limiter
	logger *zap.Logger

	itemsCh chan T
	mu      sync.RWMutex
	stopped bool
	stop    chan struct{}
	done    chan struct{}
}

// New constructs a Batcher. Start must be called before Add.
func New[T any](logger *zap.Logger, flush func(context.Context, []T) error, cfg Config) *Batcher[T] {
	cfg = cfg.withDefaults()
	return &Batcher[T]{
		logger:  logger,
		flush:   flush,
		cfg:     cfg,
		itemsCh: make(chan T, cfg.FlushSize*2),
		rl:      ratelimit.New(cfg.RPS),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start launches the flushing loop. The loop ends on Stop or when ctx is done,
// flushing whatever is still buffered.
func (b *Batcher[T]) Start(ctx context.Context) {
	go b.run(ctx)
}

// Stop rejects further items, flushes the buffer and waits for the loop to exit.
func (b *Batcher[T]) Stop() {
	b.mu.Lock()
	if b.stopped {
		b.mu.Unlock()
		<-b.done
		return
	}
	b.stopped = true
	close(b.stop)
	b.mu.Unlock()
	<-b.done
}

// Add queues an item, blocking while the buffer is full.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.stopped {
		return ErrStopped
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.done:
		return ErrStopped
	case b.itemsCh <- item:
		return nil
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer close(b.done)

	ticker := time.NewTicker(b.cfg.FlushInterval)
	defer ticker.Stop()

	buf := make([]T, 0, b.cfg.FlushSize)
	flush := func(ctx context.Context) {
		if len(buf) == 0 {
			return
		}
		b.rl.Take()
		if err := b.flush(ctx, buf); err != nil {
			b.logger.Error("batch not flushed", zap.Int("size", len(buf)), zap.Error(err))
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
		}
		buf = make([]T, 0, b.cfg.FlushSize)
	}
	drain := func() {
		final := context.WithoutCancel(ctx)
		for {
			select {
			case item := <-b.itemsCh:
				buf = append(buf, item)
				if len(buf) >= b.cfg.FlushSize {
					flush(final)
				}
			default:
				flush(final)
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			drain()
			return
		case <-b.stop:
			drain()
			return
		case item := <-b.itemsCh:
			buf = append(buf, item)
			if len(buf) >= b.cfg.FlushSize {
				flush(ctx)
			}
		case <-ticker.C:
			flush(ctx)
		}
	}
}
