// Package batcher groups items into rate-limited batches.
package batcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const (
	defaultSize     = 100
	defaultInterval = time.Second
)

// ErrStopped is returned by Add once Stop was called.
var ErrStopped = errors.New("batcher stopped")

// Config controls when a batch is flushed.
type Config struct {
	// Size flushes as soon as this many items are buffered.
	Size int
	// Interval flushes whatever is buffered at least this often.
	Interval time.Duration
	// RPS caps flushes per second; zero means unlimited.
	RPS int
}

// Batcher buffers items and hands them to a flush callback by size or interval.
type Batcher[T any] struct {
	flush   func(context.Context, []T) error
	items   chan T
	size    int
	every   time.Duration
	limiter ratelimit.Limiter
	logger  *zap.Logger

	mu      sync.RWMutex
	started bool
	stopped bool
	stop    chan struct{}
	done    chan struct{}

	errMu   sync.Mutex
	err     error
	flushed int
}

// New constructs a Batcher; call Start before Add.
func New[T any](logger *zap.Logger, cfg Config, flush func(context.Context, []T) error) *Batcher[T] {
	if cfg.Size <= 0 {
		cfg.Size = defaultSize
	}
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}
	limiter := ratelimit.NewUnlimited()
	if cfg.RPS > 0 {
		limiter = ratelimit.New(cfg.RPS)
	}
	return &Batcher[T]{
		flush:   flush,
		items:   make(chan T, cfg.Size*2),
		size:    cfg.Size,
		every:   cfg.Interval,
		limiter: limiter,
		logger:  logger,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.started {
		return
	}
	b.started = true
	go b.run(ctx)
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
	case b.items <- item:
		return nil
	}
}

// Stop flushes what is left, waits for the loop to exit and returns the first flush
// error, if any.
func (b *Batcher[T]) Stop() error {
	b.mu.Lock()
	if !b.stopped {
		b.stopped = true
		close(b.stop)
	}
	started := b.started
	b.mu.Unlock()

	if started {
		<-b.done
	}
	return b.Err()
}

// Err returns the first flush error.
func (b *Batcher[T]) Err() error {
	b.errMu.Lock()
	defer b.errMu.Unlock()
	return b.err
}

// Flushed returns the number of items flushed successfully.
func (b *Batcher[T]) Flushed() int {
	b.errMu.Lock()
	defer b.errMu.Unlock()
	return b.flushed
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer close(b.done)

	ticker := time.NewTicker(b.every)
	defer ticker.Stop()

	buf := make([]T, 0, b.size)
	flush := func() {
		if len(buf) == 0 {
			return
		}
		b.limiter.Take()
		err := b.flush(ctx, buf)

		b.errMu.Lock()
		if err != nil && b.err == nil {
			b.err = err
		}
		if err == nil {
			b.flushed += len(buf)
		}
		b.errMu.Unlock()

		if err != nil {
			b.logger.Error("batch not flushed", zap.Int("size", len(buf)), zap.Error(err))
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
		}
		buf = make([]T, 0, b.size)
	}

	add := func(item T) {
		buf = append(buf, item)
		if len(buf) >= b.size {
			flush()
		}
	}
	drain := func() {
		for {
			select {
			case item := <-b.items:
				add(item)
			default:
				flush()
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

		case item := <-b.items:
			add(item)

		case <-ticker.C:
			flush()
		}
	}
}
