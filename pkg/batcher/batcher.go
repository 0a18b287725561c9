// Package batcher groups queued items into size or interval bounded batches.
package batcher

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

var (
	// ErrStopped is returned by Add once Stop has been called.
	ErrStopped = errors.New("batcher stopped")
	// ErrBacklogged is returned by Add while a failed batch waits to be flushed again.
	ErrBacklogged = errors.New("batcher backlogged by a failed flush")
)

// FlushFunc receives a batch. The slice is owned by the callee.
type FlushFunc[T any] func(ctx context.Context, batch []T) error

// Config sizes a Batcher.
type Config struct {
	// FlushSize is the batch size that triggers a flush, at least 1.
	FlushSize int
	// FlushInterval flushes a partial batch when it elapses.
	FlushInterval time.Duration
	// RPS caps flushes per second. Zero or less is unlimited.
	RPS int
}

// Batcher queues items and hands them to a FlushFunc in batches from a single
// background goroutine. Batches are handed over in queue order: a batch whose
// flush failed is retried every FlushInterval before anything queued after it,
// and Add refuses new items until it succeeds.
type Batcher[T any] struct {
	logger     *zap.Logger
	flushFn    FlushFunc[T]
	cfg        Config
	limiter    ratelimit.Limiter
	queue      chan T
	backlogged atomic.Bool

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

// New creates a Batcher. It does nothing until Start is called.
func New[T any](logger *zap.Logger, flushFn FlushFunc[T], cfg Config) *Batcher[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.FlushSize <= 0 {
		cfg.FlushSize = 1
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = time.Second
	}
	limiter := ratelimit.NewUnlimited()
	if cfg.RPS > 0 {
		limiter = ratelimit.New(cfg.RPS)
	}
	return &Batcher[T]{
		logger:  logger,
		flushFn: flushFn,
		cfg:     cfg,
		limiter: limiter,
		queue:   make(chan T, cfg.FlushSize*2),
		stop:    make(chan struct{}),
	}
}

// Start launches the flush loop. Canceling ctx behaves like Stop without waiting.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		loop := &flushLoop[T]{b: b, pending: b.newBatch()}
		loop.run(ctx)
	}()
}

// Stop flushes everything queued and waits for the loop to exit.
// Calling it more than once is fine.
func (b *Batcher[T]) Stop() {
	b.stopOnce.Do(func() { close(b.stop) })
	b.wg.Wait()
}

// Add queues item. It blocks while the queue is full.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return ErrStopped
	default:
	}
	if b.backlogged.Load() {
		return ErrBacklogged
	}

	select {
	case b.queue <- item:
		return nil
	case <-b.stop:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Backlogged reports whether a failed batch is waiting to be flushed again.
func (b *Batcher[T]) Backlogged() bool {
	return b.backlogged.Load()
}

func (b *Batcher[T]) newBatch() []T {
	return make([]T, 0, b.cfg.FlushSize)
}

type flushLoop[T any] struct {
	b       *Batcher[T]
	pending []T
	// failed is the oldest batch not yet flushed, nil when caught up.
	failed []T
}

func (l *flushLoop[T]) run(ctx context.Context) {
	ticker := time.NewTicker(l.b.cfg.FlushInterval)
	defer ticker.Stop()

	for {
		select {
		case item := <-l.b.queue:
			l.push(ctx, item)
		case <-ticker.C:
			l.flush(ctx)
		case <-l.b.stop:
			l.drain(context.WithoutCancel(ctx))
			return
		case <-ctx.Done():
			l.drain(context.WithoutCancel(ctx))
			return
		}
	}
}

// push buffers item. While a failed batch is held only the ticker retries it.
func (l *flushLoop[T]) push(ctx context.Context, item T) {
	l.pending = append(l.pending, item)
	if len(l.pending) >= l.b.cfg.FlushSize && l.failed == nil {
		l.flush(ctx)
	}
}

// drain makes one last attempt at everything still held or queued.
func (l *flushLoop[T]) drain(ctx context.Context) {
	for {
		select {
		case item := <-l.b.queue:
			l.pending = append(l.pending, item)
		default:
			if !l.flush(ctx) {
				l.b.logger.Error("batches dropped on stop", zap.Int("size", len(l.failed)+len(l.pending)))
			}
			return
		}
	}
}

// flush hands over the failed batch, then the pending one. It reports whether
// nothing is left behind.
func (l *flushLoop[T]) flush(ctx context.Context) bool {
	if l.failed != nil {
		if !l.send(ctx, l.failed) {
			return false
		}
		l.failed = nil
		l.b.backlogged.Store(false)
	}
	if len(l.pending) == 0 {
		return true
	}

	batch := l.pending
	l.pending = l.b.newBatch()
	if !l.send(ctx, batch) {
		l.failed = batch
		l.b.backlogged.Store(true)
		return false
	}
	return true
}

func (l *flushLoop[T]) send(ctx context.Context, batch []T) bool {
	l.b.limiter.Take()
	if err := l.b.flushFn(ctx, batch); err != nil {
		l.b.logger.Error("batch not flushed", zap.Int("size", len(batch)), zap.Error(err))
		return false
	}
	l.b.logger.Debug("batch flushed", zap.Int("size", len(batch)))
	return true
}
