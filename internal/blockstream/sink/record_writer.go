// Package sink persists accepted record files.
package sink

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockstream-importer/internal/blockstream/model"
	"github.com/goodnatureofminers/blockstream-importer/internal/clock"
	"github.com/goodnatureofminers/blockstream-importer/pkg/batcher"
)

// Config tunes a RecordWriter. Zero values select defaults.
type Config struct {
	FlushSize     int
	FlushInterval time.Duration
	// Retries is the number of extra attempts per storage call.
	Retries int
	Backoff time.Duration
	// RPS limits flushes per second, zero is unlimited.
	RPS int
}

// RecordWriter is the notification sink that batches records into storage.
type RecordWriter struct {
	repo    Repository
	metrics Metrics
	logger  *zap.Logger
	retries int
	backoff time.Duration
	sleep   func(context.Context, time.Duration) error
	batcher *batcher.Batcher[*model.RecordFile]
}

// NewRecordWriter creates a RecordWriter. Call Start before handing it records.
func NewRecordWriter(logger *zap.Logger, repo Repository, metrics Metrics, cfg Config) (*RecordWriter, error) {
	if repo == nil {
		return nil, errors.New("record repository is required")
	}
	if metrics == nil {
		return nil, errors.New("record writer metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.FlushSize <= 0 {
		cfg.FlushSize = defaultFlushSize
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = defaultFlushInterval
	}
	if cfg.Retries <= 0 {
		cfg.Retries = defaultRetries
	}
	if cfg.Backoff <= 0 {
		cfg.Backoff = defaultBackoff
	}

	w := &RecordWriter{
		repo:    repo,
		metrics: metrics,
		logger:  logger.Named("record_writer"),
		retries: cfg.Retries,
		backoff: cfg.Backoff,
		sleep:   clock.SleepWithContext,
	}
	w.batcher = batcher.New[*model.RecordFile](w.logger.Named("batcher"), w.flush, batcher.Config{
		FlushSize:     cfg.FlushSize,
		FlushInterval: cfg.FlushInterval,
		RPS:           cfg.RPS,
	})
	return w, nil
}

// Start begins flushing in the background.
func (w *RecordWriter) Start(ctx context.Context) {
	w.batcher.Start(ctx)
}

// Stop flushes queued records and waits for the background loop to finish.
func (w *RecordWriter) Stop() {
	w.batcher.Stop()
}

// OnVerified queues record for storage. It returns batcher.ErrBacklogged while
// an earlier batch is still failing to store; the record should be offered
// again later.
func (w *RecordWriter) OnVerified(ctx context.Context, record *model.RecordFile) error {
	if record == nil {
		return errors.New("nil record file")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return w.batcher.Add(ctx, record)
}

// flush writes item rows before their files: a file row marks its block as
// stored for cold-start recovery.
func (w *RecordWriter) flush(ctx context.Context, records []*model.RecordFile) (err error) {
	started := time.Now()
	var written int
	defer func() {
		w.metrics.ObserveFlush(err, len(records), written, started)
	}()

	files := make([]model.RecordFile, 0, len(records))
	rows := make([]model.RecordItemRow, 0, len(records))
	for _, record := range records {
		file := *record
		file.Items = nil
		files = append(files, file)

		for _, item := range record.Items {
			rows = append(rows, itemRow(record.Index, item))
			if len(rows) >= itemFlushThreshold {
				if err := w.retry(ctx, "insert record items", func(ctx context.Context) error {
					return w.repo.InsertRecordItems(ctx, rows)
				}); err != nil {
					return err
				}
				written += len(rows)
				rows = rows[:0]
			}
		}
	}

	if len(rows) > 0 {
		if err := w.retry(ctx, "insert record items", func(ctx context.Context) error {
			return w.repo.InsertRecordItems(ctx, rows)
		}); err != nil {
			return err
		}
		written += len(rows)
	}

	if err := w.retry(ctx, "insert record files", func(ctx context.Context) error {
		return w.repo.InsertRecordFiles(ctx, files)
	}); err != nil {
		return err
	}

	w.logger.Debug("records stored",
		zap.Int("files", len(files)),
		zap.Int("items", written),
		zap.Int64("last_index", files[len(files)-1].Index),
	)
	return nil
}

func (w *RecordWriter) retry(ctx context.Context, op string, fn func(context.Context) error) error {
	var err error
	for attempt := 0; attempt <= w.retries; attempt++ {
		if attempt > 0 {
			w.logger.Warn("storage call failed, retrying",
				zap.String("op", op),
				zap.Int("attempt", attempt),
				zap.Duration("backoff", w.backoff),
				zap.Error(err),
			)
			if sleepErr := w.sleep(ctx, w.backoff); sleepErr != nil {
				return fmt.Errorf("%s: %w", op, errors.Join(err, sleepErr))
			}
		}
		if err = fn(ctx); err == nil {
			return nil
		}
	}
	return fmt.Errorf("%s after %d attempts: %w", op, w.retries+1, err)
}
