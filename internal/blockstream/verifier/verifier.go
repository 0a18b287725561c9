// Package verifier decides whether a candidate block may be accepted.
package verifier

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockstream-importer/internal/blockstream/model"
)

// Verifier checks sequencing, filename consistency and hash chain continuity
// of candidates, transforms the winner and forwards it to the sink.
type Verifier struct {
	logger      *zap.Logger
	transformer Transformer
	sink        Sink
	cursor      *Cursor
	metrics     Metrics
}

// New creates a Verifier.
func New(logger *zap.Logger, transformer Transformer, sink Sink, repo Repository, metrics Metrics) (*Verifier, error) {
	if transformer == nil {
		return nil, errors.New("transformer is required")
	}
	if sink == nil {
		return nil, errors.New("sink is required")
	}
	if repo == nil {
		return nil, errors.New("repository is required")
	}
	if metrics == nil {
		return nil, errors.New("metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Verifier{
		logger:      logger.Named("verifier"),
		transformer: transformer,
		sink:        sink,
		cursor:      NewCursor(repo),
		metrics:     metrics,
	}, nil
}

// Fingerprint returns the fingerprint of the last accepted block.
func (v *Verifier) Fingerprint(ctx context.Context) (model.Fingerprint, error) {
	return v.cursor.Load(ctx)
}

// Verify accepts candidate if it extends the chain. On success the record has
// been handed to the sink and the fingerprint points at candidate.
func (v *Verifier) Verify(ctx context.Context, candidate *model.Block) (record *model.RecordFile, err error) {
	started := time.Now()
	defer func() {
		v.metrics.ObserveVerify(result(err), started)
	}()

	if candidate == nil {
		return nil, errors.New("nil candidate")
	}

	prev, err := v.cursor.load(ctx)
	if err != nil {
		return nil, err
	}
	if err := check(*prev, candidate); err != nil {
		return nil, err
	}

	record, err = v.transformer.Transform(candidate)
	if err != nil {
		return nil, fmt.Errorf("transform block %d: %w", candidate.Index, err)
	}

	next := &model.Fingerprint{Index: candidate.Index, Hash: candidate.Hash}
	if !v.cursor.swap(prev, next) {
		v.logger.Debug("candidate verified after another was accepted",
			zap.Int64("index", candidate.Index), zap.Int64("node_id", candidate.NodeID))
		return nil, ErrRaceLost
	}

	if err := v.sink.OnVerified(ctx, record); err != nil {
		if !v.cursor.swap(next, prev) {
			v.logger.Error("fingerprint moved while notifying", zap.Int64("index", candidate.Index))
		}
		return nil, fmt.Errorf("notify block %d: %w", candidate.Index, err)
	}
	return record, nil
}

// check runs the sequencing, filename and hash chain checks in that order.
// All of them are skipped against PreGenesis except the filename check.
func check(prev model.Fingerprint, candidate *model.Block) error {
	if !prev.IsPreGenesis() && candidate.Index != prev.Next() {
		return &SequenceError{Expected: prev.Next(), Actual: candidate.Index}
	}

	index, err := model.ParseBlockIndex(candidate.Name)
	if err != nil {
		return &ContentMismatchError{Filename: candidate.Name, Index: candidate.Index, Err: err}
	}
	if index != candidate.Index {
		return &ContentMismatchError{Filename: candidate.Name, Index: candidate.Index}
	}

	if !prev.IsPreGenesis() && candidate.PreviousHash != prev.Hash {
		return &HashMismatchError{Expected: prev.Hash, Actual: candidate.PreviousHash}
	}
	return nil
}
