// Package poller races peer nodes for the next block on every tick.
package poller

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockstream-importer/internal/blockstream/model"
	"github.com/goodnatureofminers/blockstream-importer/internal/blockstream/verifier"
	"github.com/goodnatureofminers/blockstream-importer/pkg/workerpool"
)

// Tick outcomes reported to metrics.
const (
	outcomeAccepted = "accepted"
	outcomeNoWinner = "no_winner"
	outcomeDisabled = "disabled"
	outcomeEmpty    = "empty"
	outcomeError    = "error"
)

// Config controls a Poller.
type Config struct {
	Enabled bool
	// PersistBytes keeps the raw file on the record handed to the sink.
	PersistBytes bool
	// WriteFiles archives the raw file of every accepted block.
	WriteFiles bool
	ArchiveDir string
	// Timeout bounds a whole tick.
	Timeout time.Duration
}

// Poller fetches, decodes and verifies the next block from all nodes in parallel
// and keeps the first one that verifies.
type Poller struct {
	logger    *zap.Logger
	cfg       Config
	directory NodeDirectory
	source    BlockSource
	decoder   Decoder
	verifier  Verifier
	archiver  Archiver
	metrics   Metrics
	shuffle   func([]model.Node)
}

type accepted struct {
	record *model.RecordFile
	node   model.Node
	data   []byte
}

// New creates a Poller. archiver may be nil unless cfg.WriteFiles is set.
func New(
	logger *zap.Logger,
	cfg Config,
	directory NodeDirectory,
	source BlockSource,
	decoder Decoder,
	verifier Verifier,
	archiver Archiver,
	metrics Metrics,
) (*Poller, error) {
	if directory == nil || source == nil || decoder == nil || verifier == nil {
		return nil, errors.New("directory, source, decoder and verifier are required")
	}
	if metrics == nil {
		return nil, errors.New("metrics is required")
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("timeout must be positive, got %s", cfg.Timeout)
	}
	if cfg.WriteFiles && archiver == nil {
		return nil, errors.New("archiver is required when writing files")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Poller{
		logger:    logger.Named("poller"),
		cfg:       cfg,
		directory: directory,
		source:    source,
		decoder:   decoder,
		verifier:  verifier,
		archiver:  archiver,
		metrics:   metrics,
		shuffle:   shuffleNodes,
	}, nil
}

func shuffleNodes(nodes []model.Node) {
	rand.Shuffle(len(nodes), func(i, j int) {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	})
}

// Poll runs one tick. It returns nil when disabled, when there are no nodes
// and when a block was accepted. A tick without winner returns ErrNoWinner and
// leaves all state untouched.
func (p *Poller) Poll(ctx context.Context) error {
	started := time.Now()

	if !p.cfg.Enabled {
		p.logger.Debug("polling disabled")
		p.metrics.ObserveTick(outcomeDisabled, started)
		return nil
	}

	fp, err := p.verifier.Fingerprint(ctx)
	if err != nil {
		p.metrics.ObserveTick(outcomeError, started)
		return fmt.Errorf("load fingerprint: %w", err)
	}
	index := fp.Next()
	filename := model.BlockFilename(index)

	nodes := p.directory.Nodes()
	if len(nodes) == 0 {
		p.logger.Debug("no nodes to poll", zap.Int64("index", index))
		p.metrics.ObserveTick(outcomeEmpty, started)
		return nil
	}
	p.shuffle(nodes)

	tickCtx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()

	won, err := workerpool.First(tickCtx, len(nodes), nodes, func(ctx context.Context, node model.Node) (accepted, error) {
		return p.attempt(ctx, node, filename)
	})
	if err != nil {
		p.metrics.ObserveTick(outcomeNoWinner, started)
		return fmt.Errorf("%w: block %d from %d nodes: %w", ErrNoWinner, index, len(nodes), err)
	}

	p.metrics.ObserveTick(outcomeAccepted, started)
	p.metrics.SetLastAccepted(won.record.Index)
	p.logger.Info("block accepted",
		zap.Int64("index", won.record.Index),
		zap.String("hash", won.record.Hash),
		zap.Int64("node_id", won.node.ID),
		zap.Int("items", len(won.record.Items)),
		zap.Duration("elapsed", time.Since(started)),
	)

	if p.cfg.WriteFiles {
		err := p.archiver.Archive(filename, won.node.ID, won.data)
		p.metrics.ObserveArchive(err)
		if err != nil {
			p.logger.Error("archive block file", zap.String("filename", filename), zap.Error(err))
		}
	}
	return nil
}

// attempt runs fetch, decode and verify against one node.
func (p *Poller) attempt(ctx context.Context, node model.Node, filename string) (accepted, error) {
	data, err := p.source.Fetch(ctx, node, filename)
	if err != nil {
		return accepted{}, p.fail(ctx, node, filename, StageFetch, err)
	}

	block, err := p.decoder.Decode(data)
	if err != nil {
		return accepted{}, p.fail(ctx, node, filename, StageDecode, err)
	}
	block.Name = filename
	block.NodeID = node.ID
	if p.cfg.PersistBytes {
		block.Bytes = data
	} else {
		block.Bytes = nil
	}

	record, err := p.verifier.Verify(ctx, block)
	if err != nil {
		return accepted{}, p.fail(ctx, node, filename, StageVerify, err)
	}
	p.metrics.ObserveAttempt(node.ID, StageVerify, nil)
	return accepted{record: record, node: node, data: data}, nil
}

func (p *Poller) fail(ctx context.Context, node model.Node, filename, stage string, err error) error {
	p.metrics.ObserveAttempt(node.ID, stage, err)

	fields := []zap.Field{
		zap.Int64("node_id", node.ID),
		zap.String("filename", filename),
		zap.String("stage", stage),
		zap.Error(err),
	}
	// abandoned attempts and lost races are not node failures
	if ctx.Err() != nil || errors.Is(err, verifier.ErrRaceLost) {
		p.logger.Debug("node attempt abandoned", fields...)
	} else {
		p.logger.Warn("node attempt failed", fields...)
	}
	return &StageError{NodeID: node.ID, Stage: stage, Err: err}
}
