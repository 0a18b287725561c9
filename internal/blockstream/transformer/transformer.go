// Package transformer reshapes accepted blocks into record files.
package transformer

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockstream-importer/internal/blockstream/model"
)

// Transformer converts blocks into record files using a Registry.
type Transformer struct {
	logger   *zap.Logger
	registry *Registry
	metrics  Metrics
}

// New creates a Transformer.
func New(logger *zap.Logger, registry *Registry, metrics Metrics) (*Transformer, error) {
	if registry == nil {
		return nil, errors.New("registry is required")
	}
	if metrics == nil {
		return nil, errors.New("metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Transformer{
		logger:   logger.Named("transformer"),
		registry: registry,
		metrics:  metrics,
	}, nil
}

// Transform builds the record file of block. Items keep their order and each
// one links back to the item before it.
func (t *Transformer) Transform(block *model.Block) (*model.RecordFile, error) {
	if block == nil {
		return nil, errors.New("nil block")
	}

	hapi, err := parseVersion(block.HapiVersion)
	if err != nil {
		return nil, fmt.Errorf("block %d hapi version: %w", block.Index, err)
	}
	software, err := parseVersion(block.SoftwareVersion)
	if err != nil {
		return nil, fmt.Errorf("block %d software version: %w", block.Index, err)
	}

	record := &model.RecordFile{
		Index:                block.Index,
		Hash:                 block.Hash,
		PreviousHash:         block.PreviousHash,
		Name:                 block.Name,
		Bytes:                block.Bytes,
		NodeID:               block.NodeID,
		ConsensusStart:       block.ConsensusStart,
		ConsensusEnd:         block.ConsensusEnd,
		Count:                int64(len(block.Items)),
		Size:                 block.Size,
		DigestAlgorithm:      model.DigestAlgorithm,
		Version:              model.BlockStreamVersion,
		HapiVersionMajor:     hapi.Major,
		HapiVersionMinor:     hapi.Minor,
		HapiVersionPatch:     hapi.Patch,
		SoftwareVersionMajor: software.Major,
		SoftwareVersionMinor: software.Minor,
		SoftwareVersionPatch: software.Patch,
		Items:                make([]*model.RecordItem, 0, len(block.Items)),
	}

	var previous *model.RecordItem
	for i, item := range block.Items {
		rc := t.registry.Get(item.Transaction.Type)
		tr, err := Reconstruct(rc, Input{Item: item, Previous: previous})
		switch {
		case errors.Is(err, ErrUnresolvable):
			t.metrics.ObserveUnresolved(item.Transaction.Type.String())
			t.logger.Warn("record field left unset",
				zap.Int64("index", block.Index),
				zap.Int("item", i),
				zap.Stringer("type", item.Transaction.Type),
				zap.Error(err),
			)
		case err != nil:
			return nil, fmt.Errorf("block %d item %d (%s): %w", block.Index, i, item.Transaction.Type, err)
		}
		current := &model.RecordItem{
			Index:       i,
			Transaction: item.Transaction,
			Record:      tr,
			Previous:    previous,
		}
		record.Items = append(record.Items, current)
		previous = current
	}
	return record, nil
}

func parseVersion(s string) (model.SemanticVersion, error) {
	if s == "" {
		return model.SemanticVersion{}, nil
	}
	return model.ParseSemanticVersion(s)
}
