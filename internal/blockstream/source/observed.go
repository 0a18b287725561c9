package source

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockstream-importer/internal/blockstream/model"
)

// ObservedSource records fetch metrics around another BlockSource.
type ObservedSource struct {
	inner   BlockSource
	metrics Metrics
}

// NewObservedSource wraps inner.
func NewObservedSource(inner BlockSource, metrics Metrics) *ObservedSource {
	return &ObservedSource{inner: inner, metrics: metrics}
}

// Fetch delegates to the wrapped source.
func (s *ObservedSource) Fetch(ctx context.Context, node model.Node, filename string) (data []byte, err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveFetch(node.ID, err, len(data), started)
	}()
	return s.inner.Fetch(ctx, node, filename)
}
