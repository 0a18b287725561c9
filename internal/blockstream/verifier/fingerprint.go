package verifier

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/goodnatureofminers/blockstream-importer/internal/blockstream/model"
)

// Cursor holds the fingerprint of the last accepted block. Every stored value
// is immutable, updates replace the pointer with compare-and-swap.
type Cursor struct {
	repo    Repository
	current atomic.Pointer[model.Fingerprint]
}

// NewCursor creates a Cursor recovered lazily from repo.
func NewCursor(repo Repository) *Cursor {
	return &Cursor{repo: repo}
}

// Load returns the current fingerprint, recovering it from the repository on first use.
func (c *Cursor) Load(ctx context.Context) (model.Fingerprint, error) {
	fp, err := c.load(ctx)
	if err != nil {
		return model.Fingerprint{}, err
	}
	return *fp, nil
}

func (c *Cursor) load(ctx context.Context) (*model.Fingerprint, error) {
	if fp := c.current.Load(); fp != nil {
		return fp, nil
	}

	latest, found, err := c.repo.LatestRecordFile(ctx)
	if err != nil {
		return nil, fmt.Errorf("recover latest record file: %w", err)
	}
	seed := model.PreGenesis
	if found {
		seed = latest
	}
	// a concurrent recovery may have won, use whatever is stored now
	c.current.CompareAndSwap(nil, &seed)
	return c.current.Load(), nil
}

// swap replaces prev with next and reports whether prev was still current.
func (c *Cursor) swap(prev, next *model.Fingerprint) bool {
	return c.current.CompareAndSwap(prev, next)
}
