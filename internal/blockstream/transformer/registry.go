package transformer

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/blockstream-importer/internal/blockstream/model"
)

// ErrNoDefault is returned when no reconstructor declares the unknown kind.
var ErrNoDefault = errors.New("no default reconstructor registered")

// Registry maps transaction kinds to reconstructors. It is immutable after NewRegistry.
type Registry struct {
	fallback Reconstructor
	byType   map[model.TransactionType]Reconstructor
}

// NewRegistry indexes reconstructors by their declared kind. Exactly one of them
// must declare model.TransactionTypeUnknown.
func NewRegistry(reconstructors ...Reconstructor) (*Registry, error) {
	r := &Registry{byType: make(map[model.TransactionType]Reconstructor, len(reconstructors))}
	for _, rc := range reconstructors {
		if rc == nil {
			return nil, errors.New("nil reconstructor")
		}
		kind := rc.TransactionType()
		if kind == model.TransactionTypeUnknown {
			if r.fallback != nil {
				return nil, errors.New("duplicate default reconstructor")
			}
			r.fallback = rc
			continue
		}
		if _, ok := r.byType[kind]; ok {
			return nil, fmt.Errorf("duplicate reconstructor for %s", kind)
		}
		r.byType[kind] = rc
	}
	if r.fallback == nil {
		return nil, ErrNoDefault
	}
	return r, nil
}

// NewDefaultRegistry registers every built in reconstructor.
func NewDefaultRegistry() (*Registry, error) {
	return NewRegistry(Builtin()...)
}

// Builtin returns the reconstructors shipped with the importer, default included.
func Builtin() []Reconstructor {
	return []Reconstructor{
		NewDefault(),
		cryptoCreateAccount{},
		cryptoTransfer{},
		consensusCreateTopic{},
		consensusSubmitMessage{},
		tokenCreation{},
		newTokenSupply(model.TransactionTypeTokenMint, 1),
		newTokenSupply(model.TransactionTypeTokenBurn, -1),
		newTokenSupply(model.TransactionTypeTokenWipe, -1),
		contractCall{kind: model.TransactionTypeContractCall},
		contractCall{kind: model.TransactionTypeContractCreateInstance},
		ethereumTransaction{},
		fileCreate{},
		scheduleCreate{},
		utilPrng{},
	}
}

// Get returns the reconstructor for kind, or the default one.
func (r *Registry) Get(kind model.TransactionType) Reconstructor {
	if rc, ok := r.byType[kind]; ok {
		return rc
	}
	return r.fallback
}

// Len returns the number of kind specific registrations.
func (r *Registry) Len() int {
	return len(r.byType)
}
