package transformer

import (
	"errors"

	"github.com/goodnatureofminers/blockstream-importer/internal/blockstream/model"
)

const statusSuccess = "SUCCESS"

// ErrUnresolvable is returned when a reconstructor needs state neither the
// outputs nor the preceding items can provide. The field is left unset and
// the rest of the record is still valid.
var ErrUnresolvable = errors.New("unresolvable record field")

// Input is everything a Reconstructor may look at for one block item.
type Input struct {
	Item model.BlockItem
	// Previous is the record item built just before this one, nil for the first item.
	Previous *model.RecordItem
}

// Reconstructor adds kind specific fields on top of the common record.
type Reconstructor interface {
	TransactionType() model.TransactionType
	Augment(record *model.TransactionRecord, in Input) error
}

// Reconstruct builds the fields shared by every transaction kind and then
// lets r apply its augmentation. On an ErrUnresolvable the record is returned
// along with the error.
func Reconstruct(r Reconstructor, in Input) (model.TransactionRecord, error) {
	tx := in.Item.Transaction
	res := in.Item.Result

	record := model.TransactionRecord{
		ConsensusTimestamp:         res.ConsensusTimestamp,
		ParentConsensusTimestamp:   res.ParentConsensusTimestamp,
		TransactionID:              tx.TransactionID,
		Memo:                       tx.Memo,
		TransactionFee:             res.TransactionFee,
		Transfers:                  res.Transfers,
		AutomaticTokenAssociations: res.AutomaticTokenAssociations,
		Receipt:                    model.TransactionReceipt{Status: res.Status},
	}
	if record.ParentConsensusTimestamp == 0 && tx.TransactionID.Nonce > 0 {
		record.ParentConsensusTimestamp = parentTimestamp(tx.TransactionID, in.Previous)
	}

	if err := r.Augment(&record, in); err != nil {
		if errors.Is(err, ErrUnresolvable) {
			return record, err
		}
		return model.TransactionRecord{}, err
	}
	return record, nil
}

// parentTimestamp finds the user transaction a child transaction belongs to.
func parentTimestamp(id model.TransactionID, previous *model.RecordItem) int64 {
	parent := findPrevious(previous, func(item *model.RecordItem) bool {
		pid := item.Record.TransactionID
		return pid.Nonce == 0 && pid.Payer == id.Payer && pid.ValidStart == id.ValidStart
	})
	if parent == nil {
		return 0
	}
	return parent.Record.ConsensusTimestamp
}

// findPrevious walks the backward links starting at item and returns the first match.
func findPrevious(item *model.RecordItem, match func(*model.RecordItem) bool) *model.RecordItem {
	for ; item != nil; item = item.Previous {
		if match(item) {
			return item
		}
	}
	return nil
}

func succeeded(in Input) bool {
	return in.Item.Result.Status == statusSuccess
}

func entityRef(id model.EntityID) *model.EntityID {
	return &id
}

type defaultReconstructor struct{}

// NewDefault returns the fallback reconstructor used for unregistered kinds.
func NewDefault() Reconstructor {
	return defaultReconstructor{}
}

func (defaultReconstructor) TransactionType() model.TransactionType {
	return model.TransactionTypeUnknown
}

func (defaultReconstructor) Augment(*model.TransactionRecord, Input) error {
	return nil
}
