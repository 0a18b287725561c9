package transformer

import (
	"fmt"

	"github.com/goodnatureofminers/blockstream-importer/internal/blockstream/model"
)

type tokenCreation struct{}

func (tokenCreation) TransactionType() model.TransactionType {
	return model.TransactionTypeTokenCreation
}

func (tokenCreation) Augment(record *model.TransactionRecord, in Input) error {
	record.TokenTransfers = in.Item.Result.TokenTransfers
	if out := in.Item.Outputs.EntityCreate; out != nil {
		record.Receipt.TokenID = entityRef(out.EntityID)
		record.Receipt.NewTotalSupply = in.Item.Transaction.Amount
	}
	return nil
}

// tokenSupply reconstructs mint, burn and wipe. sign is +1 for operations
// growing the supply and -1 for those shrinking it.
type tokenSupply struct {
	kind model.TransactionType
	sign int
}

func newTokenSupply(kind model.TransactionType, sign int) tokenSupply {
	return tokenSupply{kind: kind, sign: sign}
}

func (t tokenSupply) TransactionType() model.TransactionType {
	return t.kind
}

// Augment leaves NewTotalSupply at zero and returns ErrUnresolvable when the
// output omits it and no earlier item of the token provides a running total.
func (t tokenSupply) Augment(record *model.TransactionRecord, in Input) error {
	tx := in.Item.Transaction
	out := in.Item.Outputs.TokenSupply

	record.TokenTransfers = in.Item.Result.TokenTransfers
	if tx.Entity != nil {
		record.Receipt.TokenID = entityRef(*tx.Entity)
	}
	if out != nil {
		record.Receipt.SerialNumbers = out.SerialNumbers
	}
	if !succeeded(in) {
		return nil
	}
	if out != nil && out.NewTotalSupply != nil {
		record.Receipt.NewTotalSupply = *out.NewTotalSupply
		return nil
	}

	if tx.Entity == nil {
		return fmt.Errorf("%s total supply at %d: missing token id: %w",
			t.kind, in.Item.Result.ConsensusTimestamp, ErrUnresolvable)
	}
	token := *tx.Entity
	prev := findPrevious(in.Previous, func(item *model.RecordItem) bool {
		return changesSupply(item.Type()) &&
			item.Record.Receipt.Status == statusSuccess &&
			item.Record.Receipt.TokenID != nil && *item.Record.Receipt.TokenID == token
	})
	if prev == nil {
		return fmt.Errorf("%s token %s total supply at %d: %w",
			t.kind, token, in.Item.Result.ConsensusTimestamp, ErrUnresolvable)
	}

	delta := tx.Amount
	if delta == 0 && out != nil {
		delta = uint64(len(out.SerialNumbers))
	}
	total := prev.Record.Receipt.NewTotalSupply
	if t.sign < 0 {
		if delta > total {
			return fmt.Errorf("%s token %s: amount %d exceeds supply %d: %w",
				t.kind, token, delta, total, ErrUnresolvable)
		}
		record.Receipt.NewTotalSupply = total - delta
		return nil
	}
	record.Receipt.NewTotalSupply = total + delta
	return nil
}

func changesSupply(kind model.TransactionType) bool {
	switch kind {
	case model.TransactionTypeTokenCreation,
		model.TransactionTypeTokenMint,
		model.TransactionTypeTokenBurn,
		model.TransactionTypeTokenWipe:
		return true
	default:
		return false
	}
}
