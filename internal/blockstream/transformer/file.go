package transformer

import (
	"github.com/goodnatureofminers/blockstream-importer/internal/blockstream/model"
)

type fileCreate struct{}

func (fileCreate) TransactionType() model.TransactionType {
	return model.TransactionTypeFileCreate
}

func (fileCreate) Augment(record *model.TransactionRecord, in Input) error {
	if out := in.Item.Outputs.EntityCreate; out != nil {
		record.Receipt.FileID = entityRef(out.EntityID)
	}
	return nil
}

type scheduleCreate struct{}

func (scheduleCreate) TransactionType() model.TransactionType {
	return model.TransactionTypeScheduleCreate
}

func (scheduleCreate) Augment(record *model.TransactionRecord, in Input) error {
	out := in.Item.Outputs.Schedule
	if out == nil {
		return nil
	}
	record.Receipt.ScheduleID = entityRef(out.ScheduleID)
	scheduled := out.ScheduledTransactionID
	record.Receipt.ScheduledTransactionID = &scheduled
	return nil
}

type utilPrng struct{}

func (utilPrng) TransactionType() model.TransactionType {
	return model.TransactionTypeUtilPrng
}

// Augment sets either the random bytes or the bounded random number.
func (utilPrng) Augment(record *model.TransactionRecord, in Input) error {
	out := in.Item.Outputs.Prng
	if out == nil {
		return nil
	}
	if out.Number != nil {
		n := *out.Number
		record.PrngNumber = &n
		return nil
	}
	record.PrngBytes = out.Bytes
	return nil
}
