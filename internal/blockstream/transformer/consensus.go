package transformer

import (
	"fmt"

	"github.com/goodnatureofminers/blockstream-importer/internal/blockstream/model"
)

type consensusCreateTopic struct{}

func (consensusCreateTopic) TransactionType() model.TransactionType {
	return model.TransactionTypeConsensusCreateTopic
}

func (consensusCreateTopic) Augment(record *model.TransactionRecord, in Input) error {
	if out := in.Item.Outputs.EntityCreate; out != nil {
		record.Receipt.TopicID = entityRef(out.EntityID)
	}
	return nil
}

type consensusSubmitMessage struct{}

func (consensusSubmitMessage) TransactionType() model.TransactionType {
	return model.TransactionTypeConsensusSubmitMessage
}

// Augment derives an omitted sequence number from the previous message of the
// same topic. Without one it stays zero and ErrUnresolvable is returned.
func (consensusSubmitMessage) Augment(record *model.TransactionRecord, in Input) error {
	out := in.Item.Outputs.SubmitMessage
	if out == nil || !succeeded(in) {
		return nil
	}
	record.Receipt.TopicRunningHash = out.RunningHash
	record.Receipt.TopicRunningHashVersion = out.RunningHashVersion

	if out.SequenceNumber != nil {
		record.Receipt.TopicSequenceNumber = *out.SequenceNumber
		return nil
	}

	topic := in.Item.Transaction.Entity
	if topic == nil {
		return fmt.Errorf("topic sequence number at %d: missing topic id: %w",
			in.Item.Result.ConsensusTimestamp, ErrUnresolvable)
	}
	prev := findPrevious(in.Previous, func(item *model.RecordItem) bool {
		return item.Type() == model.TransactionTypeConsensusSubmitMessage &&
			item.Transaction.Entity != nil && *item.Transaction.Entity == *topic &&
			item.Record.Receipt.TopicSequenceNumber > 0
	})
	if prev == nil {
		return fmt.Errorf("topic %s sequence number at %d: %w",
			topic, in.Item.Result.ConsensusTimestamp, ErrUnresolvable)
	}
	record.Receipt.TopicSequenceNumber = prev.Record.Receipt.TopicSequenceNumber + 1
	return nil
}
