package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockstream-importer/internal/blockstream/model"
)

// InsertRecordItems stores flattened record item rows in ClickHouse.
func (r *Repository) InsertRecordItems(ctx context.Context, items []model.RecordItemRow) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_record_items", err, start)
	}()

	if len(items) == 0 {
		return nil
	}

	const query = `
INSERT INTO record_item (
	consensus_timestamp,
	record_file_index,
	index,
	type,
	payer_account_id,
	valid_start,
	nonce,
	scheduled,
	result,
	transaction_fee,
	memo,
	entity_id,
	parent_consensus_timestamp
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare record items batch: %w", err)
	}
	defer func() {
		if err != nil {
			_ = batch.Abort()
		}
	}()

	for _, it := range items {
		if err = batch.Append(
			it.ConsensusTimestamp,
			it.RecordFileIndex,
			it.Index,
			it.Type,
			it.PayerAccountID,
			it.ValidStart,
			it.Nonce,
			it.Scheduled,
			it.Result,
			it.TransactionFee,
			it.Memo,
			it.EntityID,
			it.ParentConsensusTimestamp,
		); err != nil {
			return fmt.Errorf("append record item: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert record items: %w", err)
	}
	return nil
}
