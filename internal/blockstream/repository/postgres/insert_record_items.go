package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/goodnatureofminers/blockstream-importer/internal/blockstream/model"
	"github.com/goodnatureofminers/blockstream-importer/pkg/safe"
)

const insertRecordItemQuery = `
INSERT INTO record_item (
	consensus_timestamp, record_file_index, index, type, payer_account_id, valid_start, nonce,
	scheduled, result, transaction_fee, memo, entity_id, parent_consensus_timestamp
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
ON CONFLICT (consensus_timestamp, index) DO NOTHING`

// InsertRecordItems stores flattened record item rows, skipping rows already stored.
func (r *Repository) InsertRecordItems(ctx context.Context, items []model.RecordItemRow) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_record_items", err, start)
	}()

	if len(items) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, it := range items {
		fee, convErr := safe.Int64(it.TransactionFee)
		if convErr != nil {
			err = fmt.Errorf("record item %d fee: %w", it.ConsensusTimestamp, convErr)
			return err
		}
		batch.Queue(insertRecordItemQuery,
			it.ConsensusTimestamp,
			it.RecordFileIndex,
			it.Index,
			it.Type,
			it.PayerAccountID,
			it.ValidStart,
			it.Nonce,
			it.Scheduled,
			it.Result,
			fee,
			it.Memo,
			it.EntityID,
			it.ParentConsensusTimestamp,
		)
	}

	if err = r.sendBatch(ctx, batch); err != nil {
		return fmt.Errorf("insert record items: %w", err)
	}
	return nil
}
