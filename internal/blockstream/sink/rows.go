package sink

import "github.com/goodnatureofminers/blockstream-importer/internal/blockstream/model"

// itemRow flattens one item of the record file with the given index.
func itemRow(fileIndex int64, item *model.RecordItem) model.RecordItemRow {
	tx := item.Transaction
	rec := item.Record
	return model.RecordItemRow{
		ConsensusTimestamp:       rec.ConsensusTimestamp,
		RecordFileIndex:          fileIndex,
		Index:                    int32(item.Index),
		Type:                     int32(tx.Type),
		PayerAccountID:           rec.TransactionID.Payer.String(),
		ValidStart:               rec.TransactionID.ValidStart,
		Nonce:                    rec.TransactionID.Nonce,
		Scheduled:                rec.TransactionID.Scheduled,
		Result:                   rec.Receipt.Status,
		TransactionFee:           rec.TransactionFee,
		Memo:                     rec.Memo,
		EntityID:                 entityOf(tx, rec.Receipt),
		ParentConsensusTimestamp: rec.ParentConsensusTimestamp,
	}
}

// entityOf picks the entity created or targeted by a transaction, receipt first.
func entityOf(tx model.Transaction, receipt model.TransactionReceipt) string {
	for _, id := range []*model.EntityID{
		receipt.AccountID,
		receipt.ContractID,
		receipt.FileID,
		receipt.TopicID,
		receipt.TokenID,
		receipt.ScheduleID,
		tx.Entity,
	} {
		if id != nil {
			return id.String()
		}
	}
	return ""
}
