package codec

import (
	"encoding/hex"
	"fmt"

	"github.com/goodnatureofminers/blockstream-importer/internal/blockstream/model"
	"github.com/goodnatureofminers/blockstream-importer/pkg/safe"
)

// buildBlock maps a decoded wire file onto a model.Block.
func buildBlock(src wireBlockFile, hash []byte) (*model.Block, error) {
	index, err := safe.Int64(src.Header.Number)
	if err != nil {
		return nil, fmt.Errorf("block number %d overflow: %w", src.Header.Number, err)
	}

	items := make([]model.BlockItem, 0, len(src.Items))
	for i, item := range src.Items {
		if item.Result.ConsensusTimestamp <= 0 {
			return nil, fmt.Errorf("block %d item %d: missing consensus timestamp", index, i)
		}
		items = append(items, model.BlockItem{
			Transaction: toTransaction(item.Transaction),
			Result:      toResult(item.Result),
			Outputs:     toOutputs(item.Outputs),
		})
	}

	return &model.Block{
		Index:           index,
		Hash:            hex.EncodeToString(hash),
		PreviousHash:    hex.EncodeToString(src.Header.PreviousHash),
		ConsensusStart:  src.Header.FirstConsensusTime,
		ConsensusEnd:    src.Header.LastConsensusTime,
		HapiVersion:     src.Header.HapiVersion,
		SoftwareVersion: src.Header.SoftwareVersion,
		Items:           items,
	}, nil
}

func toEntityID(src wireEntityID) model.EntityID {
	return model.EntityID{Shard: src.Shard, Realm: src.Realm, Num: src.Num}
}

func toTransactionID(src wireTransactionID) model.TransactionID {
	return model.TransactionID{
		Payer:      toEntityID(src.Payer),
		ValidStart: src.ValidStart,
		Nonce:      src.Nonce,
		Scheduled:  src.Scheduled,
	}
}

func toTransaction(src wireTransaction) model.Transaction {
	tx := model.Transaction{
		Type:          model.TransactionType(src.Type),
		TransactionID: toTransactionID(src.TransactionID),
		Memo:          src.Memo,
		MaxFee:        src.MaxFee,
		Amount:        src.Amount,
		EthereumData:  src.EthereumData,
		SignedBytes:   src.SignedBytes,
	}
	if src.Entity != nil {
		entity := toEntityID(*src.Entity)
		tx.Entity = &entity
	}
	return tx
}

func toAccountAmounts(src []wireAccountAmount) []model.AccountAmount {
	if len(src) == 0 {
		return nil
	}
	out := make([]model.AccountAmount, 0, len(src))
	for _, aa := range src {
		out = append(out, model.AccountAmount{
			AccountID:  toEntityID(aa.AccountID),
			Amount:     aa.Amount,
			IsApproval: aa.IsApproval,
		})
	}
	return out
}

func toResult(src wireResult) model.TransactionResult {
	res := model.TransactionResult{
		Status:                   src.Status,
		ConsensusTimestamp:       src.ConsensusTimestamp,
		ParentConsensusTimestamp: src.ParentConsensusTimestamp,
		TransactionFee:           src.TransactionFee,
		Transfers:                toAccountAmounts(src.Transfers),
	}
	for _, ttl := range src.TokenTransfers {
		list := model.TokenTransferList{
			TokenID:   toEntityID(ttl.TokenID),
			Transfers: toAccountAmounts(ttl.Transfers),
			Decimals:  ttl.Decimals,
		}
		for _, nft := range ttl.NftTransfers {
			list.NftTransfers = append(list.NftTransfers, model.NftTransfer{
				Sender:       toEntityID(nft.Sender),
				Receiver:     toEntityID(nft.Receiver),
				SerialNumber: nft.SerialNumber,
				IsApproval:   nft.IsApproval,
			})
		}
		res.TokenTransfers = append(res.TokenTransfers, list)
	}
	for _, assoc := range src.AutomaticTokenAssociations {
		res.AutomaticTokenAssociations = append(res.AutomaticTokenAssociations, model.TokenAssociation{
			TokenID:   toEntityID(assoc.TokenID),
			AccountID: toEntityID(assoc.AccountID),
		})
	}
	return res
}

func toOutputs(src wireOutputs) model.TransactionOutputs {
	var out model.TransactionOutputs
	if src.AccountCreate != nil {
		out.AccountCreate = &model.AccountCreateOutput{
			AccountID:  toEntityID(src.AccountCreate.AccountID),
			EVMAddress: src.AccountCreate.EVMAddress,
		}
	}
	if src.EntityCreate != nil {
		out.EntityCreate = &model.EntityCreateOutput{EntityID: toEntityID(src.EntityCreate.EntityID)}
	}
	if src.SubmitMessage != nil {
		msg := &model.SubmitMessageOutput{
			RunningHash:        src.SubmitMessage.RunningHash,
			RunningHashVersion: src.SubmitMessage.RunningHashVersion,
		}
		if src.SubmitMessage.HasSequenceNumber {
			seq := src.SubmitMessage.SequenceNumber
			msg.SequenceNumber = &seq
		}
		out.SubmitMessage = msg
	}
	if src.TokenSupply != nil {
		supply := &model.TokenSupplyOutput{SerialNumbers: src.TokenSupply.SerialNumbers}
		if src.TokenSupply.HasNewTotalSupply {
			total := src.TokenSupply.NewTotalSupply
			supply.NewTotalSupply = &total
		}
		out.TokenSupply = supply
	}
	if src.ContractCall != nil {
		call := &model.ContractCallOutput{
			ContractID:   toEntityID(src.ContractCall.ContractID),
			Result:       src.ContractCall.Result,
			ErrorMessage: src.ContractCall.ErrorMessage,
			GasUsed:      src.ContractCall.GasUsed,
			EVMAddress:   src.ContractCall.EVMAddress,
		}
		for _, log := range src.ContractCall.Logs {
			call.Logs = append(call.Logs, model.ContractLog{
				ContractID: toEntityID(log.ContractID),
				Data:       log.Data,
				Topics:     log.Topics,
			})
		}
		for _, id := range src.ContractCall.CreatedContractIDs {
			call.CreatedContractIDs = append(call.CreatedContractIDs, toEntityID(id))
		}
		out.ContractCall = call
	}
	if src.Schedule != nil {
		out.Schedule = &model.ScheduleOutput{
			ScheduleID:             toEntityID(src.Schedule.ScheduleID),
			ScheduledTransactionID: toTransactionID(src.Schedule.ScheduledTransactionID),
		}
	}
	if src.Prng != nil {
		prng := &model.PrngOutput{Bytes: src.Prng.Bytes}
		if src.Prng.HasNumber {
			n := src.Prng.Number
			prng.Number = &n
		}
		out.Prng = prng
	}
	return out
}

// buildWireBody maps a model.Block back onto its hashed wire body.
func buildWireBody(block *model.Block) (wireBlockBody, error) {
	number, err := safe.Uint64(block.Index)
	if err != nil {
		return wireBlockBody{}, fmt.Errorf("block index %d: %w", block.Index, err)
	}
	previousHash, err := hex.DecodeString(block.PreviousHash)
	if err != nil {
		return wireBlockBody{}, fmt.Errorf("block %d previous hash: %w", block.Index, err)
	}

	items := make([]wireItem, 0, len(block.Items))
	for _, item := range block.Items {
		items = append(items, wireItem{
			Transaction: fromTransaction(item.Transaction),
			Result:      fromResult(item.Result),
			Outputs:     fromOutputs(item.Outputs),
		})
	}

	return wireBlockBody{
		Header: wireHeader{
			Number:             number,
			PreviousHash:       previousHash,
			HapiVersion:        block.HapiVersion,
			SoftwareVersion:    block.SoftwareVersion,
			FirstConsensusTime: block.ConsensusStart,
			LastConsensusTime:  block.ConsensusEnd,
		},
		Items: items,
	}, nil
}

func fromEntityID(src model.EntityID) wireEntityID {
	return wireEntityID{Shard: src.Shard, Realm: src.Realm, Num: src.Num}
}

func fromTransactionID(src model.TransactionID) wireTransactionID {
	return wireTransactionID{
		Payer:      fromEntityID(src.Payer),
		ValidStart: src.ValidStart,
		Nonce:      src.Nonce,
		Scheduled:  src.Scheduled,
	}
}

func fromTransaction(src model.Transaction) wireTransaction {
	tx := wireTransaction{
		Type:          int32(src.Type),
		TransactionID: fromTransactionID(src.TransactionID),
		Memo:          src.Memo,
		MaxFee:        src.MaxFee,
		Amount:        src.Amount,
		EthereumData:  src.EthereumData,
		SignedBytes:   src.SignedBytes,
	}
	if src.Entity != nil {
		entity := fromEntityID(*src.Entity)
		tx.Entity = &entity
	}
	return tx
}

func fromAccountAmounts(src []model.AccountAmount) []wireAccountAmount {
	if len(src) == 0 {
		return nil
	}
	out := make([]wireAccountAmount, 0, len(src))
	for _, aa := range src {
		out = append(out, wireAccountAmount{
			AccountID:  fromEntityID(aa.AccountID),
			Amount:     aa.Amount,
			IsApproval: aa.IsApproval,
		})
	}
	return out
}

func fromResult(src model.TransactionResult) wireResult {
	res := wireResult{
		Status:                   src.Status,
		ConsensusTimestamp:       src.ConsensusTimestamp,
		ParentConsensusTimestamp: src.ParentConsensusTimestamp,
		TransactionFee:           src.TransactionFee,
		Transfers:                fromAccountAmounts(src.Transfers),
	}
	for _, ttl := range src.TokenTransfers {
		list := wireTokenTransferList{
			TokenID:   fromEntityID(ttl.TokenID),
			Transfers: fromAccountAmounts(ttl.Transfers),
			Decimals:  ttl.Decimals,
		}
		for _, nft := range ttl.NftTransfers {
			list.NftTransfers = append(list.NftTransfers, wireNftTransfer{
				Sender:       fromEntityID(nft.Sender),
				Receiver:     fromEntityID(nft.Receiver),
				SerialNumber: nft.SerialNumber,
				IsApproval:   nft.IsApproval,
			})
		}
		res.TokenTransfers = append(res.TokenTransfers, list)
	}
	for _, assoc := range src.AutomaticTokenAssociations {
		res.AutomaticTokenAssociations = append(res.AutomaticTokenAssociations, wireTokenAssociation{
			TokenID:   fromEntityID(assoc.TokenID),
			AccountID: fromEntityID(assoc.AccountID),
		})
	}
	return res
}

func fromOutputs(src model.TransactionOutputs) wireOutputs {
	var out wireOutputs
	if src.AccountCreate != nil {
		out.AccountCreate = &wireAccountCreate{
			AccountID:  fromEntityID(src.AccountCreate.AccountID),
			EVMAddress: src.AccountCreate.EVMAddress,
		}
	}
	if src.EntityCreate != nil {
		out.EntityCreate = &wireEntityCreate{EntityID: fromEntityID(src.EntityCreate.EntityID)}
	}
	if src.SubmitMessage != nil {
		msg := &wireSubmitMessage{
			RunningHash:        src.SubmitMessage.RunningHash,
			RunningHashVersion: src.SubmitMessage.RunningHashVersion,
		}
		if src.SubmitMessage.SequenceNumber != nil {
			msg.HasSequenceNumber = true
			msg.SequenceNumber = *src.SubmitMessage.SequenceNumber
		}
		out.SubmitMessage = msg
	}
	if src.TokenSupply != nil {
		supply := &wireTokenSupply{SerialNumbers: src.TokenSupply.SerialNumbers}
		if src.TokenSupply.NewTotalSupply != nil {
			supply.HasNewTotalSupply = true
			supply.NewTotalSupply = *src.TokenSupply.NewTotalSupply
		}
		out.TokenSupply = supply
	}
	if src.ContractCall != nil {
		call := &wireContractCall{
			ContractID:   fromEntityID(src.ContractCall.ContractID),
			Result:       src.ContractCall.Result,
			ErrorMessage: src.ContractCall.ErrorMessage,
			GasUsed:      src.ContractCall.GasUsed,
			EVMAddress:   src.ContractCall.EVMAddress,
		}
		for _, log := range src.ContractCall.Logs {
			call.Logs = append(call.Logs, wireContractLog{
				ContractID: fromEntityID(log.ContractID),
				Data:       log.Data,
				Topics:     log.Topics,
			})
		}
		for _, id := range src.ContractCall.CreatedContractIDs {
			call.CreatedContractIDs = append(call.CreatedContractIDs, fromEntityID(id))
		}
		out.ContractCall = call
	}
	if src.Schedule != nil {
		out.Schedule = &wireSchedule{
			ScheduleID:             fromEntityID(src.Schedule.ScheduleID),
			ScheduledTransactionID: fromTransactionID(src.Schedule.ScheduledTransactionID),
		}
	}
	if src.Prng != nil {
		prng := &wirePrng{Bytes: src.Prng.Bytes}
		if src.Prng.Number != nil {
			prng.HasNumber = true
			prng.Number = *src.Prng.Number
		}
		out.Prng = prng
	}
	return out
}
