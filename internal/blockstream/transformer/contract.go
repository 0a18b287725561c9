package transformer

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/goodnatureofminers/blockstream-importer/internal/blockstream/model"
)

type contractCall struct {
	kind model.TransactionType
}

func (c contractCall) TransactionType() model.TransactionType {
	return c.kind
}

func (c contractCall) Augment(record *model.TransactionRecord, in Input) error {
	applyContractResult(record, in, c.kind == model.TransactionTypeContractCreateInstance)
	return nil
}

type ethereumTransaction struct{}

func (ethereumTransaction) TransactionType() model.TransactionType {
	return model.TransactionTypeEthereumTransaction
}

func (ethereumTransaction) Augment(record *model.TransactionRecord, in Input) error {
	applyContractResult(record, in, false)
	if data := in.Item.Transaction.EthereumData; len(data) > 0 {
		record.EthereumHash = crypto.Keccak256(data)
	}
	return nil
}

func applyContractResult(record *model.TransactionRecord, in Input, create bool) {
	record.TokenTransfers = in.Item.Result.TokenTransfers

	out := in.Item.Outputs.ContractCall
	if out == nil {
		return
	}

	result := &model.ContractFunctionResult{
		ContractID:         out.ContractID,
		Result:             out.Result,
		ErrorMessage:       out.ErrorMessage,
		GasUsed:            out.GasUsed,
		CreatedContractIDs: out.CreatedContractIDs,
		EVMAddress:         out.EVMAddress,
	}

	var bloom types.Bloom
	for _, log := range out.Logs {
		logBloom := LogBloom(log)
		for i := range bloom {
			bloom[i] |= logBloom[i]
		}
		result.Logs = append(result.Logs, model.ContractLogInfo{
			ContractID: log.ContractID,
			Bloom:      logBloom.Bytes(),
			Data:       log.Data,
			Topics:     log.Topics,
		})
	}
	if len(out.Logs) > 0 {
		result.Bloom = bloom.Bytes()
	}

	record.ContractResult = result
	if !out.ContractID.IsZero() {
		record.Receipt.ContractID = entityRef(out.ContractID)
	}
	if create && len(out.EVMAddress) > 0 {
		record.EVMAddress = out.EVMAddress
	}
}

// LogBloom builds the 2048 bit bloom of one contract log over its emitter
// address and topics.
func LogBloom(log model.ContractLog) types.Bloom {
	var bloom types.Bloom
	bloom.Add(EVMAddress(log.ContractID).Bytes())
	for _, topic := range log.Topics {
		bloom.Add(topic)
	}
	return bloom
}

// EVMAddress returns the long zero address of an entity: 4 bytes shard,
// 8 bytes realm, 8 bytes num, big endian.
func EVMAddress(id model.EntityID) common.Address {
	var buf [common.AddressLength]byte
	binary.BigEndian.PutUint32(buf[0:4], uint32(id.Shard))
	binary.BigEndian.PutUint64(buf[4:12], uint64(id.Realm))
	binary.BigEndian.PutUint64(buf[12:20], uint64(id.Num))
	return common.BytesToAddress(buf[:])
}
