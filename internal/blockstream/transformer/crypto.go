package transformer

import (
	"github.com/goodnatureofminers/blockstream-importer/internal/blockstream/model"
)

type cryptoCreateAccount struct{}

func (cryptoCreateAccount) TransactionType() model.TransactionType {
	return model.TransactionTypeCryptoCreateAccount
}

func (cryptoCreateAccount) Augment(record *model.TransactionRecord, in Input) error {
	out := in.Item.Outputs.AccountCreate
	if out == nil {
		return nil
	}
	record.Receipt.AccountID = entityRef(out.AccountID)
	if len(out.EVMAddress) > 0 {
		record.EVMAddress = out.EVMAddress
	}
	return nil
}

type cryptoTransfer struct{}

func (cryptoTransfer) TransactionType() model.TransactionType {
	return model.TransactionTypeCryptoTransfer
}

func (cryptoTransfer) Augment(record *model.TransactionRecord, in Input) error {
	record.TokenTransfers = in.Item.Result.TokenTransfers
	return nil
}
