package model

import "strconv"

// TransactionType is the kind tag of a transaction.
type TransactionType int32

const (
	TransactionTypeUnknown                TransactionType = -1
	TransactionTypeContractCall           TransactionType = 7
	TransactionTypeContractCreateInstance TransactionType = 8
	TransactionTypeCryptoCreateAccount    TransactionType = 11
	TransactionTypeCryptoTransfer         TransactionType = 14
	TransactionTypeFileCreate             TransactionType = 17
	TransactionTypeConsensusCreateTopic   TransactionType = 24
	TransactionTypeConsensusSubmitMessage TransactionType = 27
	TransactionTypeTokenCreation          TransactionType = 29
	TransactionTypeTokenMint              TransactionType = 37
	TransactionTypeTokenBurn              TransactionType = 38
	TransactionTypeTokenWipe              TransactionType = 39
	TransactionTypeScheduleCreate         TransactionType = 42
	TransactionTypeEthereumTransaction    TransactionType = 50
	TransactionTypeUtilPrng               TransactionType = 51
)

var transactionTypeNames = map[TransactionType]string{
	TransactionTypeUnknown:                "UNKNOWN",
	TransactionTypeContractCall:           "CONTRACTCALL",
	TransactionTypeContractCreateInstance: "CONTRACTCREATEINSTANCE",
	TransactionTypeCryptoCreateAccount:    "CRYPTOCREATEACCOUNT",
	TransactionTypeCryptoTransfer:         "CRYPTOTRANSFER",
	TransactionTypeFileCreate:             "FILECREATE",
	TransactionTypeConsensusCreateTopic:   "CONSENSUSCREATETOPIC",
	TransactionTypeConsensusSubmitMessage: "CONSENSUSSUBMITMESSAGE",
	TransactionTypeTokenCreation:          "TOKENCREATION",
	TransactionTypeTokenMint:              "TOKENMINT",
	TransactionTypeTokenBurn:              "TOKENBURN",
	TransactionTypeTokenWipe:              "TOKENWIPE",
	TransactionTypeScheduleCreate:         "SCHEDULECREATE",
	TransactionTypeEthereumTransaction:    "ETHEREUMTRANSACTION",
	TransactionTypeUtilPrng:               "UTILPRNG",
}

func (t TransactionType) String() string {
	if name, ok := transactionTypeNames[t]; ok {
		return name
	}
	return "TYPE_" + strconv.Itoa(int(t))
}
