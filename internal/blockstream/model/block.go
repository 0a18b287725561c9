// Package model defines domain models for block stream ingestion.
package model

// Block is one decoded block stream file as served by a peer node.
type Block struct {
	Index           int64
	Hash            string
	PreviousHash    string
	Name            string
	Bytes           []byte
	NodeID          int64
	ConsensusStart  int64
	ConsensusEnd    int64
	Size            int
	HapiVersion     string
	SoftwareVersion string
	Items           []BlockItem
}

// BlockItem is one transaction together with its execution outcome.
type BlockItem struct {
	Transaction Transaction
	Result      TransactionResult
	Outputs     TransactionOutputs
}

// TransactionID identifies a submitted transaction.
type TransactionID struct {
	Payer      EntityID
	ValidStart int64
	Nonce      int32
	Scheduled  bool
}

// Transaction is the submitted transaction payload.
type Transaction struct {
	Type          TransactionType
	TransactionID TransactionID
	Memo          string
	MaxFee        uint64
	// Entity is the primary target of the transaction (topic, token, contract, ...) when it has one.
	Entity *EntityID
	// Amount is the fungible amount for token supply operations.
	Amount       uint64
	EthereumData []byte
	SignedBytes  []byte
}

// AccountAmount is a single hbar or fungible token balance adjustment.
type AccountAmount struct {
	AccountID  EntityID
	Amount     int64
	IsApproval bool
}

// NftTransfer moves a single serial number between accounts.
type NftTransfer struct {
	Sender       EntityID
	Receiver     EntityID
	SerialNumber int64
	IsApproval   bool
}

// TokenTransferList groups the transfers of one token.
type TokenTransferList struct {
	TokenID      EntityID
	Transfers    []AccountAmount
	NftTransfers []NftTransfer
	Decimals     uint32
}

// TokenAssociation records an automatic account to token association.
type TokenAssociation struct {
	TokenID   EntityID
	AccountID EntityID
}

// TransactionResult is the common execution outcome for every transaction kind.
type TransactionResult struct {
	Status                     string
	ConsensusTimestamp         int64
	ParentConsensusTimestamp   int64
	TransactionFee             uint64
	Transfers                  []AccountAmount
	TokenTransfers             []TokenTransferList
	AutomaticTokenAssociations []TokenAssociation
}

// TransactionOutputs carries the kind-specific side effects of a transaction.
// At most one field is expected to be set.
type TransactionOutputs struct {
	AccountCreate *AccountCreateOutput
	EntityCreate  *EntityCreateOutput
	SubmitMessage *SubmitMessageOutput
	TokenSupply   *TokenSupplyOutput
	ContractCall  *ContractCallOutput
	Schedule      *ScheduleOutput
	Prng          *PrngOutput
}

// AccountCreateOutput is produced by account creation.
type AccountCreateOutput struct {
	AccountID  EntityID
	EVMAddress []byte
}

// EntityCreateOutput is produced by transactions creating a single entity (topic, file, token).
type EntityCreateOutput struct {
	EntityID EntityID
}

// SubmitMessageOutput is produced by topic message submission.
type SubmitMessageOutput struct {
	SequenceNumber     *uint64
	RunningHash        []byte
	RunningHashVersion uint64
}

// TokenSupplyOutput is produced by mint, burn and wipe.
type TokenSupplyOutput struct {
	SerialNumbers  []int64
	NewTotalSupply *uint64
}

// ContractLog is an EVM log emitted during contract execution.
type ContractLog struct {
	ContractID EntityID
	Data       []byte
	Topics     [][]byte
}

// ContractCallOutput is produced by contract calls, creates and ethereum transactions.
type ContractCallOutput struct {
	ContractID         EntityID
	Result             []byte
	ErrorMessage       string
	GasUsed            uint64
	Logs               []ContractLog
	CreatedContractIDs []EntityID
	EVMAddress         []byte
}

// ScheduleOutput is produced by schedule creation.
type ScheduleOutput struct {
	ScheduleID             EntityID
	ScheduledTransactionID TransactionID
}

// PrngOutput is produced by the pseudo random number generator.
type PrngOutput struct {
	Bytes  []byte
	Number *int32
}
