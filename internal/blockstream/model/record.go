package model

// RecordFile is the canonical, legacy shaped representation of an accepted Block.
type RecordFile struct {
	Index                int64
	Hash                 string
	PreviousHash         string
	Name                 string
	Bytes                []byte
	NodeID               int64
	ConsensusStart       int64
	ConsensusEnd         int64
	Count                int64
	Size                 int
	DigestAlgorithm      string
	Version              int32
	HapiVersionMajor     int32
	HapiVersionMinor     int32
	HapiVersionPatch     int32
	SoftwareVersionMajor int32
	SoftwareVersionMinor int32
	SoftwareVersionPatch int32
	Items                []*RecordItem
}

// RecordItem is the reconstructed result of one BlockItem.
type RecordItem struct {
	Index       int
	Transaction Transaction
	Record      TransactionRecord
	// Previous points at the preceding item of the same RecordFile. It does not own it.
	Previous *RecordItem
}

// Type returns the transaction kind of the item.
func (i *RecordItem) Type() TransactionType {
	return i.Transaction.Type
}

// TransactionRecord is the legacy per transaction result record.
type TransactionRecord struct {
	ConsensusTimestamp         int64
	ParentConsensusTimestamp   int64
	TransactionID              TransactionID
	Memo                       string
	TransactionFee             uint64
	Transfers                  []AccountAmount
	TokenTransfers             []TokenTransferList
	AutomaticTokenAssociations []TokenAssociation
	Receipt                    TransactionReceipt
	ContractResult             *ContractFunctionResult
	EthereumHash               []byte
	EVMAddress                 []byte
	PrngBytes                  []byte
	PrngNumber                 *int32
}

// TransactionReceipt is the legacy receipt.
type TransactionReceipt struct {
	Status                  string
	AccountID               *EntityID
	ContractID              *EntityID
	FileID                  *EntityID
	TopicID                 *EntityID
	TokenID                 *EntityID
	ScheduleID              *EntityID
	ScheduledTransactionID  *TransactionID
	SerialNumbers           []int64
	NewTotalSupply          uint64
	TopicSequenceNumber     uint64
	TopicRunningHash        []byte
	TopicRunningHashVersion uint64
}

// ContractFunctionResult is the legacy contract call/create result.
type ContractFunctionResult struct {
	ContractID         EntityID
	Result             []byte
	ErrorMessage       string
	Bloom              []byte
	GasUsed            uint64
	Logs               []ContractLogInfo
	CreatedContractIDs []EntityID
	EVMAddress         []byte
}

// ContractLogInfo is a contract log with its own bloom filter.
type ContractLogInfo struct {
	ContractID EntityID
	Bloom      []byte
	Data       []byte
	Topics     [][]byte
}

// RecordItemRow is the flattened storage row of a RecordItem.
type RecordItemRow struct {
	ConsensusTimestamp       int64
	RecordFileIndex          int64
	Index                    int32
	Type                     int32
	PayerAccountID           string
	ValidStart               int64
	Nonce                    int32
	Scheduled                bool
	Result                   string
	TransactionFee           uint64
	Memo                     string
	EntityID                 string
	ParentConsensusTimestamp int64
}
