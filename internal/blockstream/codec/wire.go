package codec

// Wire layout of a block stream file. Field numbers are part of the file
// format and the hash input, never renumber them.

type wireBlockFile struct {
	Header wireHeader `cramberry:"1"`
	Items  []wireItem `cramberry:"2"`
	Proof  wireProof  `cramberry:"3"`
}

// wireBlockBody is the hashed portion of a block file.
type wireBlockBody struct {
	Header wireHeader `cramberry:"1"`
	Items  []wireItem `cramberry:"2"`
}

type wireHeader struct {
	Number             uint64 `cramberry:"1"`
	PreviousHash       []byte `cramberry:"2"`
	HapiVersion        string `cramberry:"3"`
	SoftwareVersion    string `cramberry:"4"`
	FirstConsensusTime int64  `cramberry:"5"`
	LastConsensusTime  int64  `cramberry:"6"`
}

type wireProof struct {
	Signature []byte `cramberry:"1"`
}

type wireEntityID struct {
	Shard int64 `cramberry:"1"`
	Realm int64 `cramberry:"2"`
	Num   int64 `cramberry:"3"`
}

type wireTransactionID struct {
	Payer      wireEntityID `cramberry:"1"`
	ValidStart int64        `cramberry:"2"`
	Nonce      int32        `cramberry:"3"`
	Scheduled  bool         `cramberry:"4"`
}

type wireItem struct {
	Transaction wireTransaction `cramberry:"1"`
	Result      wireResult      `cramberry:"2"`
	Outputs     wireOutputs     `cramberry:"3"`
}

type wireTransaction struct {
	Type          int32             `cramberry:"1"`
	TransactionID wireTransactionID `cramberry:"2"`
	Memo          string            `cramberry:"3"`
	MaxFee        uint64            `cramberry:"4"`
	Entity        *wireEntityID     `cramberry:"5"`
	Amount        uint64            `cramberry:"6"`
	EthereumData  []byte            `cramberry:"7"`
	SignedBytes   []byte            `cramberry:"8"`
}

type wireAccountAmount struct {
	AccountID  wireEntityID `cramberry:"1"`
	Amount     int64        `cramberry:"2"`
	IsApproval bool         `cramberry:"3"`
}

type wireNftTransfer struct {
	Sender       wireEntityID `cramberry:"1"`
	Receiver     wireEntityID `cramberry:"2"`
	SerialNumber int64        `cramberry:"3"`
	IsApproval   bool         `cramberry:"4"`
}

type wireTokenTransferList struct {
	TokenID      wireEntityID        `cramberry:"1"`
	Transfers    []wireAccountAmount `cramberry:"2"`
	NftTransfers []wireNftTransfer   `cramberry:"3"`
	Decimals     uint32              `cramberry:"4"`
}

type wireTokenAssociation struct {
	TokenID   wireEntityID `cramberry:"1"`
	AccountID wireEntityID `cramberry:"2"`
}

type wireResult struct {
	Status                     string                  `cramberry:"1"`
	ConsensusTimestamp         int64                   `cramberry:"2"`
	ParentConsensusTimestamp   int64                   `cramberry:"3"`
	TransactionFee             uint64                  `cramberry:"4"`
	Transfers                  []wireAccountAmount     `cramberry:"5"`
	TokenTransfers             []wireTokenTransferList `cramberry:"6"`
	AutomaticTokenAssociations []wireTokenAssociation  `cramberry:"7"`
}

type wireOutputs struct {
	AccountCreate *wireAccountCreate `cramberry:"1"`
	EntityCreate  *wireEntityCreate  `cramberry:"2"`
	SubmitMessage *wireSubmitMessage `cramberry:"3"`
	TokenSupply   *wireTokenSupply   `cramberry:"4"`
	ContractCall  *wireContractCall  `cramberry:"5"`
	Schedule      *wireSchedule      `cramberry:"6"`
	Prng          *wirePrng          `cramberry:"7"`
}

type wireAccountCreate struct {
	AccountID  wireEntityID `cramberry:"1"`
	EVMAddress []byte       `cramberry:"2"`
}

type wireEntityCreate struct {
	EntityID wireEntityID `cramberry:"1"`
}

type wireSubmitMessage struct {
	HasSequenceNumber  bool   `cramberry:"1"`
	SequenceNumber     uint64 `cramberry:"2"`
	RunningHash        []byte `cramberry:"3"`
	RunningHashVersion uint64 `cramberry:"4"`
}

type wireTokenSupply struct {
	SerialNumbers     []int64 `cramberry:"1"`
	HasNewTotalSupply bool    `cramberry:"2"`
	NewTotalSupply    uint64  `cramberry:"3"`
}

type wireContractLog struct {
	ContractID wireEntityID `cramberry:"1"`
	Data       []byte       `cramberry:"2"`
	Topics     [][]byte     `cramberry:"3"`
}

type wireContractCall struct {
	ContractID         wireEntityID      `cramberry:"1"`
	Result             []byte            `cramberry:"2"`
	ErrorMessage       string            `cramberry:"3"`
	GasUsed            uint64            `cramberry:"4"`
	Logs               []wireContractLog `cramberry:"5"`
	CreatedContractIDs []wireEntityID    `cramberry:"6"`
	EVMAddress         []byte            `cramberry:"7"`
}

type wireSchedule struct {
	ScheduleID             wireEntityID      `cramberry:"1"`
	ScheduledTransactionID wireTransactionID `cramberry:"2"`
}

type wirePrng struct {
	Bytes     []byte `cramberry:"1"`
	HasNumber bool   `cramberry:"2"`
	Number    int32  `cramberry:"3"`
}
