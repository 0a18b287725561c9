package model

// Fingerprint is the (index, hash) projection of the last accepted block.
type Fingerprint struct {
	Index int64
	Hash  string
}

// PreGenesis is the fingerprint used before any block has been accepted.
var PreGenesis = Fingerprint{Index: -1, Hash: ""}

// IsPreGenesis reports whether no block has been accepted yet.
func (f Fingerprint) IsPreGenesis() bool {
	return f.Index < 0
}

// Next returns the index of the block expected after this fingerprint.
func (f Fingerprint) Next() int64 {
	return f.Index + 1
}

const (
	// DigestAlgorithm names the hash function over a block body.
	DigestAlgorithm = "SHA-384"
	// BlockStreamVersion is the record file version assigned to block stream sourced records.
	BlockStreamVersion int32 = 7
)
