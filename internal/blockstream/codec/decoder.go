// Package codec reads and writes block stream files.
package codec

import (
	"bytes"
	"crypto/sha512"
	"errors"
	"fmt"
	"io"

	"github.com/blockberries/cramberry/pkg/cramberry"
	"github.com/klauspost/compress/gzip"

	"github.com/goodnatureofminers/blockstream-importer/internal/blockstream/model"
)

// DefaultMaxSize bounds the decompressed size of a single block file.
const DefaultMaxSize = 64 << 20

var (
	// ErrEmpty is returned for a zero length payload.
	ErrEmpty = errors.New("empty block file")
	// ErrTooLarge is returned when a decompressed payload exceeds the configured limit.
	ErrTooLarge = errors.New("block file too large")
)

var gzipMagic = []byte{0x1f, 0x8b}

// Decoder parses raw block stream files. It is safe for concurrent use.
type Decoder struct {
	maxSize int64
}

// NewDecoder creates a Decoder. A non-positive maxSize selects DefaultMaxSize.
func NewDecoder(maxSize int64) *Decoder {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &Decoder{maxSize: maxSize}
}

// Decode turns file bytes, gzip compressed or not, into a Block.
// Name, Bytes and NodeID are left for the caller to fill in.
func (d *Decoder) Decode(data []byte) (*model.Block, error) {
	if len(data) == 0 {
		return nil, ErrEmpty
	}

	raw, err := d.unwrap(data)
	if err != nil {
		return nil, err
	}

	var file wireBlockFile
	if err := cramberry.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("unmarshal block file: %w", err)
	}

	hash, err := bodyHash(wireBlockBody{Header: file.Header, Items: file.Items})
	if err != nil {
		return nil, err
	}

	block, err := buildBlock(file, hash)
	if err != nil {
		return nil, fmt.Errorf("convert block file: %w", err)
	}
	block.Size = len(data)
	return block, nil
}

func (d *Decoder) unwrap(data []byte) ([]byte, error) {
	if !bytes.HasPrefix(data, gzipMagic) {
		if int64(len(data)) > d.maxSize {
			return nil, ErrTooLarge
		}
		return data, nil
	}

	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open gzip: %w", err)
	}
	defer zr.Close()

	raw, err := io.ReadAll(io.LimitReader(zr, d.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("read gzip: %w", err)
	}
	if int64(len(raw)) > d.maxSize {
		return nil, ErrTooLarge
	}
	return raw, nil
}

func bodyHash(body wireBlockBody) ([]byte, error) {
	encoded, err := cramberry.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal block body: %w", err)
	}
	sum := sha512.Sum384(encoded)
	return sum[:], nil
}
