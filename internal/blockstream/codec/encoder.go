package codec

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/blockberries/cramberry/pkg/cramberry"
	"github.com/klauspost/compress/gzip"

	"github.com/goodnatureofminers/blockstream-importer/internal/blockstream/model"
)

// Hash returns the hex encoded digest a Decoder would compute for block.
func Hash(block *model.Block) (string, error) {
	body, err := buildWireBody(block)
	if err != nil {
		return "", err
	}
	sum, err := bodyHash(body)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(sum), nil
}

// Encode serializes block into the gzip compressed file format.
// The Hash, Name and Bytes fields of block are ignored.
func Encode(block *model.Block, signature []byte) ([]byte, error) {
	body, err := buildWireBody(block)
	if err != nil {
		return nil, err
	}

	raw, err := cramberry.Marshal(wireBlockFile{
		Header: body.Header,
		Items:  body.Items,
		Proof:  wireProof{Signature: signature},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal block file: %w", err)
	}

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(raw); err != nil {
		return nil, fmt.Errorf("write gzip: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close gzip: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodeRaw serializes block without compression.
func EncodeRaw(block *model.Block) ([]byte, error) {
	body, err := buildWireBody(block)
	if err != nil {
		return nil, err
	}
	raw, err := cramberry.Marshal(wireBlockFile{Header: body.Header, Items: body.Items})
	if err != nil {
		return nil, fmt.Errorf("marshal block file: %w", err)
	}
	return raw, nil
}
