package model

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// BlockFileExtension is appended to the zero padded block index.
	BlockFileExtension = ".blk.gz"

	uncompressedBlockFileExtension = ".blk"
	blockFilenameDigits            = 36
)

// BlockFilename returns the canonical filename of the block with the given index.
func BlockFilename(index int64) string {
	return fmt.Sprintf("%0*d%s", blockFilenameDigits, index, BlockFileExtension)
}

// ParseBlockIndex extracts the block index encoded in a block filename.
// Both zero padded and plain decimal names are accepted, compressed or not.
func ParseBlockIndex(filename string) (int64, error) {
	base := filename
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		base = base[i+1:]
	}

	switch {
	case strings.HasSuffix(base, BlockFileExtension):
		base = strings.TrimSuffix(base, BlockFileExtension)
	case strings.HasSuffix(base, uncompressedBlockFileExtension):
		base = strings.TrimSuffix(base, uncompressedBlockFileExtension)
	default:
		return 0, fmt.Errorf("block filename %q: unknown extension", filename)
	}

	if base == "" {
		return 0, fmt.Errorf("block filename %q: missing index", filename)
	}
	for _, c := range base {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("block filename %q: index is not decimal", filename)
		}
	}

	index, err := strconv.ParseInt(base, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("block filename %q: %w", filename, err)
	}
	return index, nil
}
