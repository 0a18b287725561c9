package verifier

import (
	"errors"
	"fmt"
)

var (
	// ErrSequence marks a candidate that is not the block right after the last accepted one.
	ErrSequence = errors.New("block out of sequence")
	// ErrContentMismatch marks a candidate whose filename disagrees with its content.
	ErrContentMismatch = errors.New("block content does not match filename")
	// ErrHashMismatch marks a candidate that does not extend the hash chain.
	ErrHashMismatch = errors.New("block hash chain broken")
	// ErrRaceLost marks a candidate that verified but another one was accepted first.
	ErrRaceLost = errors.New("lost fingerprint race")
)

// SequenceError reports the expected and the offered block index.
type SequenceError struct {
	Expected int64
	Actual   int64
}

func (e *SequenceError) Error() string {
	return fmt.Sprintf("%v: expected index %d, got %d", ErrSequence, e.Expected, e.Actual)
}

func (e *SequenceError) Is(target error) bool {
	return target == ErrSequence
}

// ContentMismatchError reports a filename that does not parse or encodes another index.
type ContentMismatchError struct {
	Filename string
	Index    int64
	Err      error
}

func (e *ContentMismatchError) Error() string {
	msg := fmt.Sprintf("%v: filename %q, block index %d", ErrContentMismatch, e.Filename, e.Index)
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *ContentMismatchError) Unwrap() error {
	return e.Err
}

func (e *ContentMismatchError) Is(target error) bool {
	return target == ErrContentMismatch
}

// HashMismatchError reports the expected and the offered previous hash.
type HashMismatchError struct {
	Expected string
	Actual   string
}

func (e *HashMismatchError) Error() string {
	return fmt.Sprintf("%v: expected previous hash %q, got %q", ErrHashMismatch, e.Expected, e.Actual)
}

func (e *HashMismatchError) Is(target error) bool {
	return target == ErrHashMismatch
}

// result maps a verification outcome onto a metrics label.
func result(err error) string {
	switch {
	case err == nil:
		return "accepted"
	case errors.Is(err, ErrSequence):
		return "sequence"
	case errors.Is(err, ErrContentMismatch):
		return "content_mismatch"
	case errors.Is(err, ErrHashMismatch):
		return "hash_mismatch"
	case errors.Is(err, ErrRaceLost):
		return "race_lost"
	default:
		return "error"
	}
}
