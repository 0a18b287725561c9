package poller

import (
	"errors"
	"fmt"
)

// ErrNoWinner is returned when no node produced a verified block within the tick.
var ErrNoWinner = errors.New("no node served a valid block")

// Pipeline stages of a single node attempt.
const (
	StageFetch  = "fetch"
	StageDecode = "decode"
	StageVerify = "verify"
)

// StageError is the failure of one node at one pipeline stage.
type StageError struct {
	NodeID int64
	Stage  string
	Err    error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("node %d %s: %v", e.NodeID, e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
