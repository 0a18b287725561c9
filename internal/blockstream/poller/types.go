package poller

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockstream-importer/internal/blockstream/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	NodeDirectory interface {
		Nodes() []model.Node
	}
	BlockSource interface {
		Fetch(ctx context.Context, node model.Node, filename string) ([]byte, error)
	}
	Decoder interface {
		Decode(data []byte) (*model.Block, error)
	}
	Verifier interface {
		Fingerprint(ctx context.Context) (model.Fingerprint, error)
		Verify(ctx context.Context, candidate *model.Block) (*model.RecordFile, error)
	}
	Archiver interface {
		Archive(filename string, nodeID int64, data []byte) error
	}
	Metrics interface {
		ObserveTick(outcome string, started time.Time)
		ObserveAttempt(nodeID int64, stage string, err error)
		SetLastAccepted(index int64)
		ObserveArchive(err error)
	}
)
