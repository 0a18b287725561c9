package verifier

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockstream-importer/internal/blockstream/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Transformer interface {
		Transform(block *model.Block) (*model.RecordFile, error)
	}
	Sink interface {
		OnVerified(ctx context.Context, record *model.RecordFile) error
	}
	Repository interface {
		LatestRecordFile(ctx context.Context) (model.Fingerprint, bool, error)
	}
	Metrics interface {
		ObserveVerify(result string, started time.Time)
	}
)
