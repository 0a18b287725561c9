package sink

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockstream-importer/internal/blockstream/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		InsertRecordFiles(ctx context.Context, files []model.RecordFile) error
		InsertRecordItems(ctx context.Context, items []model.RecordItemRow) error
	}
	Metrics interface {
		ObserveFlush(err error, files, items int, started time.Time)
	}
)
