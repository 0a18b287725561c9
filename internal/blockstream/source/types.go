package source

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockstream-importer/internal/blockstream/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	BlockSource interface {
		Fetch(ctx context.Context, node model.Node, filename string) ([]byte, error)
	}
	Metrics interface {
		ObserveFetch(nodeID int64, err error, size int, started time.Time)
	}
)
