package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE
//go:generate mockgen -destination=pgx_mocks_test.go -package=$GOPACKAGE github.com/jackc/pgx/v5 Row,BatchResults

type (
	DB interface {
		QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
		SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
		Close()
	}
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
