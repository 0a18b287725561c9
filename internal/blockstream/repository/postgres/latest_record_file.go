package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/goodnatureofminers/blockstream-importer/internal/blockstream/model"
)

const latestRecordFileQuery = `SELECT index, hash FROM record_file ORDER BY index DESC LIMIT 1`

// LatestRecordFile returns the fingerprint of the highest stored record file.
func (r *Repository) LatestRecordFile(ctx context.Context) (fp model.Fingerprint, found bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("latest_record_file", err, start)
	}()

	err = r.db.QueryRow(ctx, latestRecordFileQuery).Scan(&fp.Index, &fp.Hash)
	if errors.Is(err, pgx.ErrNoRows) {
		err = nil
		return model.Fingerprint{}, false, nil
	}
	if err != nil {
		return model.Fingerprint{}, false, fmt.Errorf("query latest record file: %w", err)
	}
	return fp, true, nil
}
