package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockstream-importer/internal/blockstream/model"
)

// LatestRecordFile returns the fingerprint of the highest stored record file.
func (r *Repository) LatestRecordFile(ctx context.Context) (fp model.Fingerprint, found bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("latest_record_file", err, start)
	}()

	const query = `
SELECT index, hash
FROM record_file FINAL
ORDER BY index DESC
LIMIT 1`

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return model.Fingerprint{}, false, fmt.Errorf("query latest record file: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return model.Fingerprint{}, false, fmt.Errorf("iterate latest record file: %w", err)
		}
		return model.Fingerprint{}, false, nil
	}

	if err = rows.Scan(&fp.Index, &fp.Hash); err != nil {
		return model.Fingerprint{}, false, fmt.Errorf("scan latest record file: %w", err)
	}
	if err = rows.Err(); err != nil {
		return model.Fingerprint{}, false, fmt.Errorf("iterate latest record file: %w", err)
	}
	return fp, true, nil
}
