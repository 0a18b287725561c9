package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/goodnatureofminers/blockstream-importer/internal/blockstream/model"
)

const insertRecordFileQuery = `
INSERT INTO record_file (
	index, hash, previous_hash, name, bytes, node_id, consensus_start, consensus_end, count, size,
	digest_algorithm, version, hapi_version_major, hapi_version_minor, hapi_version_patch,
	software_version_major, software_version_minor, software_version_patch
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
ON CONFLICT (index) DO NOTHING`

// InsertRecordFiles stores record file rows, skipping indexes already stored.
func (r *Repository) InsertRecordFiles(ctx context.Context, files []model.RecordFile) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_record_files", err, start)
	}()

	if len(files) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, f := range files {
		batch.Queue(insertRecordFileQuery,
			f.Index,
			f.Hash,
			f.PreviousHash,
			f.Name,
			f.Bytes,
			f.NodeID,
			f.ConsensusStart,
			f.ConsensusEnd,
			f.Count,
			int64(f.Size),
			f.DigestAlgorithm,
			f.Version,
			f.HapiVersionMajor,
			f.HapiVersionMinor,
			f.HapiVersionPatch,
			f.SoftwareVersionMajor,
			f.SoftwareVersionMinor,
			f.SoftwareVersionPatch,
		)
	}

	if err = r.sendBatch(ctx, batch); err != nil {
		return fmt.Errorf("insert record files: %w", err)
	}
	return nil
}
