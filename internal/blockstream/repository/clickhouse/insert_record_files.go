package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockstream-importer/internal/blockstream/model"
)

// InsertRecordFiles stores record file rows in ClickHouse.
func (r *Repository) InsertRecordFiles(ctx context.Context, files []model.RecordFile) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_record_files", err, start)
	}()

	if len(files) == 0 {
		return nil
	}

	const query = `
INSERT INTO record_file (
	index,
	hash,
	previous_hash,
	name,
	bytes,
	node_id,
	consensus_start,
	consensus_end,
	count,
	size,
	digest_algorithm,
	version,
	hapi_version_major,
	hapi_version_minor,
	hapi_version_patch,
	software_version_major,
	software_version_minor,
	software_version_patch
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare record files batch: %w", err)
	}
	defer func() {
		if err != nil {
			_ = batch.Abort()
		}
	}()

	for _, f := range files {
		if err = batch.Append(
			f.Index,
			f.Hash,
			f.PreviousHash,
			f.Name,
			string(f.Bytes),
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
		); err != nil {
			return fmt.Errorf("append record file: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert record files: %w", err)
	}
	return nil
}
