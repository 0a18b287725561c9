package main

import (
	"errors"
	"fmt"
	"time"
)

const (
	storageClickhouse = "clickhouse"
	storagePostgres   = "postgres"
)

type config struct {
	Disabled     bool          `long:"disabled" env:"BLOCKSTREAM_IMPORTER_DISABLED" description:"keep serving status but skip polling"`
	PersistBytes bool          `long:"persist-bytes" env:"BLOCKSTREAM_IMPORTER_PERSIST_BYTES" description:"store raw block files with their records"`
	WriteFiles   bool          `long:"write-files" env:"BLOCKSTREAM_IMPORTER_WRITE_FILES" description:"archive raw block files to disk"`
	ArchiveDir   string        `long:"archive-dir" env:"BLOCKSTREAM_IMPORTER_ARCHIVE_DIR" description:"archive directory" default:"./data/blocks"`
	Timeout      time.Duration `long:"timeout" env:"BLOCKSTREAM_IMPORTER_TIMEOUT" description:"deadline of one poll tick" default:"5s"`
	Frequency    time.Duration `long:"frequency" env:"BLOCKSTREAM_IMPORTER_FREQUENCY" description:"interval between poll ticks" default:"100ms"`
	HTTPTimeout  time.Duration `long:"http-timeout" env:"BLOCKSTREAM_IMPORTER_HTTP_TIMEOUT" description:"timeout of one block file download" default:"3s"`
	MaxFileSize  int64         `long:"max-file-size" env:"BLOCKSTREAM_IMPORTER_MAX_FILE_SIZE" description:"largest accepted block file in bytes" default:"67108864"`
	Nodes        []string      `long:"node" env:"BLOCKSTREAM_IMPORTER_NODES" env-delim:"," description:"peer node as ID=URL, repeatable"`

	Storage       string `long:"storage" env:"BLOCKSTREAM_IMPORTER_STORAGE" description:"record storage backend" choice:"clickhouse" choice:"postgres" default:"clickhouse"`
	ClickhouseDSN string `long:"clickhouse-dsn" env:"BLOCKSTREAM_IMPORTER_CLICKHOUSE_DSN" description:"ClickHouse DSN"`
	PostgresDSN   string `long:"postgres-dsn" env:"BLOCKSTREAM_IMPORTER_POSTGRES_DSN" description:"PostgreSQL DSN"`

	FlushSize     int           `long:"flush-size" env:"BLOCKSTREAM_IMPORTER_FLUSH_SIZE" description:"records per storage batch" default:"100"`
	FlushInterval time.Duration `long:"flush-interval" env:"BLOCKSTREAM_IMPORTER_FLUSH_INTERVAL" description:"longest wait before a partial batch is stored" default:"1s"`

	MetricsAddr string `long:"metrics-addr" env:"BLOCKSTREAM_IMPORTER_METRICS_ADDR" description:"address for metrics server" default:":2112"`
	GRPCAddr    string `long:"grpc-addr" env:"BLOCKSTREAM_IMPORTER_GRPC_ADDR" description:"address for gRPC health server" default:":8000"`
	RestAddr    string `long:"rest-addr" env:"BLOCKSTREAM_IMPORTER_REST_ADDR" description:"address for REST status server" default:":8001"`
	LogJSON     bool   `long:"log-json" env:"BLOCKSTREAM_IMPORTER_LOG_JSON" description:"production JSON logging"`
}

func (c config) validate() error {
	var errs []error
	if len(c.Nodes) == 0 {
		errs = append(errs, errors.New("at least one --node is required"))
	}
	if c.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive, got %s", c.Timeout))
	}
	if c.Frequency <= 0 {
		errs = append(errs, fmt.Errorf("frequency must be positive, got %s", c.Frequency))
	}
	if c.WriteFiles && c.ArchiveDir == "" {
		errs = append(errs, errors.New("archive dir is required when writing files"))
	}
	switch c.Storage {
	case storageClickhouse:
		if c.ClickhouseDSN == "" {
			errs = append(errs, errors.New("ClickHouse DSN is required"))
		}
	case storagePostgres:
		if c.PostgresDSN == "" {
			errs = append(errs, errors.New("PostgreSQL DSN is required"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown storage %q", c.Storage))
	}
	return errors.Join(errs...)
}
