package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/goodnatureofminers/blockstream-importer/internal/blockstream/codec"
	"github.com/goodnatureofminers/blockstream-importer/internal/blockstream/poller"
	"github.com/goodnatureofminers/blockstream-importer/internal/blockstream/repository/clickhouse"
	"github.com/goodnatureofminers/blockstream-importer/internal/blockstream/repository/postgres"
	"github.com/goodnatureofminers/blockstream-importer/internal/blockstream/service"
	"github.com/goodnatureofminers/blockstream-importer/internal/blockstream/sink"
	"github.com/goodnatureofminers/blockstream-importer/internal/blockstream/source"
	"github.com/goodnatureofminers/blockstream-importer/internal/blockstream/transformer"
	"github.com/goodnatureofminers/blockstream-importer/internal/blockstream/verifier"
	"github.com/goodnatureofminers/blockstream-importer/internal/metrics"
	"github.com/goodnatureofminers/blockstream-importer/internal/transport"
)

const healthService = "blockstream.importer"

// recordStore is what both storage backends provide.
type recordStore interface {
	verifier.Repository
	sink.Repository
	Close() error
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, "failed to parse flags:", err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg.LogJSON)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := cfg.validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("block stream importer failed", zap.Error(err))
	}
}

func newLogger(json bool) (*zap.Logger, error) {
	if json {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	store, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("close repository", zap.Error(err))
		}
	}()

	registry, err := transformer.NewDefaultRegistry()
	if err != nil {
		return fmt.Errorf("init registry: %w", err)
	}
	tr, err := transformer.New(logger, registry, metrics.NewTransformer())
	if err != nil {
		return fmt.Errorf("init transformer: %w", err)
	}

	writer, err := sink.NewRecordWriter(logger, store, metrics.NewRecordWriter(), sink.Config{
		FlushSize:     cfg.FlushSize,
		FlushInterval: cfg.FlushInterval,
	})
	if err != nil {
		return fmt.Errorf("init record writer: %w", err)
	}
	writer.Start(ctx)
	defer writer.Stop()

	v, err := verifier.New(logger, tr, writer, store, metrics.NewVerifier())
	if err != nil {
		return fmt.Errorf("init verifier: %w", err)
	}

	nodes, err := source.ParseNodes(cfg.Nodes)
	if err != nil {
		return fmt.Errorf("parse nodes: %w", err)
	}
	directory, err := source.NewStaticDirectory(nodes)
	if err != nil {
		return fmt.Errorf("init node directory: %w", err)
	}
	client := &http.Client{Timeout: cfg.HTTPTimeout}
	blocks := source.NewObservedSource(source.NewHTTPSource(client, cfg.MaxFileSize), metrics.NewBlockSource())

	var archiver poller.Archiver
	if cfg.WriteFiles {
		disk, err := poller.NewDiskArchiver(cfg.ArchiveDir)
		if err != nil {
			return fmt.Errorf("init archiver: %w", err)
		}
		archiver = disk
	}

	p, err := poller.New(logger, poller.Config{
		Enabled:      !cfg.Disabled,
		PersistBytes: cfg.PersistBytes,
		WriteFiles:   cfg.WriteFiles,
		ArchiveDir:   cfg.ArchiveDir,
		Timeout:      cfg.Timeout,
	}, directory, blocks, codec.NewDecoder(cfg.MaxFileSize), v, archiver, metrics.NewPoller())
	if err != nil {
		return fmt.Errorf("init poller: %w", err)
	}

	svc, err := service.NewImporterService(logger, p, cfg.Frequency)
	if err != nil {
		return fmt.Errorf("init importer: %w", err)
	}

	healthServer := health.NewServer()
	status, err := transport.NewStatusHandler(logger, v, healthServer, healthService)
	if err != nil {
		return fmt.Errorf("init status handler: %w", err)
	}
	if err := startStatusServers(ctx, cfg, logger, healthServer, status); err != nil {
		return err
	}

	logger.Info("starting block stream importer",
		zap.Int("nodes", len(nodes)),
		zap.String("storage", cfg.Storage),
		zap.Bool("enabled", !cfg.Disabled),
	)
	healthServer.SetServingStatus(healthService, grpc_health_v1.HealthCheckResponse_SERVING)
	err = svc.Run(ctx)
	healthServer.SetServingStatus(healthService, grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func openStore(ctx context.Context, cfg config) (recordStore, error) {
	switch cfg.Storage {
	case storageClickhouse:
		return clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewRepository(storageClickhouse))
	case storagePostgres:
		return postgres.NewRepository(ctx, cfg.PostgresDSN, metrics.NewRepository(storagePostgres))
	default:
		return nil, fmt.Errorf("unknown storage %q", cfg.Storage)
	}
}
