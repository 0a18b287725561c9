// Package service drives the block stream importer.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockstream-importer/internal/clock"
)

// ImporterService runs poll ticks at a fixed frequency. Ticks never overlap.
type ImporterService struct {
	logger    *zap.Logger
	poller    Poller
	frequency time.Duration
	sleep     func(context.Context, time.Duration) error
	now       func() time.Time
}

// NewImporterService builds an ImporterService ticking every frequency.
func NewImporterService(logger *zap.Logger, poller Poller, frequency time.Duration) (*ImporterService, error) {
	if poller == nil {
		return nil, errors.New("poller is required")
	}
	if frequency <= 0 {
		return nil, fmt.Errorf("frequency must be positive, got %s", frequency)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ImporterService{
		logger:    logger.Named("importer"),
		poller:    poller,
		frequency: frequency,
		sleep:     clock.SleepWithContext,
		now:       time.Now,
	}, nil
}

// Run polls until the context is canceled.
func (s *ImporterService) Run(ctx context.Context) error {
	s.logger.Info("importer started", zap.Duration("frequency", s.frequency))
	for {
		if ctx.Err() != nil {
			s.logger.Info("importer stopped")
			return ctx.Err()
		}

		started := s.now()
		if err := s.poller.Poll(ctx); err != nil && ctx.Err() == nil {
			s.logger.Warn("poll tick failed", zap.Error(err))
		}

		if err := s.sleep(ctx, clock.Remaining(started, s.frequency, s.now())); err != nil {
			s.logger.Info("importer stopped")
			return err
		}
	}
}
