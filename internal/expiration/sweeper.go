package expiration

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/augurk/augurk/internal/lifecycle"
)

// SweepResult combines a policy report with the number of purged documents.
type SweepResult struct {
	Report
	// Purged counts documents deleted because their expires marker had passed.
	Purged int `json:"purged"`
}

// Sweeper runs expiration sweeps on a cron schedule. A sweep applies the
// policy and then purges documents whose expires marker is in the past.
type Sweeper struct {
	manager *Manager
	store   Store
	cfg     Config
	clock   Clock
	metrics *Metrics
	logger  *slog.Logger

	mu      sync.Mutex
	cron    *cron.Cron
	running bool
}

// NewSweeper creates a sweeper. A nil clock uses the system clock and a nil
// metrics instance disables metric recording.
func NewSweeper(manager *Manager, store Store, cfg Config, metrics *Metrics, clock Clock, logger *slog.Logger) *Sweeper {
	if clock == nil {
		clock = SystemClock
	}
	return &Sweeper{
		manager: manager,
		store:   store,
		cfg:     cfg,
		clock:   clock,
		metrics: metrics,
		logger:  logger.With("system", "expiration.sweeper"),
		cron:    cron.New(),
	}
}

// Start schedules the sweep and registers a stop on shutdown. An empty
// schedule leaves the sweeper idle; manual sweeps remain available.
func (s *Sweeper) Start(lc *lifecycle.Coordinator) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cfg.Schedule == "" {
		s.logger.Info("sweep schedule not configured, scheduler idle")
		return nil
	}

	if _, err := cron.ParseStandard(s.cfg.Schedule); err != nil {
		return fmt.Errorf("invalid sweep schedule %q: %w", s.cfg.Schedule, err)
	}

	if _, err := s.cron.AddFunc(s.cfg.Schedule, func() {
		s.run(lc.Context())
	}); err != nil {
		return fmt.Errorf("schedule sweep: %w", err)
	}

	s.cron.Start()
	s.running = true

	s.logger.Info(
		"sweeper started",
		"schedule", s.cfg.Schedule,
		"enabled", s.cfg.Enabled,
		"days", s.cfg.Days,
	)

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		s.Stop()
	})

	return nil
}

// Stop halts the schedule and waits for any running sweep to finish.
func (s *Sweeper) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()
	s.running = false
	s.logger.Info("sweeper stopped")
}

// NextRun returns the next scheduled sweep time, or nil when idle.
func (s *Sweeper) NextRun() *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.cron.Entries()
	if len(entries) == 0 {
		return nil
	}

	next := entries[0].Next
	return &next
}

// RunOnce performs a single sweep: apply the policy, then purge documents
// whose expires marker is at or before the current time.
func (s *Sweeper) RunOnce(ctx context.Context) (SweepResult, error) {
	start := s.clock.Now()

	report, err := s.manager.Apply(ctx, s.cfg)
	result := SweepResult{Report: report}
	if err != nil {
		s.record(result, start, err)
		return result, err
	}

	purged, err := s.store.DeleteExpired(ctx, s.clock.Now())
	result.Purged = purged
	if err != nil {
		s.record(result, start, err)
		return result, fmt.Errorf("purge expired documents: %w", err)
	}

	s.record(result, start, nil)
	return result, nil
}

func (s *Sweeper) run(ctx context.Context) {
	result, err := s.RunOnce(ctx)
	if err != nil {
		s.logger.Error("scheduled sweep failed", "error", err)
		return
	}

	if result.Purged > 0 {
		s.logger.Info("scheduled sweep completed", "purged", result.Purged, "scanned", result.Scanned)
	} else {
		s.logger.Debug("scheduled sweep completed, nothing purged", "scanned", result.Scanned)
	}
}

func (s *Sweeper) record(result SweepResult, start time.Time, err error) {
	if s.metrics == nil {
		return
	}
	s.metrics.observe(result, s.clock.Now().Sub(start).Seconds(), err)
}
