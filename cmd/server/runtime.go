package main

import (
	"fmt"
	"log/slog"

	"github.com/augurk/augurk/internal/config"
	"github.com/augurk/augurk/internal/database"
	"github.com/augurk/augurk/internal/lifecycle"
	"github.com/augurk/augurk/pkg/logging"
	"github.com/augurk/augurk/pkg/pagination"
)

// Runtime holds the shared infrastructure every module depends on.
type Runtime struct {
	Lifecycle  *lifecycle.Coordinator
	Logger     *slog.Logger
	Database   database.System
	Pagination pagination.Config
}

// NewRuntime creates the shared infrastructure from configuration.
func NewRuntime(cfg *config.Config) (*Runtime, error) {
	lc := lifecycle.New()
	logger := logging.New(&cfg.Logging)

	dbSys, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	return &Runtime{
		Lifecycle:  lc,
		Logger:     logger,
		Database:   dbSys,
		Pagination: cfg.Pagination,
	}, nil
}

// Start brings up the infrastructure subsystems.
func (r *Runtime) Start() error {
	if err := r.Database.Start(r.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	return nil
}
