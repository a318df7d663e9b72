// Command seed populates the database with sample feature documents,
// including pre-release versions that the expiration policy will mark.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/augurk/augurk/internal/config"
	"github.com/augurk/augurk/internal/database"
	"github.com/augurk/augurk/internal/features"
	"github.com/augurk/augurk/internal/lifecycle"
	"github.com/augurk/augurk/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	if err := cfg.Finalize(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.New(&cfg.Logging)

	lc := lifecycle.New()
	dbSys, err := database.New(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	if err := dbSys.Start(lc); err != nil {
		logger.Error("failed to start database", "error", err)
		os.Exit(1)
	}

	sys := features.New(dbSys.DB(), logger, cfg.Pagination)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	created := 0
	for _, cmd := range sampleFeatures() {
		if _, err := sys.Create(ctx, cmd); err != nil {
			if errors.Is(err, features.ErrDuplicate) {
				logger.Info("sample already present", "title", cmd.Title)
				continue
			}
			logger.Error("failed to seed feature", "title", cmd.Title, "error", err)
			os.Exit(1)
		}
		created++
	}

	logger.Info("seeding complete", "created", created)

	if err := lc.Shutdown(10 * time.Second); err != nil {
		logger.Error("shutdown error", "error", err)
		os.Exit(1)
	}
}
