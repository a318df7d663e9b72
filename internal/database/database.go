// Package database manages the PostgreSQL connection pool and schema migrations.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/augurk/augurk/internal/lifecycle"
	pkgdb "github.com/augurk/augurk/pkg/database"
)

// System provides access to the database connection and manages its lifecycle.
type System interface {
	DB() *sql.DB
	Start(lc *lifecycle.Coordinator) error
}

type system struct {
	db     *sql.DB
	logger *slog.Logger
}

// New opens and verifies a database connection pool from the configuration.
func New(cfg *pkgdb.Config, logger *slog.Logger) (System, error) {
	db, err := sql.Open("pgx", cfg.Dsn())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetimeDuration())

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnTimeoutDuration())
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &system{
		db:     db,
		logger: logger.With("system", "database"),
	}, nil
}

func (s *system) DB() *sql.DB {
	return s.db
}

// Start applies pending migrations and registers connection cleanup on shutdown.
func (s *system) Start(lc *lifecycle.Coordinator) error {
	if err := s.migrate(); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		if err := s.db.Close(); err != nil {
			s.logger.Error("database close error", "error", err)
		} else {
			s.logger.Info("database connection closed")
		}
	})

	return nil
}
