package expiration

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sync/atomic"

	"github.com/sourcegraph/conc/pool"
)

// Manager applies the expiration policy to every stored document.
type Manager struct {
	store  Store
	logger *slog.Logger
}

// Report summarizes a policy application pass.
type Report struct {
	// Scanned is the total number of documents enumerated.
	Scanned int `json:"scanned"`
	// Skipped counts documents without a version, which the policy never touches.
	Skipped int `json:"skipped"`
	// Stamped counts documents whose upload-date marker was written.
	Stamped int `json:"stamped"`
	// Expiring counts documents whose expires marker was written.
	Expiring int `json:"expiring"`
	// Cleared counts markers removed from non-matching or non-expiring documents.
	Cleared int `json:"cleared"`
}

// NewManager creates an expiration manager over the given store.
func NewManager(store Store, logger *slog.Logger) *Manager {
	return &Manager{
		store:  store,
		logger: logger.With("system", "expiration"),
	}
}

// Apply runs one policy pass over all documents:
//
//  1. Documents without a version are left untouched.
//  2. Documents whose version does not match the configured pattern lose
//     their upload-date and expires markers.
//  3. Documents whose version matches are stamped with upload-date equal to
//     their last modification time; when expiration is enabled they also
//     receive an expires marker of last-modified plus the configured days,
//     otherwise any existing expires marker is removed.
//
// Store failures propagate and cancel the remaining work.
func (m *Manager) Apply(ctx context.Context, cfg Config) (Report, error) {
	re, err := regexp.Compile(cfg.Regex)
	if err != nil {
		return Report{}, fmt.Errorf("compile version pattern: %w", err)
	}

	records, err := m.store.Records(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("enumerate documents: %w", err)
	}

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	var skipped, stamped, expiring, cleared atomic.Int64

	p := pool.New().
		WithContext(ctx).
		WithMaxGoroutines(workers).
		WithCancelOnError().
		WithFirstError()

	for _, rec := range records {
		p.Go(func(ctx context.Context) error {
			switch {
			case rec.Version == nil:
				skipped.Add(1)
				return nil

			case !re.MatchString(*rec.Version):
				n, err := m.removeMarkers(ctx, rec, KeyUploadDate, KeyExpires)
				if err != nil {
					return err
				}
				cleared.Add(n)
				return nil

			default:
				uploadDate := FormatTime(rec.LastModified)
				if err := m.store.SetMetadata(ctx, rec.ID, KeyUploadDate, uploadDate); err != nil {
					return fmt.Errorf("set %s on %s: %w", KeyUploadDate, rec.ID, err)
				}
				stamped.Add(1)

				if !cfg.Enabled {
					n, err := m.removeMarkers(ctx, rec, KeyExpires)
					if err != nil {
						return err
					}
					cleared.Add(n)
					return nil
				}

				expires := FormatTime(rec.LastModified.AddDate(0, 0, cfg.Days))
				if err := m.store.SetMetadata(ctx, rec.ID, KeyExpires, expires); err != nil {
					return fmt.Errorf("set %s on %s: %w", KeyExpires, rec.ID, err)
				}
				expiring.Add(1)
				return nil
			}
		})
	}

	report := Report{Scanned: len(records)}
	err = p.Wait()

	report.Skipped = int(skipped.Load())
	report.Stamped = int(stamped.Load())
	report.Expiring = int(expiring.Load())
	report.Cleared = int(cleared.Load())

	if err != nil {
		return report, err
	}

	m.logger.Info(
		"policy applied",
		"scanned", report.Scanned,
		"skipped", report.Skipped,
		"stamped", report.Stamped,
		"expiring", report.Expiring,
		"cleared", report.Cleared,
	)
	return report, nil
}

// removeMarkers deletes the given metadata keys when present and returns how
// many were removed.
func (m *Manager) removeMarkers(ctx context.Context, rec Record, keys ...string) (int64, error) {
	var removed int64
	for _, key := range keys {
		if _, ok := rec.Metadata[key]; !ok {
			continue
		}
		if err := m.store.RemoveMetadata(ctx, rec.ID, key); err != nil {
			return removed, fmt.Errorf("remove %s from %s: %w", key, rec.ID, err)
		}
		removed++
	}
	return removed, nil
}
