package expiration_test

import (
	"context"
	"errors"
	"log/slog"
	"maps"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/augurk/augurk/internal/expiration"
)

// fakeStore is an in-memory Store implementation for exercising the manager
// without a database.
type fakeStore struct {
	mu      sync.Mutex
	records map[uuid.UUID]*expiration.Record

	setErr    error
	removeErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: make(map[uuid.UUID]*expiration.Record)}
}

func (s *fakeStore) add(version *string, lastModified time.Time, meta map[string]string) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New()
	if meta == nil {
		meta = make(map[string]string)
	}
	s.records[id] = &expiration.Record{
		ID:           id,
		Version:      version,
		LastModified: lastModified,
		Metadata:     meta,
	}
	return id
}

func (s *fakeStore) metadata(id uuid.UUID) map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return nil
	}
	return maps.Clone(rec.Metadata)
}

func (s *fakeStore) Records(ctx context.Context) ([]expiration.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]expiration.Record, 0, len(s.records))
	for _, rec := range s.records {
		clone := *rec
		clone.Metadata = maps.Clone(rec.Metadata)
		records = append(records, clone)
	}
	return records, nil
}

func (s *fakeStore) SetMetadata(ctx context.Context, id uuid.UUID, key, value string) error {
	if s.setErr != nil {
		return s.setErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return errors.New("record not found")
	}
	rec.Metadata[key] = value
	return nil
}

func (s *fakeStore) RemoveMetadata(ctx context.Context, id uuid.UUID, key string) error {
	if s.removeErr != nil {
		return s.removeErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return errors.New("record not found")
	}
	delete(rec.Metadata, key)
	return nil
}

func (s *fakeStore) DeleteExpired(ctx context.Context, cutoff time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	limit := expiration.FormatTime(cutoff)
	deleted := 0
	for id, rec := range s.records {
		if expires, ok := rec.Metadata[expiration.KeyExpires]; ok && expires <= limit {
			delete(s.records, id)
			deleted++
		}
	}
	return deleted, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func strptr(s string) *string {
	return &s
}

var lastModified = time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

func TestManager_Apply(t *testing.T) {
	tests := []struct {
		name     string
		version  *string
		meta     map[string]string
		cfg      expiration.Config
		wantMeta map[string]string
	}{
		{
			"matching version stamps upload date and expires",
			strptr("1.0.0"),
			nil,
			expiration.Config{Enabled: true, Days: 1, Regex: `\d`, Workers: 1},
			map[string]string{
				expiration.KeyUploadDate: expiration.FormatTime(lastModified),
				expiration.KeyExpires:    expiration.FormatTime(lastModified.AddDate(0, 0, 1)),
			},
		},
		{
			"expires offset honors configured days",
			strptr("2.1.0-beta.3"),
			nil,
			expiration.Config{Enabled: true, Days: 30, Regex: `-\w+`, Workers: 1},
			map[string]string{
				expiration.KeyUploadDate: expiration.FormatTime(lastModified),
				expiration.KeyExpires:    expiration.FormatTime(lastModified.AddDate(0, 0, 30)),
			},
		},
		{
			"non-matching version loses both markers",
			strptr("1.0.0"),
			map[string]string{
				expiration.KeyUploadDate: expiration.FormatTime(lastModified),
				expiration.KeyExpires:    expiration.FormatTime(lastModified.AddDate(0, 0, 7)),
			},
			expiration.Config{Enabled: true, Days: 7, Regex: `-\w+`, Workers: 1},
			map[string]string{},
		},
		{
			"disabled expiration still stamps upload date",
			strptr("1.0.0"),
			nil,
			expiration.Config{Enabled: false, Days: 7, Regex: `\d`, Workers: 1},
			map[string]string{
				expiration.KeyUploadDate: expiration.FormatTime(lastModified),
			},
		},
		{
			"disabled expiration removes pre-existing expires",
			strptr("1.0.0"),
			map[string]string{
				expiration.KeyExpires: expiration.FormatTime(lastModified.AddDate(0, 0, 7)),
			},
			expiration.Config{Enabled: false, Days: 7, Regex: `\d`, Workers: 1},
			map[string]string{
				expiration.KeyUploadDate: expiration.FormatTime(lastModified),
			},
		},
		{
			"unversioned document is never touched",
			nil,
			map[string]string{
				expiration.KeyExpires: "2026-01-01T00:00:00Z",
			},
			expiration.Config{Enabled: true, Days: 1, Regex: `\d`, Workers: 1},
			map[string]string{
				expiration.KeyExpires: "2026-01-01T00:00:00Z",
			},
		},
		{
			"matching is an unanchored search",
			strptr("1.4.0-rc.1"),
			nil,
			expiration.Config{Enabled: true, Days: 2, Regex: `rc`, Workers: 1},
			map[string]string{
				expiration.KeyUploadDate: expiration.FormatTime(lastModified),
				expiration.KeyExpires:    expiration.FormatTime(lastModified.AddDate(0, 0, 2)),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			id := store.add(tt.version, lastModified, tt.meta)

			manager := expiration.NewManager(store, testLogger())
			if _, err := manager.Apply(context.Background(), tt.cfg); err != nil {
				t.Fatalf("Apply() failed: %v", err)
			}

			if diff := cmp.Diff(tt.wantMeta, store.metadata(id)); diff != "" {
				t.Errorf("metadata mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestManager_Apply_UploadDateTracksLastModified(t *testing.T) {
	store := newFakeStore()
	id := store.add(strptr("3.0.0"), lastModified, map[string]string{
		expiration.KeyUploadDate: "2020-01-01T00:00:00Z",
	})

	manager := expiration.NewManager(store, testLogger())
	cfg := expiration.Config{Enabled: true, Days: 5, Regex: `\d`, Workers: 1}

	if _, err := manager.Apply(context.Background(), cfg); err != nil {
		t.Fatalf("Apply() failed: %v", err)
	}

	got := store.metadata(id)[expiration.KeyUploadDate]
	want := expiration.FormatTime(lastModified)
	if got != want {
		t.Errorf("upload-date = %q, want %q", got, want)
	}
}

func TestManager_Apply_Report(t *testing.T) {
	store := newFakeStore()
	store.add(strptr("1.0.0-beta.1"), lastModified, nil)
	store.add(strptr("1.0.0-beta.2"), lastModified, nil)
	store.add(strptr("1.0.0"), lastModified, map[string]string{
		expiration.KeyUploadDate: expiration.FormatTime(lastModified),
		expiration.KeyExpires:    expiration.FormatTime(lastModified.AddDate(0, 0, 1)),
	})
	store.add(nil, lastModified, nil)

	manager := expiration.NewManager(store, testLogger())
	cfg := expiration.Config{Enabled: true, Days: 14, Regex: `-\w+`, Workers: 2}

	report, err := manager.Apply(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Apply() failed: %v", err)
	}

	want := expiration.Report{
		Scanned:  4,
		Skipped:  1,
		Stamped:  2,
		Expiring: 2,
		Cleared:  2,
	}
	if diff := cmp.Diff(want, report); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestManager_Apply_InvalidRegex(t *testing.T) {
	manager := expiration.NewManager(newFakeStore(), testLogger())
	cfg := expiration.Config{Enabled: true, Days: 1, Regex: `[`, Workers: 1}

	if _, err := manager.Apply(context.Background(), cfg); err == nil {
		t.Fatal("Apply() succeeded with invalid regex, want error")
	}
}

func TestManager_Apply_StoreErrorPropagates(t *testing.T) {
	store := newFakeStore()
	store.add(strptr("1.0.0"), lastModified, nil)
	store.setErr = errors.New("connection reset")

	manager := expiration.NewManager(store, testLogger())
	cfg := expiration.Config{Enabled: true, Days: 1, Regex: `\d`, Workers: 1}

	_, err := manager.Apply(context.Background(), cfg)
	if err == nil {
		t.Fatal("Apply() succeeded, want store error")
	}
	if !errors.Is(err, store.setErr) {
		t.Errorf("Apply() error = %v, want wrapped %v", err, store.setErr)
	}
}
