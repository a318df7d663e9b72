package expiration_test

import (
	"testing"
	"time"

	"github.com/augurk/augurk/internal/expiration"
)

func TestFormatTime_NormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	local := time.Date(2026, 3, 14, 11, 30, 0, 0, loc)

	got := expiration.FormatTime(local)
	want := "2026-03-14T10:30:00Z"
	if got != want {
		t.Errorf("FormatTime() = %q, want %q", got, want)
	}
}

func TestFormatTime_TruncatesSubsecond(t *testing.T) {
	ts := time.Date(2026, 3, 14, 10, 30, 0, 999999999, time.UTC)

	got := expiration.FormatTime(ts)
	want := "2026-03-14T10:30:00Z"
	if got != want {
		t.Errorf("FormatTime() = %q, want %q", got, want)
	}
}

func TestParseTime_RoundTrip(t *testing.T) {
	ts := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

	parsed, err := expiration.ParseTime(expiration.FormatTime(ts))
	if err != nil {
		t.Fatalf("ParseTime() failed: %v", err)
	}
	if !parsed.Equal(ts) {
		t.Errorf("round trip = %v, want %v", parsed, ts)
	}
}

func TestFormatTime_SortsChronologically(t *testing.T) {
	earlier := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	later := earlier.AddDate(0, 0, 1)

	if expiration.FormatTime(earlier) >= expiration.FormatTime(later) {
		t.Error("formatted timestamps do not sort chronologically")
	}
}
