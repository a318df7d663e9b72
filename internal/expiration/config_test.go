package expiration_test

import (
	"testing"

	"github.com/augurk/augurk/internal/expiration"
)

func TestConfig_Finalize_Defaults(t *testing.T) {
	var cfg expiration.Config
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	if cfg.Enabled {
		t.Error("Enabled = true, want false by default")
	}
	if cfg.Days != 30 {
		t.Errorf("Days = %d, want 30", cfg.Days)
	}
	if cfg.Regex == "" {
		t.Error("Regex is empty, want default pattern")
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Workers)
	}
	if cfg.Schedule != "" {
		t.Errorf("Schedule = %q, want empty", cfg.Schedule)
	}
}

func TestConfig_Finalize_EnvOverrides(t *testing.T) {
	t.Setenv(expiration.EnvExpirationEnabled, "true")
	t.Setenv(expiration.EnvExpirationDays, "7")
	t.Setenv(expiration.EnvExpirationRegex, `-rc\.\d+`)
	t.Setenv(expiration.EnvExpirationSchedule, "0 3 * * *")
	t.Setenv(expiration.EnvExpirationWorkers, "8")

	var cfg expiration.Config
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	if !cfg.Enabled {
		t.Error("Enabled = false, want true")
	}
	if cfg.Days != 7 {
		t.Errorf("Days = %d, want 7", cfg.Days)
	}
	if cfg.Regex != `-rc\.\d+` {
		t.Errorf("Regex = %q, want %q", cfg.Regex, `-rc\.\d+`)
	}
	if cfg.Schedule != "0 3 * * *" {
		t.Errorf("Schedule = %q, want %q", cfg.Schedule, "0 3 * * *")
	}
	if cfg.Workers != 8 {
		t.Errorf("Workers = %d, want 8", cfg.Workers)
	}
}

func TestConfig_Finalize_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  expiration.Config
	}{
		{"negative days", expiration.Config{Days: -1}},
		{"invalid regex", expiration.Config{Regex: `[`}},
		{"invalid schedule", expiration.Config{Schedule: "every day at noon"}},
		{"negative workers", expiration.Config{Workers: -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Finalize(); err == nil {
				t.Error("Finalize() succeeded, want error")
			}
		})
	}
}

func TestConfig_Merge(t *testing.T) {
	base := expiration.Config{Enabled: true, Days: 30, Regex: `-\w+`, Schedule: "0 3 * * *", Workers: 4}
	overlay := expiration.Config{Enabled: false, Days: 7, Schedule: "0 6 * * *"}

	base.Merge(&overlay)

	if base.Enabled {
		t.Error("Enabled = true, want overlay value false")
	}
	if base.Days != 7 {
		t.Errorf("Days = %d, want 7", base.Days)
	}
	if base.Regex != `-\w+` {
		t.Errorf("Regex = %q, want base value preserved", base.Regex)
	}
	if base.Schedule != "0 6 * * *" {
		t.Errorf("Schedule = %q, want %q", base.Schedule, "0 6 * * *")
	}
	if base.Workers != 4 {
		t.Errorf("Workers = %d, want base value preserved", base.Workers)
	}
}
