package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/augurk/augurk/internal/config"
)

const baseConfig = `
[server]
port = 9000

[database]
host = "db.internal"
name = "augurk"
user = "augurk"
password = "secret"

[expiration]
enabled = true
days = 14
regex = '-\w+'
`

const overlayConfig = `
[server]
port = 9090

[expiration]
days = 7
`

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, config.BaseConfigFile, baseConfig)
	t.Chdir(dir)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Database.Host != "db.internal" {
		t.Errorf("Database.Host = %q, want db.internal", cfg.Database.Host)
	}
	if !cfg.Expiration.Enabled {
		t.Error("Expiration.Enabled = false, want true")
	}
	if cfg.Expiration.Days != 14 {
		t.Errorf("Expiration.Days = %d, want 14", cfg.Expiration.Days)
	}
}

func TestLoad_WithOverlay(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, config.BaseConfigFile, baseConfig)
	writeConfig(t, dir, "config.staging.toml", overlayConfig)
	t.Chdir(dir)
	t.Setenv(config.EnvServiceEnv, "staging")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want overlay value 9090", cfg.Server.Port)
	}
	if cfg.Expiration.Days != 7 {
		t.Errorf("Expiration.Days = %d, want overlay value 7", cfg.Expiration.Days)
	}

	// Values absent from the overlay come from the base file.
	if cfg.Database.Host != "db.internal" {
		t.Errorf("Database.Host = %q, want db.internal", cfg.Database.Host)
	}
	if cfg.Expiration.Regex != `-\w+` {
		t.Errorf("Expiration.Regex = %q, want base value preserved", cfg.Expiration.Regex)
	}
}

func TestLoad_MissingOverlayIgnored(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, config.BaseConfigFile, baseConfig)
	t.Chdir(dir)
	t.Setenv(config.EnvServiceEnv, "nonexistent")

	if _, err := config.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
}

func TestLoad_MissingBaseFile(t *testing.T) {
	t.Chdir(t.TempDir())

	if _, err := config.Load(); err == nil {
		t.Fatal("Load() succeeded without config file, want error")
	}
}

func TestConfig_Finalize(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, config.BaseConfigFile, baseConfig)
	t.Chdir(dir)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	// Sections absent from the file pick up defaults.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want default 0.0.0.0", cfg.Server.Host)
	}
	if cfg.Pagination.DefaultPageSize != 20 {
		t.Errorf("Pagination.DefaultPageSize = %d, want 20", cfg.Pagination.DefaultPageSize)
	}
	if cfg.Expiration.Workers != 4 {
		t.Errorf("Expiration.Workers = %d, want 4", cfg.Expiration.Workers)
	}
}

func TestServerConfig_Finalize(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var cfg config.ServerConfig
		if err := cfg.Finalize(); err != nil {
			t.Fatalf("Finalize() failed: %v", err)
		}
		if got := cfg.Addr(); got != "0.0.0.0:8080" {
			t.Errorf("Addr() = %q, want 0.0.0.0:8080", got)
		}
		if got := cfg.ReadTimeoutDuration().String(); got != "15s" {
			t.Errorf("ReadTimeoutDuration() = %s, want 15s", got)
		}
	})

	t.Run("env overrides", func(t *testing.T) {
		t.Setenv(config.EnvServerHost, "127.0.0.1")
		t.Setenv(config.EnvServerPort, "3000")

		var cfg config.ServerConfig
		if err := cfg.Finalize(); err != nil {
			t.Fatalf("Finalize() failed: %v", err)
		}
		if got := cfg.Addr(); got != "127.0.0.1:3000" {
			t.Errorf("Addr() = %q, want 127.0.0.1:3000", got)
		}
	})

	t.Run("invalid port", func(t *testing.T) {
		cfg := config.ServerConfig{Port: 70000}
		if err := cfg.Finalize(); err == nil {
			t.Error("Finalize() succeeded with invalid port, want error")
		}
	})

	t.Run("invalid timeout", func(t *testing.T) {
		cfg := config.ServerConfig{ReadTimeout: "soon"}
		if err := cfg.Finalize(); err == nil {
			t.Error("Finalize() succeeded with invalid timeout, want error")
		}
	})
}
