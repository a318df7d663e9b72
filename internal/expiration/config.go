package expiration

import (
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/robfig/cron/v3"
)

// Environment variable names for expiration configuration.
const (
	EnvExpirationEnabled  = "EXPIRATION_ENABLED"
	EnvExpirationDays     = "EXPIRATION_DAYS"
	EnvExpirationRegex    = "EXPIRATION_REGEX"
	EnvExpirationSchedule = "EXPIRATION_SCHEDULE"
	EnvExpirationWorkers  = "EXPIRATION_WORKERS"
)

// Config drives the expiration policy.
type Config struct {
	// Enabled controls whether matching documents receive an expires marker.
	// The upload-date marker is maintained regardless.
	Enabled bool `toml:"enabled"`

	// Days is the number of days after last modification at which a
	// matching document expires.
	Days int `toml:"days"`

	// Regex selects expirable versions. Matching is an unanchored search,
	// so `\d` matches "1.0.0".
	Regex string `toml:"regex"`

	// Schedule is a standard 5-field cron expression for the background
	// sweep. Empty disables scheduled sweeping; manual sweeps still work.
	Schedule string `toml:"schedule"`

	// Workers bounds how many documents are processed concurrently
	// during a sweep.
	Workers int `toml:"workers"`
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *Config) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration.
func (c *Config) Merge(overlay *Config) {
	c.Enabled = overlay.Enabled

	if overlay.Days != 0 {
		c.Days = overlay.Days
	}
	if overlay.Regex != "" {
		c.Regex = overlay.Regex
	}
	if overlay.Schedule != "" {
		c.Schedule = overlay.Schedule
	}
	if overlay.Workers != 0 {
		c.Workers = overlay.Workers
	}
}

func (c *Config) loadDefaults() {
	if c.Days == 0 {
		c.Days = 30
	}
	if c.Regex == "" {
		// Pre-release versions carry a hyphenated suffix, e.g. 1.4.0-beta.2.
		c.Regex = `-\w+`
	}
	if c.Workers == 0 {
		c.Workers = 4
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvExpirationEnabled); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.Enabled = enabled
		}
	}
	if v := os.Getenv(EnvExpirationDays); v != "" {
		if days, err := strconv.Atoi(v); err == nil {
			c.Days = days
		}
	}
	if v := os.Getenv(EnvExpirationRegex); v != "" {
		c.Regex = v
	}
	if v := os.Getenv(EnvExpirationSchedule); v != "" {
		c.Schedule = v
	}
	if v := os.Getenv(EnvExpirationWorkers); v != "" {
		if workers, err := strconv.Atoi(v); err == nil {
			c.Workers = workers
		}
	}
}

func (c *Config) validate() error {
	if c.Days < 1 {
		return fmt.Errorf("days must be positive")
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive")
	}
	if _, err := regexp.Compile(c.Regex); err != nil {
		return fmt.Errorf("invalid regex: %w", err)
	}
	if c.Schedule != "" {
		if _, err := cron.ParseStandard(c.Schedule); err != nil {
			return fmt.Errorf("invalid schedule %q: %w", c.Schedule, err)
		}
	}
	return nil
}
