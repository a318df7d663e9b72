package features

import (
	"fmt"
	"os"

	"github.com/docker/go-units"
)

// EnvFeaturesMaxPayloadSize overrides the maximum payload size.
const EnvFeaturesMaxPayloadSize = "FEATURES_MAX_PAYLOAD_SIZE"

// Config contains feature publishing configuration.
type Config struct {
	// MaxPayloadSize is the largest accepted document payload, in
	// human-readable form ("2MB").
	MaxPayloadSize    string `toml:"max_payload_size"`
	maxPayloadSizeVal int64
}

// MaxPayloadSizeBytes returns the parsed maximum payload size.
func (c *Config) MaxPayloadSizeBytes() int64 {
	return c.maxPayloadSizeVal
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *Config) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *Config) Merge(overlay *Config) {
	if overlay.MaxPayloadSize != "" {
		c.MaxPayloadSize = overlay.MaxPayloadSize
	}
}

func (c *Config) loadDefaults() {
	if c.MaxPayloadSize == "" {
		c.MaxPayloadSize = "2MB"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvFeaturesMaxPayloadSize); v != "" {
		c.MaxPayloadSize = v
	}
}

func (c *Config) validate() error {
	size, err := units.FromHumanSize(c.MaxPayloadSize)
	if err != nil {
		return fmt.Errorf("invalid max_payload_size: %w", err)
	}
	if size < 1 {
		return fmt.Errorf("max_payload_size must be positive")
	}
	c.maxPayloadSizeVal = size
	return nil
}
