// Package directory looks up institutional personnel to suggest research
// team members. The lookup is optional: when disabled or unreachable the
// form degrades to manual entry.
package directory

import (
	"os"
	"strconv"
)

// Config holds configuration for the personnel directory lookup.
type Config struct {
	Enabled     bool
	Endpoint    string
	TimeoutMs   int
	MinQueryLen int
}

// DefaultConfig returns a Config with sensible defaults.
// The directory is disabled by default.
func DefaultConfig() Config {
	return Config{
		Enabled:     false,
		Endpoint:    "http://localhost:8410",
		TimeoutMs:   3000,
		MinQueryLen: 2,
	}
}

// LoadConfig reads directory configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("IRBFORGE_DIRECTORY_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("IRBFORGE_DIRECTORY_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("IRBFORGE_DIRECTORY_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("IRBFORGE_DIRECTORY_MIN_QUERY_LEN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MinQueryLen = n
		}
	}

	return cfg
}
