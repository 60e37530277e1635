package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// LoggingConfig defines the log verbosity of a run.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level"`
}

// SetDefaults applies sane defaults.
func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
}

// Validate checks the level name.
func (c LoggingConfig) Validate() error {
	if _, err := zerolog.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("unknown log level %s", c.Level)
	}
	return nil
}

// Apply sets the global log level.
func (c LoggingConfig) Apply() error {
	lvl, err := zerolog.ParseLevel(c.Level)
	if err != nil {
		return fmt.Errorf("unknown log level %s", c.Level)
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}
