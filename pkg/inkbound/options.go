package inkbound

import (
	"fmt"
	"io"
	"log/slog"
	"time"
)

// DefaultPollInterval is how often a LogReader checks the log for changes.
const DefaultPollInterval = 2 * time.Second

// discardLogger returns a logger that discards all output.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Option configures a LogReader or Follower using the functional options pattern.
type Option func(*config)

// config holds internal configuration. It is immutable once a reader starts.
type config struct {
	pollInterval   time.Duration
	skipCurrent    bool
	includeRawLine bool
	logger         *slog.Logger
}

// defaultConfig returns a config with sensible defaults.
func defaultConfig() *config {
	return &config{
		pollInterval: DefaultPollInterval,
		logger:       discardLogger,
	}
}

// applyOptions applies functional options to a config.
func applyOptions(opts []Option) *config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// validate checks for invalid option values.
func (c *config) validate() error {
	if c.pollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive, got %v", c.pollInterval)
	}
	return nil
}

// WithPollInterval sets how often the log file is checked for changes.
// Default: 2 seconds.
func WithPollInterval(interval time.Duration) Option {
	return func(c *config) {
		c.pollInterval = interval
	}
}

// WithSkipCurrent starts at the end of the file, so lines written before
// the reader was created are never parsed. Reset always replays the whole
// file regardless of this option.
func WithSkipCurrent(skip bool) Option {
	return func(c *config) {
		c.skipCurrent = skip
	}
}

// WithIncludeRawLine includes the original log line in Event.RawLine.
// Only events delivered by a Follower carry raw lines.
func WithIncludeRawLine(include bool) Option {
	return func(c *config) {
		c.includeRawLine = include
	}
}

// WithLogger sets a custom logger for debug output.
// If logger is nil, logging is disabled (default behavior).
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
