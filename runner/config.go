// Package runner orchestrates one end-to-end run: validating the
// configuration, apportioning connections and completion quotas across
// worker threads, driving them to completion, and aggregating their
// stats into a single summary.
package runner

import (
	"fmt"
	"time"

	"github.com/loadgen/loaded/worker"
)

// Format selects how a run's summary is rendered.
type Format int

const (
	FormatPretty Format = iota
	FormatJSON
)

// ParseFormat validates an operator-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "pretty":
		return FormatPretty, nil
	case "json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("invalid format %q (want pretty or json)", s)
	}
}

// Config is a fully-resolved run configuration: CLI flag parsing produces
// one of these, and Run consumes it without looking back at flags.
type Config struct {
	URL         string
	Format      Format
	Threads     int
	Connections int
	RateLimit   int // requests/sec; 0 means unlimited
	Duration    time.Duration
	NumRequests int64
	Seed        string
	Engine      worker.EngineDescriptor
}

// Validate checks the invariants a Config must satisfy before a run can
// start.
func (c Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("url must not be empty")
	}
	if c.Threads < 1 {
		return fmt.Errorf("threads must be >= 1, got %d", c.Threads)
	}
	if c.Connections < c.Threads {
		return fmt.Errorf("connections (%d) cannot be less than threads (%d)", c.Connections, c.Threads)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("rate limit must be >= 0, got %d", c.RateLimit)
	}
	if c.Duration < 0 {
		return fmt.Errorf("duration must be >= 0, got %s", c.Duration)
	}
	if c.NumRequests < 0 {
		return fmt.Errorf("num-requests must be >= 0, got %d", c.NumRequests)
	}
	if c.Duration > 0 && c.NumRequests > 0 {
		return fmt.Errorf("duration and num-requests are mutually exclusive completion conditions")
	}
	return nil
}
