// Package search implements the bidirectional best-first search engine:
// given an initial and goal cube (either of which may carry Wildcards),
// an allowed move alphabet, and a depth cap, it finds up to N move
// sequences that transform one into the other.
package search

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DefaultMaxMapSize is the goal-side frontier cap applied when either
// cube carries a Wildcard, matching the empirically-tuned value from the
// grounding source.
const DefaultMaxMapSize = 20000

// Config carries the engine's tunables and its injected logger, so the
// search package never hard-depends on a concrete logging sink. The zero
// Config is usable: MaxMapSize falls back to DefaultMaxMapSize and a
// no-op logger is used.
type Config struct {
	MaxMapSize int
	Log        logrus.FieldLogger
	Verbose    bool
}

func (c Config) maxMapSize() int {
	if c.MaxMapSize > 0 {
		return c.MaxMapSize
	}
	return DefaultMaxMapSize
}

func (c Config) logger() logrus.FieldLogger { return c.Logger() }

// Logger returns the configured logger, or a silent no-op logger if none
// was set. Exported so callers outside this package (method drivers, CLI)
// can share the same default without duplicating it.
func (c Config) Logger() logrus.FieldLogger {
	if c.Log != nil {
		return c.Log
	}
	l := logrus.New()
	l.SetOutput(nopWriter{})
	return l
}

// WithCorrelationID returns a logger field set carrying a fresh
// correlation ID, so a verbose run's interleaved log lines (across
// method-driver stages) can be grepped together.
func WithCorrelationID(log logrus.FieldLogger) logrus.FieldLogger {
	return log.WithField("search_id", uuid.New().String())
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
