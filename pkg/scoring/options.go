package scoring

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/medverify/pkg/scoring/metrics"
)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for per-record debug output.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithMetrics attaches Prometheus instrumentation.
func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// WithClock replaces the wall clock used for ExecutionTimeMs.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}
