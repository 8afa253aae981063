// Package metrics provides Prometheus instrumentation for the scoring engine.
//
// Collectors are registered on a caller-supplied prometheus.Registerer so the
// engine never touches the global registry on its own. Exposition (an HTTP
// /metrics endpoint or a push gateway) is left to the embedding program.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for ValidationsTotal.
const (
	OutcomeClean      = "clean"
	OutcomeFlagged    = "flagged"
	OutcomeGateFailed = "gate_failed"
)

// Metrics provides observability for record scoring.
type Metrics struct {
	// Validations by outcome
	ValidationsTotal *prometheus.CounterVec

	// Failed checks by check name
	CheckFailures *prometheus.CounterVec

	// Distribution of confidence scores
	Confidence prometheus.Histogram

	// Wall-clock time per validation
	Duration prometheus.Histogram
}

// New creates the scoring metrics and registers them on reg.
// A nil reg falls back to prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		ValidationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "medverify_validations_total",
			Help: "Total validated provider records by outcome",
		}, []string{"outcome"}), // outcome: "clean", "flagged", "gate_failed"

		CheckFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "medverify_check_failures_total",
			Help: "Total failed checks by check name",
		}, []string{"check"}),

		Confidence: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "medverify_confidence_score",
			Help:    "Confidence score assigned to validated records",
			Buckets: []float64{0, 20, 40, 60, 80, 100},
		}),

		Duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "medverify_validation_duration_seconds",
			Help:    "Duration of a single record validation",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}),
	}
}

// ObserveValidation records one finished validation.
func (m *Metrics) ObserveValidation(outcome string, confidence int, d time.Duration) {
	if m == nil {
		return
	}
	m.ValidationsTotal.WithLabelValues(outcome).Inc()
	m.Confidence.Observe(float64(confidence))
	m.Duration.Observe(d.Seconds())
}

// IncrementCheckFailure records a failed check.
func (m *Metrics) IncrementCheckFailure(check string) {
	if m != nil {
		m.CheckFailures.WithLabelValues(check).Inc()
	}
}
