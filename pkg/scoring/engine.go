package scoring

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/dmitrymomot/medverify/pkg/logger"
	"github.com/dmitrymomot/medverify/pkg/record"
	"github.com/dmitrymomot/medverify/pkg/reference"
	"github.com/dmitrymomot/medverify/pkg/scoring/metrics"
	"github.com/dmitrymomot/medverify/pkg/validator"
)

// Engine scores provider records against the reference tables.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	gate      Checker
	checklist []Checker

	logger  *slog.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

// New builds an engine over tables. Nil tables mean reference.Default().
func New(tables *reference.Tables, opts ...Option) *Engine {
	if tables == nil {
		tables = reference.Default()
	}

	e := &Engine{
		gate: requiredFieldsChecker(tables),
		checklist: []Checker{
			phoneChecker(tables),
			pincodeChecker(tables),
			specialtyChecker(tables),
			registrationChecker(tables),
		},
		logger: slog.New(slog.DiscardHandler),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Checks returns the check names in evaluation order, gate first.
func (e *Engine) Checks() []string {
	names := make([]string, 0, len(e.checklist)+1)
	names = append(names, e.gate.Name)
	for _, c := range e.checklist {
		names = append(names, c.Name)
	}
	return names
}

// evaluation is the outcome of the two phases before timing is attached.
type evaluation struct {
	confidence int
	errs       validator.ValidationErrors
	failed     []string
	gateFailed bool
}

// Validate scores a single record. It never panics on malformed field values.
func (e *Engine) Validate(rec record.Record) Result {
	return e.ValidateContext(context.Background(), rec)
}

// ValidateContext is Validate with a context for log correlation.
// The context is never used for cancellation.
func (e *Engine) ValidateContext(ctx context.Context, rec record.Record) Result {
	if ctx == nil {
		ctx = context.Background()
	}
	start := e.now()
	ev := e.evaluate(rec)
	elapsed := e.now().Sub(start)

	res := Result{
		Confidence:      ev.confidence,
		Issues:          ev.errs.Messages(),
		ExecutionTimeMs: roundMillis(elapsed),
	}
	e.observe(ctx, rec, ev, elapsed)
	return res
}

func (e *Engine) evaluate(rec record.Record) evaluation {
	var ev evaluation

	// Phase 1: a record that fails the structural gate is not format-checked.
	if verr, ok := e.gate.evaluate(rec); !ok {
		ev.errs.Add(verr)
		ev.failed = append(ev.failed, e.gate.Name)
		ev.gateFailed = true
		return ev
	}
	ev.confidence = PointsPerCheck

	// Phase 2: independent checks, issues in checklist order.
	for _, c := range e.checklist {
		verr, ok := c.evaluate(rec)
		if ok {
			ev.confidence += PointsPerCheck
			continue
		}
		ev.errs.Add(verr)
		ev.failed = append(ev.failed, c.Name)
	}
	return ev
}

func (e *Engine) observe(ctx context.Context, rec record.Record, ev evaluation, elapsed time.Duration) {
	outcome := metrics.OutcomeClean
	switch {
	case ev.gateFailed:
		outcome = metrics.OutcomeGateFailed
	case len(ev.failed) > 0:
		outcome = metrics.OutcomeFlagged
	}

	e.metrics.ObserveValidation(outcome, ev.confidence, elapsed)
	for _, name := range ev.failed {
		e.metrics.IncrementCheckFailure(name)
	}

	if !e.logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	e.logger.DebugContext(ctx, "record validated",
		logger.Component("scoring"),
		logger.RecordID(rec.ID()),
		logger.Outcome(outcome),
		logger.Confidence(ev.confidence),
		logger.Issues(ev.errs.Messages()),
		logger.Fields(ev.errs.Fields()),
		logger.Duration(elapsed),
	)
}

// roundMillis converts d to milliseconds rounded to two decimal places.
func roundMillis(d time.Duration) float64 {
	if d < 0 {
		return 0
	}
	ms := float64(d) / float64(time.Millisecond)
	return math.Round(ms*100) / 100
}
