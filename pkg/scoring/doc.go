// Package scoring implements the provider validation engine: a pure function
// from a record to a 0–100 confidence score and the list of failed checks.
//
// Evaluation is an explicit two-phase pipeline:
//
//  1. Gate. Every required field must be present and non-blank. If any is
//     missing the record scores 0 with a single "Missing required fields"
//     issue, and nothing else is evaluated.
//  2. Checklist. Phone, pincode, specialty and registration number are checked
//     independently, in that order. Each passing check adds 20 points and each
//     failing check adds one issue.
//
// A passing gate is itself worth 20 points, so scores are always multiples of
// 20. Issue text is fixed and reproducible:
//
//	engine := scoring.New(reference.Default())
//	res := engine.Validate(record.Record{ /* ... */ })
//	// res.Confidence == 60
//	// res.Issues == []string{"Invalid phone format", "Specialty 'FakeSpecialty' not in approved list"}
//
// The engine only reads immutable reference tables, so one *Engine can serve
// any number of goroutines. Malformed or wrong-typed field values never cause
// an error or panic; they simply fail their check.
//
// ExecutionTimeMs is informational and never affects the score.
package scoring
