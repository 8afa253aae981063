// Package sanitizer provides small, composable helpers that normalise raw
// provider field values before they are matched against reference patterns.
//
// The helpers fall into two groups:
//
//   - Strings – trimming, Unicode-aware upper-casing and whitespace removal.
//
//   - Format – normalisation for phone numbers and postal codes, matching the
//     way the scoring checks read those fields.
//
// The higher-order Apply and Compose helpers build sanitisation pipelines:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.ToUpper,
//	)
//
//	reg := clean("  mci10012345 ") // "MCI10012345"
//
// # Error handling
//
// None of the helpers returns an error. They always produce a string, even for
// input that will later fail validation.
//
// # Concurrency
//
// There is no package-level mutable state, so the helpers are safe for use
// from multiple goroutines concurrently.
package sanitizer
