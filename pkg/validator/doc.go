// Package validator provides the rule model used by the provider scoring
// engine: small Rule values that pair a boolean Check with a descriptive,
// translation-friendly ValidationError.
//
// Rules are evaluated with Apply, which aggregates failures into a
// ValidationErrors slice that satisfies the error interface, or with Collect
// when the caller wants the failures as data rather than as an error.
//
// # Architecture
//
// Each source file groups a family of rules (`string_rules.go`,
// `pattern_rules.go`, `choice_rules.go`). Every exported constructor simply
// returns a Rule; patterns are passed in precompiled and membership tests are
// passed in as predicates, so the package keeps no global state and is
// goroutine-safe.
//
// Core building blocks:
//   - Rule              – Check func plus error metadata
//   - ValidationError   – a single failure with an i18n key
//   - ValidationErrors  – ordered slice implementing error
//
// # Usage
//
//	err := validator.Apply(
//	    validator.Required("name", name),
//	    validator.MatchesPattern("pincode", pin, pincodeRe, "6-digit pincode"),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, msg := range verrs.Messages() {
//	        // ...
//	    }
//	}
//
// Messages can be replaced per rule with Rule.WithMessage when the caller
// needs fixed, human-readable wording.
package validator
