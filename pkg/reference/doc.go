// Package reference holds the static lookup data consulted by the scoring
// engine: the approved specialty list, the required-field list, the phone,
// pincode and registration-number patterns, and two sample lookup tables
// (city misspellings and pincode-to-city).
//
// Tables are built once and never mutated afterwards, so a single *Tables may
// be shared by any number of goroutines without locking.
//
// The defaults ship embedded as YAML. Regional deployments can override any
// section without code changes:
//
//	tables, err := reference.LoadFile("/etc/medverify/tables.yaml")
//	if err != nil {
//	    // invalid pattern or empty entry
//	}
//
// Sections absent from the override keep their default values. Patterns are
// always matched against the whole value; anchors in the YAML are optional.
package reference
