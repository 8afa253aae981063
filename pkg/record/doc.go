// Package record defines the provider record consumed by the scoring engine.
//
// A Record is a plain mapping from field name to scalar value, typically one
// row of an externally produced dataset. Values may be strings, numbers, or
// absent. The helpers in this package convert any present value into its
// string form so that checks never have to care about the original type:
//
//	rec := record.Record{
//	    record.FieldPhone:   "98-7654-3210",
//	    record.FieldPincode: 560001,
//	}
//	pin := rec.Value(record.FieldPincode) // "560001"
//
// A value that cannot be meaningfully converted is still converted (via
// fmt.Sprint) and left for the checks to reject. Nothing in this package
// panics on odd input.
//
// Decode reads exactly one JSON object and keeps numbers as json.Number so
// that codes such as pincodes keep their literal digits.
package record
