package record

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Field names of a provider record.
const (
	FieldID             = "id"
	FieldName           = "name"
	FieldPhone          = "phone"
	FieldCity           = "city"
	FieldSpecialty      = "specialty"
	FieldRegistrationNo = "registration_no"
	FieldYearsPractice  = "years_practice"
	FieldClinicAddress  = "clinic_address"
	FieldPincode        = "pincode"
)

// Record is one provider's data as a set of named fields.
// It is treated as immutable while being validated.
type Record map[string]any

// Lookup returns the string form of a field and whether the field holds a value.
// Absent fields, nil values and NaN floats report false.
func (r Record) Lookup(field string) (string, bool) {
	if r == nil {
		return "", false
	}
	v, ok := r[field]
	if !ok || v == nil {
		return "", false
	}
	return stringify(v)
}

// Value returns the string form of a field, or an empty string when absent.
func (r Record) Value(field string) string {
	s, _ := r.Lookup(field)
	return s
}

// Blank reports whether a field is absent or whitespace-only once converted to a string.
func (r Record) Blank(field string) bool {
	s, ok := r.Lookup(field)
	return !ok || strings.TrimSpace(s) == ""
}

// ID returns the record identifier in string form, used for log correlation.
func (r Record) ID() string {
	return r.Value(FieldID)
}

func stringify(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case int:
		return strconv.Itoa(t), true
	case int8:
		return strconv.FormatInt(int64(t), 10), true
	case int16:
		return strconv.FormatInt(int64(t), 10), true
	case int32:
		return strconv.FormatInt(int64(t), 10), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case uint:
		return strconv.FormatUint(uint64(t), 10), true
	case uint8:
		return strconv.FormatUint(uint64(t), 10), true
	case uint16:
		return strconv.FormatUint(uint64(t), 10), true
	case uint32:
		return strconv.FormatUint(uint64(t), 10), true
	case uint64:
		return strconv.FormatUint(t, 10), true
	case float32:
		return formatFloat(float64(t), 32)
	case float64:
		return formatFloat(t, 64)
	case bool:
		return strconv.FormatBool(t), true
	default:
		// fmt recovers from String methods that panic on nil receivers.
		return fmt.Sprint(v), true
	}
}

// formatFloat renders floats in shortest decimal form so 560001.0 becomes "560001".
// NaN marks an empty cell in most tabular sources and is treated as absent.
func formatFloat(f float64, bitSize int) (string, bool) {
	if math.IsNaN(f) {
		return "", false
	}
	return strconv.FormatFloat(f, 'f', -1, bitSize), true
}

// Decode reads a single JSON object from r.
// Numbers are kept as json.Number to preserve their literal digits.
func Decode(r io.Reader) (Record, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}

	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}

	return Record(obj), nil
}
