package validator

import (
	"fmt"
	"strings"
)

// RequiredFieldsKey is the Field reported by RequiredFields.
const RequiredFieldsKey = "required_fields"

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// RequiredFields validates a whole set of fields at once and reports every
// missing one in a single error, in the order given.
// blank reports whether a field is absent or empty.
func RequiredFields(fields []string, blank func(field string) bool) Rule {
	var missing []string
	for _, field := range fields {
		if blank(field) {
			missing = append(missing, field)
		}
	}

	return Rule{
		Check: func() bool {
			return len(missing) == 0
		},
		Error: ValidationError{
			Field:          RequiredFieldsKey,
			Message:        fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", ")),
			TranslationKey: "validation.required_fields",
			TranslationValues: map[string]any{
				"fields": missing,
			},
		},
	}
}
