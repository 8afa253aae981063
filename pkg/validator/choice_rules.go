package validator

import (
	"fmt"
	"strings"
)

// InSet validates membership through contains, which owns the comparison
// semantics (case folding, normalisation). Blank values never pass.
func InSet(field, value string, contains func(string) bool, description string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			return contains(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be one of the %s", description),
			TranslationKey: "validation.in_set",
			TranslationValues: map[string]any{
				"field":       field,
				"description": description,
			},
		},
	}
}
