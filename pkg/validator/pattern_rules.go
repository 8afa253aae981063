package validator

import (
	"fmt"
	"regexp"
)

// MatchesPattern validates value against a precompiled pattern.
// A nil pattern never matches.
func MatchesPattern(field, value string, pattern *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool {
			return pattern != nil && pattern.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must match %s pattern", description),
			TranslationKey: "validation.regex_pattern",
			TranslationValues: map[string]any{
				"field":       field,
				"description": description,
			},
		},
	}
}

// MatchesAnyPattern passes when at least one of patterns matches value.
func MatchesAnyPattern(field, value string, patterns []*regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool {
			for _, p := range patterns {
				if p != nil && p.MatchString(value) {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must match %s pattern", description),
			TranslationKey: "validation.regex_any_pattern",
			TranslationValues: map[string]any{
				"field":       field,
				"description": description,
				"patterns":    len(patterns),
			},
		},
	}
}
