package sanitizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToUpper upper-cases s with full Unicode case mapping.
// A Caser keeps internal state, so a fresh one is built per call.
func ToUpper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// RemoveSpaces drops every whitespace rune.
func RemoveSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// RemoveChars drops every occurrence of the given runes.
func RemoveChars(s string, chars ...rune) string {
	if len(chars) == 0 {
		return s
	}
	return strings.Map(func(r rune) rune {
		for _, c := range chars {
			if r == c {
				return -1
			}
		}
		return r
	}, s)
}
