package reference

import (
	"maps"
	"regexp"
	"slices"

	"github.com/dmitrymomot/medverify/pkg/sanitizer"
)

// Tables is the immutable set of reference data used by the scoring checks.
type Tables struct {
	doc Document

	specialties  map[string]struct{}
	phone        []*regexp.Regexp
	pincode      *regexp.Regexp
	registration *regexp.Regexp
	cityTypos    map[string]string
	cities       map[string]string
}

// Document is the serialisable form of Tables.
type Document struct {
	Specialties    []string          `yaml:"specialties,omitempty"`
	RequiredFields []string          `yaml:"required_fields,omitempty"`
	Patterns       PatternSet        `yaml:"patterns,omitempty"`
	CityTypos      map[string]string `yaml:"city_typos,omitempty"`
	PincodeToCity  map[string]string `yaml:"pincode_to_city,omitempty"`
}

// PatternSet holds the pattern sources before compilation.
type PatternSet struct {
	Phone        []string `yaml:"phone,omitempty"`
	Pincode      string   `yaml:"pincode,omitempty"`
	Registration string   `yaml:"registration,omitempty"`
}

// canonical folds a free-text value for case-insensitive comparison.
var canonical = sanitizer.Compose(sanitizer.Trim, sanitizer.ToUpper)

// Specialties returns the approved specialty names in canonical casing.
func (t *Tables) Specialties() []string {
	return slices.Clone(t.doc.Specialties)
}

// RequiredFields returns the ordered list of fields that must be present and non-blank.
func (t *Tables) RequiredFields() []string {
	return slices.Clone(t.doc.RequiredFields)
}

// PhonePatterns returns the accepted phone patterns. A phone is valid if any matches.
func (t *Tables) PhonePatterns() []*regexp.Regexp {
	return slices.Clone(t.phone)
}

func (t *Tables) PincodePattern() *regexp.Regexp {
	return t.pincode
}

func (t *Tables) RegistrationPattern() *regexp.Regexp {
	return t.registration
}

// IsApprovedSpecialty reports whether s names an approved specialty, ignoring
// case and surrounding whitespace.
func (t *Tables) IsApprovedSpecialty(s string) bool {
	_, ok := t.specialties[canonical(s)]
	return ok
}

// CanonicalCity maps a known misspelling or an already canonical city name to
// its canonical form. Matching ignores case and surrounding whitespace.
func (t *Tables) CanonicalCity(name string) (string, bool) {
	city, ok := t.cityTypos[canonical(name)]
	return city, ok
}

// CityForPincode returns the city a pincode belongs to, if it is in the sample table.
func (t *Tables) CityForPincode(pincode string) (string, bool) {
	city, ok := t.cities[sanitizer.NormalizePostalCode(pincode)]
	return city, ok
}

// Document returns a deep copy of the tables in serialisable form.
func (t *Tables) Document() Document {
	return Document{
		Specialties:    slices.Clone(t.doc.Specialties),
		RequiredFields: slices.Clone(t.doc.RequiredFields),
		Patterns: PatternSet{
			Phone:        slices.Clone(t.doc.Patterns.Phone),
			Pincode:      t.doc.Patterns.Pincode,
			Registration: t.doc.Patterns.Registration,
		},
		CityTypos:     maps.Clone(t.doc.CityTypos),
		PincodeToCity: maps.Clone(t.doc.PincodeToCity),
	}
}
