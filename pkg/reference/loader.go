package reference

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/medverify/pkg/sanitizer"
)

//go:embed tables.yaml
var defaultDocument []byte

var (
	defaultOnce   sync.Once
	defaultTables *Tables
)

// Default returns the embedded tables, parsed once per process.
// It panics if the embedded document is invalid, which is a build defect.
func Default() *Tables {
	defaultOnce.Do(func() {
		doc, err := decode(bytes.NewReader(defaultDocument))
		if err != nil {
			panic(fmt.Sprintf("reference: embedded tables: %v", err))
		}
		t, err := build(doc)
		if err != nil {
			panic(fmt.Sprintf("reference: embedded tables: %v", err))
		}
		defaultTables = t
	})
	return defaultTables
}

// Load reads a YAML tables document from r. Sections missing from the
// document keep the embedded defaults.
func Load(r io.Reader) (*Tables, error) {
	doc, err := decode(r)
	if err != nil {
		return nil, err
	}
	return build(merge(Default().Document(), doc))
}

// LoadFile is Load for a file on disk.
func LoadFile(path string) (*Tables, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tables: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// New builds tables from a fully specified document, without defaults.
func New(doc Document) (*Tables, error) {
	return build(doc)
}

func decode(r io.Reader) (Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return Document{}, errors.Join(ErrInvalidTables, err)
	}
	return doc, nil
}

// merge fills the sections override leaves empty from base.
func merge(base, override Document) Document {
	if len(override.Specialties) > 0 {
		base.Specialties = override.Specialties
	}
	if len(override.RequiredFields) > 0 {
		base.RequiredFields = override.RequiredFields
	}
	if len(override.Patterns.Phone) > 0 {
		base.Patterns.Phone = override.Patterns.Phone
	}
	if override.Patterns.Pincode != "" {
		base.Patterns.Pincode = override.Patterns.Pincode
	}
	if override.Patterns.Registration != "" {
		base.Patterns.Registration = override.Patterns.Registration
	}
	if len(override.CityTypos) > 0 {
		base.CityTypos = override.CityTypos
	}
	if len(override.PincodeToCity) > 0 {
		base.PincodeToCity = override.PincodeToCity
	}
	return base
}

func build(doc Document) (*Tables, error) {
	var errs []error

	if len(doc.Specialties) == 0 {
		errs = append(errs, errors.New("specialties: list is empty"))
	}
	specialties := make(map[string]struct{}, len(doc.Specialties))
	for i, s := range doc.Specialties {
		key := canonical(s)
		if key == "" {
			errs = append(errs, fmt.Errorf("specialties[%d]: blank entry", i))
			continue
		}
		specialties[key] = struct{}{}
	}

	if len(doc.RequiredFields) == 0 {
		errs = append(errs, errors.New("required_fields: list is empty"))
	}
	for i, f := range doc.RequiredFields {
		if strings.TrimSpace(f) == "" {
			errs = append(errs, fmt.Errorf("required_fields[%d]: blank entry", i))
		}
	}

	if len(doc.Patterns.Phone) == 0 {
		errs = append(errs, errors.New("patterns.phone: list is empty"))
	}
	phone := make([]*regexp.Regexp, 0, len(doc.Patterns.Phone))
	for i, p := range doc.Patterns.Phone {
		re, err := compile(p)
		if err != nil {
			errs = append(errs, fmt.Errorf("patterns.phone[%d]: %w", i, err))
			continue
		}
		phone = append(phone, re)
	}

	pincode, err := compile(doc.Patterns.Pincode)
	if err != nil {
		errs = append(errs, fmt.Errorf("patterns.pincode: %w", err))
	}
	registration, err := compile(doc.Patterns.Registration)
	if err != nil {
		errs = append(errs, fmt.Errorf("patterns.registration: %w", err))
	}

	if len(errs) > 0 {
		return nil, errors.Join(append([]error{ErrInvalidTables}, errs...)...)
	}

	cityTypos := make(map[string]string, 2*len(doc.CityTypos))
	for _, city := range doc.CityTypos {
		cityTypos[canonical(city)] = city
	}
	// Typos are indexed after canonical names so a typo entry wins on collision.
	for typo, city := range doc.CityTypos {
		cityTypos[canonical(typo)] = city
	}

	cities := make(map[string]string, len(doc.PincodeToCity))
	for pin, city := range doc.PincodeToCity {
		cities[sanitizer.NormalizePostalCode(pin)] = city
	}

	t := &Tables{
		doc:          doc,
		specialties:  specialties,
		phone:        phone,
		pincode:      pincode,
		registration: registration,
		cityTypos:    cityTypos,
		cities:       cities,
	}
	// Detach from slices and maps owned by the caller.
	t.doc = t.Document()
	return t, nil
}

// compile anchors a pattern to the whole value.
func compile(pattern string) (*regexp.Regexp, error) {
	if strings.TrimSpace(pattern) == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidPattern)
	}
	re, err := regexp.Compile(`^(?:` + pattern + `)$`)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}
	return re, nil
}
