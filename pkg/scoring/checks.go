package scoring

import (
	"fmt"

	"github.com/dmitrymomot/medverify/pkg/record"
	"github.com/dmitrymomot/medverify/pkg/reference"
	"github.com/dmitrymomot/medverify/pkg/sanitizer"
	"github.com/dmitrymomot/medverify/pkg/validator"
)

// Check names in evaluation order. They double as metric labels.
const (
	CheckRequiredFields = "required_fields"
	CheckPhone          = "phone"
	CheckPincode        = "pincode"
	CheckSpecialty      = "specialty"
	CheckRegistration   = "registration"
)

// Fixed issue texts.
const (
	IssueInvalidPhone        = "Invalid phone format"
	IssueInvalidPincode      = "Invalid pincode format"
	IssueSpecialtyMissing    = "Specialty not provided"
	issueSpecialtyUnknown    = "Specialty '%s' not in approved list"
	issueRegistrationInvalid = "Registration number '%s' format invalid"
)

// Checker is one scoring rule. Rules builds the validator rules for a record;
// they are evaluated in order and the first failure becomes the issue.
type Checker struct {
	Name  string
	Rules func(rec record.Record) []validator.Rule
}

// evaluate returns the first failing rule's error, if any.
func (c Checker) evaluate(rec record.Record) (validator.ValidationError, bool) {
	errs := validator.ExtractValidationErrors(validator.Apply(c.Rules(rec)...))
	if errs.IsEmpty() {
		return validator.ValidationError{}, true
	}
	return errs[0], false
}

func requiredFieldsChecker(t *reference.Tables) Checker {
	fields := t.RequiredFields()
	return Checker{
		Name: CheckRequiredFields,
		Rules: func(rec record.Record) []validator.Rule {
			return []validator.Rule{validator.RequiredFields(fields, rec.Blank)}
		},
	}
}

func phoneChecker(t *reference.Tables) Checker {
	patterns := t.PhonePatterns()
	return Checker{
		Name: CheckPhone,
		Rules: func(rec record.Record) []validator.Rule {
			phone := sanitizer.StripPhoneSeparators(rec.Value(record.FieldPhone))
			return []validator.Rule{
				validator.MatchesAnyPattern(record.FieldPhone, phone, patterns, "Indian phone number").
					WithMessage(IssueInvalidPhone),
			}
		},
	}
}

func pincodeChecker(t *reference.Tables) Checker {
	pattern := t.PincodePattern()
	return Checker{
		Name: CheckPincode,
		Rules: func(rec record.Record) []validator.Rule {
			pin := sanitizer.NormalizePostalCode(rec.Value(record.FieldPincode))
			return []validator.Rule{
				validator.MatchesPattern(record.FieldPincode, pin, pattern, "6-digit pincode").
					WithMessage(IssueInvalidPincode),
			}
		},
	}
}

func specialtyChecker(t *reference.Tables) Checker {
	return Checker{
		Name: CheckSpecialty,
		Rules: func(rec record.Record) []validator.Rule {
			specialty := rec.Value(record.FieldSpecialty)
			return []validator.Rule{
				validator.Required(record.FieldSpecialty, specialty).
					WithMessage(IssueSpecialtyMissing),
				validator.InSet(record.FieldSpecialty, specialty, t.IsApprovedSpecialty, "approved specialties").
					WithMessage(fmt.Sprintf(issueSpecialtyUnknown, specialty)),
			}
		},
	}
}

func registrationChecker(t *reference.Tables) Checker {
	pattern := t.RegistrationPattern()
	return Checker{
		Name: CheckRegistration,
		Rules: func(rec record.Record) []validator.Rule {
			original := rec.Value(record.FieldRegistrationNo)
			return []validator.Rule{
				validator.MatchesPattern(record.FieldRegistrationNo, sanitizer.NormalizeCode(original), pattern, "registration number").
					WithMessage(fmt.Sprintf(issueRegistrationInvalid, original)),
			}
		},
	}
}
