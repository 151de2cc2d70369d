package validator

import "regexp"

// emailShapeRegex accepts local@domain.tld where no part holds whitespace or '@'.
var emailShapeRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// EmailShape validates the loose local@domain.tld shape used by web forms.
// It is intentionally weaker than RFC 5322 parsing: a non-empty local part,
// a single '@' and a domain containing a dot.
func EmailShape(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return emailShapeRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
