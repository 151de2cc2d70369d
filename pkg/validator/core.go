package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError represents a single failed rule.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors is a collection of failed rules. It implements error.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

// Has reports whether at least one error was recorded for field.
func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for field in rule order.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// Fields returns the distinct field names in first-seen order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool, len(ve))
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

// Map groups messages by field, the shape used by JSON error details.
func (ve ValidationErrors) Map() map[string][]string {
	if len(ve) == 0 {
		return nil
	}
	m := make(map[string][]string, len(ve))
	for _, err := range ve {
		m[err.Field] = append(m[err.Field], err.Message)
	}
	return m
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// WithMessage returns a copy of the rule with its failure message replaced.
func (r Rule) WithMessage(msg string) Rule {
	r.Error.Message = msg
	return r
}

// Passes evaluates the rule.
func (r Rule) Passes() bool {
	return r.Check == nil || r.Check()
}

// Apply evaluates every rule and returns ValidationErrors for the failing
// ones, or nil when all pass.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, rule := range rules {
		if !rule.Passes() {
			errs.Add(rule.Error)
		}
	}

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// ExtractValidationErrors extracts ValidationErrors from an error chain.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return verrs
	}
	return nil
}

func IsValidationError(err error) bool {
	return ExtractValidationErrors(err) != nil
}
