// Package validator provides small, composable validation rules for form
// input.
//
// A Rule pairs a boolean Check with a ValidationError describing the failure.
// Rules are evaluated with Apply, which collects every failing rule into a
// ValidationErrors slice. ValidationErrors implements error, so callers can
// return it directly and recover the field-level detail later with
// ExtractValidationErrors.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.MinLen("name", name, 2),
//	    validator.MaxLen("name", name, 50),
//	    validator.EmailShape("email", email),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        fmt.Println(field, verrs.Get(field))
//	    }
//	}
//
// Every rule is a pure function of its arguments. The package keeps no
// state and is safe for concurrent use.
//
// # Messages
//
// Each rule carries a default English message and a translation key with
// values. WithMessage replaces the default message when a view needs
// domain-specific wording.
package validator
