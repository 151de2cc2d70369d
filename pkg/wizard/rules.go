package wizard

import "github.com/dmitrymomot/userdash/pkg/validator"

// BasicInfoRules checks the fields collected on StepBasicInfo.
func BasicInfoRules(r Record) []validator.Rule {
	return []validator.Rule{
		validator.MinLen("name", r.Name, 2).WithMessage("Name must be at least 2 characters"),
		validator.MaxLen("name", r.Name, 50).WithMessage("Name must be less than 50 characters"),
		validator.EmailShape("email", r.Email).WithMessage("Please enter a valid email address"),
	}
}

// AddressRules checks the fields collected on StepAddress.
func AddressRules(r Record) []validator.Rule {
	return []validator.Rule{
		validator.MinLen("street", r.Street, 5).WithMessage("Street address must be at least 5 characters"),
		validator.MinLen("city", r.City, 2).WithMessage("City must be at least 2 characters"),
		validator.MinLen("zipcode", r.Zipcode, 5).WithMessage("Zipcode must be at least 5 characters"),
		validator.MaxLen("zipcode", r.Zipcode, 10).WithMessage("Zipcode must be less than 10 characters"),
	}
}

// ValidateStep returns the failures of the group shown on step, or nil.
// The review step validates both groups.
func ValidateStep(step Step, r Record) validator.ValidationErrors {
	var rules []validator.Rule
	switch step.Clamp() {
	case StepBasicInfo:
		rules = BasicInfoRules(r)
	case StepAddress:
		rules = AddressRules(r)
	case StepReview:
		rules = append(BasicInfoRules(r), AddressRules(r)...)
	}
	return validator.ExtractValidationErrors(validator.Apply(rules...))
}

// StepValid reports whether step's group passes for r.
func StepValid(step Step, r Record) bool {
	return ValidateStep(step, r).IsEmpty()
}
