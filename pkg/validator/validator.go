package validator

import (
	"github.com/go-playground/validator/v10"
)

// Validator wraps a go-playground validator instance so callers share a
// single configured validator.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	return &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (v *Validator) Validate(obj interface{}) error {
	return v.validate.Struct(obj)
}

// FormatErrors flattens validation errors into a field -> message map
// suitable for an HTTP error response.
func FormatErrors(err error) map[string]string {
	out := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return out
	}

	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out[field] = field + " is required"
		case "email":
			out[field] = field + " must be a valid email address"
		case "min":
			out[field] = field + " must be at least " + e.Param() + " characters"
		case "max":
			out[field] = field + " must be at most " + e.Param() + " characters"
		case "gte":
			out[field] = field + " must be greater than or equal to " + e.Param()
		case "lte":
			out[field] = field + " must be less than or equal to " + e.Param()
		default:
			out[field] = field + " is invalid"
		}
	}

	return out
}
