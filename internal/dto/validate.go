package dto

import "github.com/go-playground/validator/v10"

// Validate re-checks request structs at the service boundary, for callers
// that do not arrive through gin's binding (CLI tooling, tests, other
// services). It reads the same binding tags gin uses.
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName("binding")
	return v
}
