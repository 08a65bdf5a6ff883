package validation

import "github.com/go-playground/validator/v10"

// Validator adapts go-playground/validator to echo's Validator interface,
// so handlers can call c.Validate on bound DTOs.
type Validator struct {
	check *validator.Validate
}

func New() *Validator {
	return &Validator{check: validator.New()}
}

func (vd *Validator) Validate(i any) error {
	return vd.check.Struct(i)
}
