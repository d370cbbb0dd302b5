package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Deliberately loose: something, "@", something, ".", something, no whitespace.
	// Whitespace includes \v and every Unicode space separator plus the BOM, not just RE2's \s.
	simpleEmailRegex = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}]+@[^\s\v\p{Z}\x{FEFF}]+\.[^\s\v\p{Z}\x{FEFF}]+$`)
)

// New returns a validator with the custom tags registered.
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("simple_email", SimpleEmail)
}

// SimpleEmail accepts any non-whitespace address of the form a@b.c
func SimpleEmail(fl validator.FieldLevel) bool {
	return simpleEmailRegex.MatchString(fl.Field().String())
}
