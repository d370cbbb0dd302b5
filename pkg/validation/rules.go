package validation

import "github.com/go-playground/validator/v10"

// Rule applies a validator tag to every value Values extracts from the input.
// If any value fails, Message is reported.
type Rule[T any] struct {
	Tag     string
	Message string
	Values  func(T) []string
}

// FirstFailure evaluates rules top-to-bottom and returns the message of the
// first failing rule. failed is false when every rule passes.
func FirstFailure[T any](v *validator.Validate, rules []Rule[T], in T) (msg string, failed bool) {
	for _, r := range rules {
		for _, val := range r.Values(in) {
			if err := v.Var(val, r.Tag); err != nil {
				return r.Message, true
			}
		}
	}
	return "", false
}
