// Package validation wires up a shared go-playground/validator instance
// with the custom rules spec.md §6's "Constraints on external inputs"
// needs beyond the built-in tags.
package validation

import "github.com/go-playground/validator/v10"

// New returns a validator.Validate with this module's custom tags
// registered, following the pattern used throughout sergeii-swat4master's
// internal/validation package.
func New() (*validator.Validate, error) {
	v := validator.New()
	if err := v.RegisterValidation("distinctrotors", validateDistinctRotors); err != nil {
		return nil, err
	}
	return v, nil
}

// validateDistinctRotors checks that a []string of rotor names contains no
// duplicates, enforcing spec.md §6's "the three must be distinct".
func validateDistinctRotors(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind().String() != "slice" {
		return false
	}
	seen := make(map[string]struct{}, field.Len())
	for i := 0; i < field.Len(); i++ {
		name := field.Index(i).String()
		if _, ok := seen[name]; ok {
			return false
		}
		seen[name] = struct{}{}
	}
	return true
}
