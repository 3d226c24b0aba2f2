// Package validation provides request validation helpers for the API layer.
package validation

import "fmt"

// Validator collects field errors while checking a request.
type Validator struct {
	Errors map[string]string
}

// New creates a new validator
func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid checks if there are any validation errors
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError adds an error to the validator
func (v *Validator) AddError(field, message string) {
	if _, exists := v.Errors[field]; !exists {
		v.Errors[field] = message
	}
}

// Check adds an error if the condition is false
func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// First returns one failure as a flat message, for APIs that report a
// single error string.
func (v *Validator) First() string {
	for field, message := range v.Errors {
		return fmt.Sprintf("%s: %s", field, message)
	}
	return ""
}
