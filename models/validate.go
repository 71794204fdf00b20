package models

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validator plugs the shared validator into echo (e.Validator).
type Validator struct{}

func (Validator) Validate(i interface{}) error {
	return validate.Struct(i)
}

// ValidateStruct checks every declared field constraint on v and the structs
// embedded in it, reporting all violations rather than stopping at the first.
func ValidateStruct(v interface{}) error {
	return validate.Struct(v)
}

// Violations flattens a validation error into one message per failed field.
func Violations(err error) []string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{err.Error()}
	}
	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, fmt.Sprintf("%s: failed on '%s'", fe.Namespace(), fe.Tag()))
	}
	return messages
}
