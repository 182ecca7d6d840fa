package domain

import (
	"errors"

	"github.com/dmitrymomot/letterdrop/pkg/validator"
)

// joinValidationErrors merges validation failures from several parses into a
// single ValidationErrors value so the caller sees every field at fault.
// Non-validation errors are passed through with errors.Join.
func joinValidationErrors(errs ...error) error {
	var merged validator.ValidationErrors
	var other []error

	for _, err := range errs {
		if err == nil {
			continue
		}
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			merged = append(merged, verrs...)
			continue
		}
		other = append(other, err)
	}

	if len(other) > 0 {
		return errors.Join(other...)
	}
	if merged.IsEmpty() {
		return nil
	}
	return merged
}
