// Package validator provides composable validation rules for request and
// domain input.
//
// Rules are plain values combined with Apply, which collects every failed
// rule into a ValidationErrors value:
//
//	err := validator.Apply(
//	    validator.RequiredTrimmed("name", name),
//	    validator.ValidEmail("email", email),
//	)
//
// ValidationErrors implements error, so callers can branch on it with
// validator.IsValidationError to separate client faults from server faults.
package validator
