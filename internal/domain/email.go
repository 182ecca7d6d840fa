package domain

import (
	"github.com/dmitrymomot/letterdrop/pkg/validator"
)

// SubscriberEmail is a syntactically valid email address.
// The zero value is invalid; construct via ParseSubscriberEmail.
type SubscriberEmail struct {
	value string
}

// ParseSubscriberEmail validates raw input as an RFC-parseable address.
func ParseSubscriberEmail(raw string) (SubscriberEmail, error) {
	if err := validator.Apply(
		validator.ValidEmail("email", raw),
	); err != nil {
		return SubscriberEmail{}, err
	}

	return SubscriberEmail{value: raw}, nil
}

func (e SubscriberEmail) String() string {
	return e.value
}
