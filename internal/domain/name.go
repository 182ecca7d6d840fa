package domain

import (
	"strings"

	"github.com/dmitrymomot/letterdrop/pkg/validator"
)

// forbiddenNameChars are rejected wholesale: they have no place in a person's
// name and are the usual suspects in injection payloads.
const forbiddenNameChars = `/()"<>\{}`

const maxNameGraphemes = 256

// SubscriberName is a validated subscriber display name.
// The zero value is invalid; construct via ParseSubscriberName.
type SubscriberName struct {
	value string
}

// ParseSubscriberName trims and validates raw input into a SubscriberName.
// It fails closed: any violation returns an error and never a usable value.
func ParseSubscriberName(raw string) (SubscriberName, error) {
	trimmed := strings.TrimSpace(raw)

	if err := validator.Apply(
		validator.RequiredTrimmed("name", trimmed),
		validator.MaxGraphemes("name", trimmed, maxNameGraphemes),
		validator.NoForbiddenChars("name", trimmed, forbiddenNameChars),
	); err != nil {
		return SubscriberName{}, err
	}

	return SubscriberName{value: trimmed}, nil
}

func (n SubscriberName) String() string {
	return n.value
}
