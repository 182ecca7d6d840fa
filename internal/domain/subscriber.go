// Package domain holds the validated value types of the subscription core.
// Anything that crosses into storage or email is parsed here first, so the
// rest of the service only ever handles well-formed values.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// SubscriberStatus is the confirmation state of a subscriber.
// A subscriber only ever moves pending_confirmation -> confirmed.
type SubscriberStatus string

const (
	StatusPendingConfirmation SubscriberStatus = "pending_confirmation"
	StatusConfirmed           SubscriberStatus = "confirmed"
)

// Subscriber is one registered email address and its confirmation status.
type Subscriber struct {
	ID           uuid.UUID
	Email        SubscriberEmail
	Name         SubscriberName
	SubscribedAt time.Time
	Status       SubscriberStatus
}

// NewSubscriber carries the validated registration input before persistence
// assigns an identity.
type NewSubscriber struct {
	Email SubscriberEmail
	Name  SubscriberName
}

// ConfirmedSubscriberView is the read projection used by publication:
// one row per confirmed subscriber. The email is the raw stored string,
// not a validated value, because rows written under older validation rules
// must not break the read path; callers re-parse before use.
type ConfirmedSubscriberView struct {
	SubscriberID uuid.UUID
	Email        string
}

// ParseNewSubscriber validates both registration fields at once, collecting
// every violation instead of stopping at the first.
func ParseNewSubscriber(name, email string) (NewSubscriber, error) {
	parsedName, nameErr := ParseSubscriberName(name)
	parsedEmail, emailErr := ParseSubscriberEmail(email)

	if err := joinValidationErrors(nameErr, emailErr); err != nil {
		return NewSubscriber{}, err
	}

	return NewSubscriber{Email: parsedEmail, Name: parsedName}, nil
}
