package subscription

import "errors"

var (
	// ErrUnknownToken marks a confirmation token that resolves to no
	// subscriber: a client fault, not a server failure.
	ErrUnknownToken = errors.New("subscription: unknown confirmation token")

	// ErrConfirmationEmailFailed marks a registration whose rows committed
	// but whose confirmation email could not be handed to the sender.
	ErrConfirmationEmailFailed = errors.New("subscription: failed to send confirmation email")
)
