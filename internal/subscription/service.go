// Package subscription implements the subscriber lifecycle: registration
// with a confirmation token and the token-driven pending-to-confirmed
// transition.
package subscription

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/letterdrop/internal/domain"
	"github.com/dmitrymomot/letterdrop/internal/token"
	"github.com/dmitrymomot/letterdrop/pkg/email"
	"github.com/dmitrymomot/letterdrop/pkg/logger"
)

// Store is the persistence surface the service needs.
type Store interface {
	// CreateSubscriberWithToken must store both rows atomically and commit
	// before returning.
	CreateSubscriberWithToken(ctx context.Context, sub domain.NewSubscriber, confirmationToken string) (uuid.UUID, error)
	FindSubscriberIDByToken(ctx context.Context, confirmationToken string) (uuid.UUID, bool, error)
	MarkConfirmed(ctx context.Context, subscriberID uuid.UUID) error
}

// Service registers and confirms subscribers.
type Service struct {
	store    Store
	sender   email.EmailSender
	baseURL  string
	generate func() string
	log      *slog.Logger
}

// Option configures the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithTokenGenerator overrides the confirmation token source. Intended for
// tests that need deterministic tokens.
func WithTokenGenerator(generate func() string) Option {
	return func(s *Service) {
		if generate != nil {
			s.generate = generate
		}
	}
}

// NewService creates the subscription service. baseURL is the public address
// confirmation links point back to.
func NewService(store Store, sender email.EmailSender, baseURL string, opts ...Option) *Service {
	s := &Service{
		store:    store,
		sender:   sender,
		baseURL:  baseURL,
		generate: token.Generate,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers a new subscriber: validates the input, stores the
// subscriber row and a fresh confirmation token in one committed
// transaction, then attempts the confirmation email. The email goes out only
// after commit; a token that is not yet durable must never be mailed.
func (s *Service) Subscribe(ctx context.Context, name, rawEmail string) error {
	sub, err := domain.ParseNewSubscriber(name, rawEmail)
	if err != nil {
		return err
	}

	confirmationToken := s.generate()

	subscriberID, err := s.store.CreateSubscriberWithToken(ctx, sub, confirmationToken)
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "new subscriber registered",
		logger.SubscriberID(subscriberID),
		logger.Component("subscription"),
	)

	if err := s.sendConfirmationEmail(ctx, sub, confirmationToken); err != nil {
		return fmt.Errorf("%w: %w", ErrConfirmationEmailFailed, err)
	}

	return nil
}

// sendConfirmationEmail delivers the welcome message carrying the
// confirmation link.
func (s *Service) sendConfirmationEmail(ctx context.Context, sub domain.NewSubscriber, confirmationToken string) error {
	link := s.baseURL + "/subscriptions/confirm?subscription_token=" + confirmationToken

	return s.sender.SendEmail(ctx, email.SendEmailParams{
		SendTo:  sub.Email.String(),
		Subject: "Welcome!",
		BodyHTML: fmt.Sprintf(
			`Welcome to our newsletter!<br />Click <a href="%s">here</a> to confirm your subscription.`,
			link,
		),
		BodyText: fmt.Sprintf(
			"Welcome to our newsletter!\nVisit %s to confirm your subscription.",
			link,
		),
		Tag: "subscription-confirmation",
	})
}

// Confirm applies the confirmation token. An unresolvable token is the
// caller's fault, reported as ErrUnknownToken. A token whose subscriber is
// already confirmed succeeds again without changing anything, so double
// clicks and retried requests are harmless.
func (s *Service) Confirm(ctx context.Context, confirmationToken string) error {
	subscriberID, found, err := s.store.FindSubscriberIDByToken(ctx, confirmationToken)
	if err != nil {
		return err
	}
	if !found {
		return ErrUnknownToken
	}

	if err := s.store.MarkConfirmed(ctx, subscriberID); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "subscriber confirmed",
		logger.SubscriberID(subscriberID),
		logger.Component("subscription"),
	)

	return nil
}
