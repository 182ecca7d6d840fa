// Package newsletter implements the authenticated fan-out of a newsletter
// issue to every confirmed subscriber.
package newsletter

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/letterdrop/internal/domain"
	"github.com/dmitrymomot/letterdrop/pkg/email"
	"github.com/dmitrymomot/letterdrop/pkg/logger"
)

// CredentialVerifier authenticates the publishing operator.
type CredentialVerifier interface {
	Verify(ctx context.Context, username, password string) (uuid.UUID, error)
}

// Store loads the confirmed-subscriber projection.
type Store interface {
	ListConfirmedSubscriberEmails(ctx context.Context) ([]domain.ConfirmedSubscriberView, error)
}

// Credentials are the operator's HTTP Basic credentials, decoded upstream.
type Credentials struct {
	Username string
	Password string
}

// Issue is one newsletter issue to broadcast.
type Issue struct {
	Title    string
	BodyHTML string
	BodyText string
}

// Service publishes newsletter issues.
type Service struct {
	verifier CredentialVerifier
	store    Store
	sender   email.EmailSender
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

// NewService creates the newsletter publication service.
func NewService(verifier CredentialVerifier, store Store, sender email.EmailSender, opts ...Option) *Service {
	s := &Service{
		verifier: verifier,
		store:    store,
		sender:   sender,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Publish authenticates the caller, then attempts one send per confirmed
// subscriber. Authentication failure is terminal before any send. During
// fan-out each subscriber is isolated: a stored email that no longer parses
// is skipped with a warning, a failed send is logged with its recipient, and
// in both cases the loop continues. The request as a whole only fails when
// the subscriber list cannot be loaded at all; skip and failure counts are
// observability concerns, not control flow.
func (s *Service) Publish(ctx context.Context, creds Credentials, issue Issue) error {
	userID, err := s.verifier.Verify(ctx, creds.Username, creds.Password)
	if err != nil {
		return err
	}

	subscribers, err := s.store.ListConfirmedSubscriberEmails(ctx)
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "publishing newsletter issue",
		slog.String("title", issue.Title),
		slog.Int("confirmed_subscribers", len(subscribers)),
		logger.UserID(userID),
		logger.Component("newsletter"),
	)

	for _, row := range subscribers {
		recipient, err := domain.ParseSubscriberEmail(row.Email)
		if err != nil {
			// Corrupt legacy state; the rest of the audience still gets mail.
			s.log.WarnContext(ctx, "skipping confirmed subscriber with invalid stored email",
				logger.SubscriberID(row.SubscriberID),
				logger.Error(err),
				logger.Component("newsletter"),
			)
			continue
		}

		if err := s.sender.SendEmail(ctx, email.SendEmailParams{
			SendTo:   recipient.String(),
			Subject:  issue.Title,
			BodyHTML: issue.BodyHTML,
			BodyText: issue.BodyText,
			Tag:      "newsletter-issue",
		}); err != nil {
			s.log.ErrorContext(ctx, "failed to send newsletter issue to subscriber",
				logger.SubscriberID(row.SubscriberID),
				logger.Recipient(recipient.String()),
				logger.Error(err),
				logger.Component("newsletter"),
			)
			continue
		}
	}

	return nil
}
