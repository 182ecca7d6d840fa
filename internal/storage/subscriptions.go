package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/letterdrop/internal/domain"
	"github.com/dmitrymomot/letterdrop/pkg/pg"
)

// InsertSubscriber inserts a new subscriber with status pending_confirmation
// and returns its generated identity. A duplicate email surfaces as
// ErrDuplicateEmail; anything else as ErrFailedToInsertSubscriber.
func (s *SubscriptionStore) InsertSubscriber(ctx context.Context, sub domain.NewSubscriber) (uuid.UUID, error) {
	id := uuid.New()

	_, err := s.db.Exec(ctx, `
		INSERT INTO subscriptions (id, email, name, subscribed_at, status)
		VALUES ($1, $2, $3, $4, $5)`,
		id, sub.Email.String(), sub.Name.String(), time.Now().UTC(), domain.StatusPendingConfirmation,
	)
	if err != nil {
		if pg.IsDuplicateKeyError(err) {
			return uuid.Nil, errors.Join(ErrDuplicateEmail, err)
		}
		return uuid.Nil, errors.Join(ErrFailedToInsertSubscriber, err)
	}

	return id, nil
}

// StoreToken inserts the confirmation token for a subscriber. The token column
// carries a unique index; the negligible chance of a generator collision is
// still reported rather than silently absorbed.
func (s *SubscriptionStore) StoreToken(ctx context.Context, subscriberID uuid.UUID, token string) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO subscription_tokens (subscription_token, subscriber_id)
		VALUES ($1, $2)`,
		token, subscriberID,
	)
	if err != nil {
		if pg.IsDuplicateKeyError(err) {
			return errors.Join(ErrDuplicateToken, err)
		}
		return errors.Join(ErrFailedToStoreToken, err)
	}

	return nil
}

// FindSubscriberIDByToken resolves a token to its subscriber. A miss is not an
// error: it reports (uuid.Nil, false, nil) and the caller decides what an
// unknown token means.
func (s *SubscriptionStore) FindSubscriberIDByToken(ctx context.Context, token string) (uuid.UUID, bool, error) {
	var id uuid.UUID
	err := s.db.QueryRow(ctx, `
		SELECT subscriber_id
		FROM subscription_tokens
		WHERE subscription_token = $1`,
		token,
	).Scan(&id)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return uuid.Nil, false, nil
		}
		return uuid.Nil, false, errors.Join(ErrFailedToQueryToken, err)
	}

	return id, true, nil
}

// MarkConfirmed moves a subscriber to confirmed. The unconditional set-based
// UPDATE makes it naturally idempotent: confirming an already-confirmed
// subscriber succeeds and changes nothing.
func (s *SubscriptionStore) MarkConfirmed(ctx context.Context, subscriberID uuid.UUID) error {
	_, err := s.db.Exec(ctx, `
		UPDATE subscriptions SET status = $1 WHERE id = $2`,
		domain.StatusConfirmed, subscriberID,
	)
	if err != nil {
		return errors.Join(ErrFailedToMarkConfirmed, err)
	}

	return nil
}

// ListConfirmedSubscriberEmails returns every subscriber with confirmed
// status as raw rows; re-validation of the stored email is the caller's job.
func (s *SubscriptionStore) ListConfirmedSubscriberEmails(ctx context.Context) ([]domain.ConfirmedSubscriberView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, email
		FROM subscriptions
		WHERE status = $1`,
		domain.StatusConfirmed,
	)
	if err != nil {
		return nil, errors.Join(ErrFailedToListConfirmed, err)
	}
	defer rows.Close()

	var out []domain.ConfirmedSubscriberView
	for rows.Next() {
		var row domain.ConfirmedSubscriberView
		if err := rows.Scan(&row.SubscriberID, &row.Email); err != nil {
			return nil, errors.Join(ErrFailedToListConfirmed, err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrFailedToListConfirmed, err)
	}

	return out, nil
}
