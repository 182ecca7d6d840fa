package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/dmitrymomot/letterdrop/internal/domain"
)

// CreateSubscriberWithToken inserts a subscriber and its confirmation token
// in one transaction: either both rows exist afterwards or neither does. The
// transaction commits before this returns, so a confirmation email sent next
// always references a durably stored token.
func (s *SubscriptionStore) CreateSubscriberWithToken(ctx context.Context, sub domain.NewSubscriber, token string) (uuid.UUID, error) {
	var subscriberID uuid.UUID

	err := s.InTx(ctx, func(tx *SubscriptionStore) error {
		id, err := tx.InsertSubscriber(ctx, sub)
		if err != nil {
			return err
		}

		if err := tx.StoreToken(ctx, id, token); err != nil {
			return err
		}

		subscriberID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return subscriberID, nil
}
