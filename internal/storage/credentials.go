package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/letterdrop/pkg/pg"
)

// CredentialStore reads operator credentials. The users table is owned by an
// authentication subsystem elsewhere; this store never writes it.
type CredentialStore struct {
	db DBTX
}

// NewCredentialStore creates a read-only credential store.
func NewCredentialStore(pool *pgxpool.Pool) *CredentialStore {
	return &CredentialStore{db: pool}
}

// FindCredentials looks up the stored password hash for a username. An
// unknown username reports found=false without an error so the verifier can
// run its constant-work path; only infrastructure failures are errors.
func (s *CredentialStore) FindCredentials(ctx context.Context, username string) (userID uuid.UUID, passwordHash string, found bool, err error) {
	err = s.db.QueryRow(ctx, `
		SELECT user_id, password_hash
		FROM users
		WHERE username = $1`,
		username,
	).Scan(&userID, &passwordHash)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return uuid.Nil, "", false, nil
		}
		return uuid.Nil, "", false, errors.Join(ErrFailedToQueryCredentials, err)
	}

	return userID, passwordHash, true, nil
}
