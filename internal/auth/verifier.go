// Package auth verifies operator credentials against stored password hashes.
package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/letterdrop/pkg/async"
	"github.com/dmitrymomot/letterdrop/pkg/logger"
)

// CredentialStorage is the read-only lookup the verifier needs.
type CredentialStorage interface {
	FindCredentials(ctx context.Context, username string) (userID uuid.UUID, passwordHash string, found bool, err error)
}

// dummyHash is a fixed comparison target computed once at startup. When a
// username does not exist, the verifier still compares the candidate password
// against this hash, so one full bcrypt comparison runs on every call and
// response latency cannot reveal whether a username is registered.
var dummyHash = func() []byte {
	hash, err := bcrypt.GenerateFromPassword(
		[]byte("placeholder password to equalize verification work"),
		bcrypt.DefaultCost,
	)
	if err != nil {
		panic(errors.Join(errors.New("auth: failed to precompute dummy hash"), err))
	}
	return hash
}()

// Verifier performs timing-safe credential verification.
type Verifier struct {
	storage CredentialStorage
	compare func(hashedPassword, password []byte) error
	log     *slog.Logger
}

// Option configures the Verifier.
type Option func(*Verifier)

// WithLogger sets a custom logger for the verifier.
func WithLogger(log *slog.Logger) Option {
	return func(v *Verifier) {
		if log != nil {
			v.log = log
		}
	}
}

// WithComparer overrides the hash comparison function. Intended for tests
// that need to observe or speed up the expensive comparison step.
func WithComparer(compare func(hashedPassword, password []byte) error) Option {
	return func(v *Verifier) {
		if compare != nil {
			v.compare = compare
		}
	}
}

// NewVerifier creates a credential verifier backed by the given storage.
func NewVerifier(storage CredentialStorage, opts ...Option) *Verifier {
	v := &Verifier{
		storage: storage,
		compare: bcrypt.CompareHashAndPassword,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

type comparisonInput struct {
	expectedHash []byte
	candidate    string
}

// Verify checks username/password against the stored hash and returns the
// user id on success.
//
// The comparison target is picked before any branching: the stored hash when
// the username exists, the dummy hash otherwise. Exactly one comparison runs
// either way, on its own worker so a slow hash cannot stall unrelated
// requests, and only after it completes does the outcome branch. Unknown
// username and wrong password are indistinguishable to the caller.
func (v *Verifier) Verify(ctx context.Context, username, password string) (uuid.UUID, error) {
	userID, storedHash, found, err := v.storage.FindCredentials(ctx, username)
	if err != nil {
		return uuid.Nil, errors.Join(ErrUnexpected, err)
	}

	expected := dummyHash
	if found {
		expected = []byte(storedHash)
	}

	matched, err := async.Async(ctx, comparisonInput{expectedHash: expected, candidate: password},
		func(_ context.Context, in comparisonInput) (bool, error) {
			err := v.compare(in.expectedHash, []byte(in.candidate))
			switch {
			case err == nil:
				return true, nil
			case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
				return false, nil
			default:
				// Unparseable stored hash, wrong algorithm, truncated value.
				// "We could not check" must never read as "the check failed."
				return false, err
			}
		},
	).Await()
	if err != nil {
		v.log.ErrorContext(ctx, "credential verification failed",
			logger.Error(err),
			logger.Component("auth"),
		)
		return uuid.Nil, errors.Join(ErrUnexpected, err)
	}

	if !found || !matched {
		return uuid.Nil, ErrInvalidCredentials
	}

	return userID, nil
}
