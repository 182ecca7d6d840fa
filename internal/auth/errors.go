package auth

import "errors"

var (
	// ErrInvalidCredentials is returned for an unknown username and for a
	// wrong password alike; callers must not be able to tell them apart.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrUnexpected marks infrastructure faults during verification: storage
	// failures, unparseable stored hashes, a crashed comparison worker.
	ErrUnexpected = errors.New("auth: unexpected failure during credential verification")
)
