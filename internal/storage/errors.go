package storage

import "errors"

// Per-operation sentinels keep insert failures attributable: a caller can tell
// a failed subscriber insert from a failed token insert without parsing text.
var (
	ErrFailedToInsertSubscriber = errors.New("storage: failed to insert subscriber")
	ErrDuplicateEmail           = errors.New("storage: email is already subscribed")
	ErrFailedToStoreToken       = errors.New("storage: failed to store confirmation token")
	ErrDuplicateToken           = errors.New("storage: confirmation token already exists")
	ErrFailedToQueryToken       = errors.New("storage: failed to look up confirmation token")
	ErrFailedToMarkConfirmed    = errors.New("storage: failed to mark subscriber confirmed")
	ErrFailedToListConfirmed    = errors.New("storage: failed to list confirmed subscribers")
	ErrFailedToQueryCredentials = errors.New("storage: failed to query stored credentials")
	ErrNestedTransaction        = errors.New("storage: store is already transaction-bound")
)
