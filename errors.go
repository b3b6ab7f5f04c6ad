package localstore

import "errors"

var (
	// ErrUninitialized is returned when a namespace's key index is read
	// before the namespace was ever initialized. Seeing it usually means
	// the index record was removed from the medium behind the store's back.
	ErrUninitialized = errors.New("localstore: namespace not initialized")

	// ErrReservedKey is returned by Set when the logical key collides with
	// the namespace's own key-index record.
	ErrReservedKey = errors.New("localstore: reserved key")

	// ErrBadData is returned when a persisted value or key index cannot be
	// decoded, i.e. the medium's content was altered outside the store.
	ErrBadData = errors.New("localstore: malformed persisted data")
)
