package db

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrConflict is a write race the store could not resolve within its
	// retry limit.
	ErrConflict = errors.New("transaction conflict")
)

// DB aggregates the repositories the federation engine consumes. The
// implementation in the impl subpackage is SQLite; handlers only ever
// see this interface.
type DB interface {
	Actors
	Follows
	Videos
	Comments
	Playlists

	// WithTransaction runs f inside one transaction; the DB handed to f
	// routes all calls through it. Transient serialization failures are
	// retried a bounded number of times before surfacing ErrConflict.
	WithTransaction(ctx context.Context, f func(tx DB) error) error
}
