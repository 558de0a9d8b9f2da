package impl

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/estuaire/vidfed/internal/config"
	"github.com/estuaire/vidfed/internal/db"
)

// conflictRetries bounds the local retry loop for serialization
// failures. These are conflict retries, not I/O retries, so there is no
// backoff between attempts.
const conflictRetries = 5

type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type dbImpl struct {
	Config config.Configuration
	sdb    *sql.DB
	q      queryer
}

func New(cfg config.Configuration, d *sql.DB) db.DB {
	return &dbImpl{
		Config: cfg,
		sdb:    d,
		q:      d,
	}
}

// HandleError takes a database error and returns a higher level error
// that hides the implementation details and can be handled by callers
// without type assertions or error-code checks.
func (d *dbImpl) HandleError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return db.ErrNotFound
	default:
		log.Error().Err(err).Msg("database error")
		return err
	}
}

func isSerializationFailure(err error) bool {
	var se sqlite3.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.Code == sqlite3.ErrBusy || se.Code == sqlite3.ErrLocked
}

// WithTransaction retries the whole body on transient serialization
// failures before giving up with ErrConflict. Nested calls run in the
// enclosing transaction.
func (d *dbImpl) WithTransaction(ctx context.Context, f func(tx db.DB) error) error {
	if d.q != queryer(d.sdb) {
		return f(d)
	}

	var err error
	for attempt := 0; attempt < conflictRetries; attempt++ {
		err = d.runTx(ctx, f)
		if err == nil || !isSerializationFailure(err) {
			return err
		}
		log.Debug().Int("attempt", attempt+1).Msg("retrying conflicting transaction")
	}
	return fmt.Errorf("%w: %v", db.ErrConflict, err)
}

func (d *dbImpl) runTx(ctx context.Context, f func(tx db.DB) error) (err error) {
	tx, err := d.sdb.BeginTx(ctx, nil)
	if err != nil {
		return d.HandleError(err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		} else if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	err = f(&dbImpl{Config: d.Config, sdb: d.sdb, q: tx})
	return
}
