// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domainerror "github.com/crechebooks/reconciliation/internal/domain/error"
)

const (
	txMaxAttempts = 3
	txBaseBackoff = 50 * time.Millisecond
)

// SQLSTATE codes Postgres raises when concurrent transactions collide.
const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgSerializationFailure || pgErr.Code == pgDeadlockDetected
	}
	return false
}

// runInTxWithRetry executes fn in a transaction, retrying serialization
// conflicts with exponential backoff. Business errors pass through on the
// first attempt; exhausted retries surface as a transient store failure.
func runInTxWithRetry(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	backoff := txBaseBackoff

	var err error
	for attempt := 1; attempt <= txMaxAttempts; attempt++ {
		err = db.WithContext(ctx).Transaction(fn)
		if err == nil || !isSerializationFailure(err) {
			return err
		}

		select {
		case <-ctx.Done():
			return domainerror.NewTransientError(err)
		case <-time.After(backoff):
		}
		backoff *= 2
	}

	return domainerror.NewTransientError(err)
}
