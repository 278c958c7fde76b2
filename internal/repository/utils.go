package repository

import (
	"context"

	"github.com/Vcvzgbzz/goodieBag/internal/logger"
)

// SafeRollback rolls back a transaction and logs any unexpected error.
// Safe to defer unconditionally; rolling back a committed transaction is a
// no-op for implementations.
func SafeRollback(ctx context.Context, tx Tx) {
	if err := tx.Rollback(ctx); err != nil {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}
