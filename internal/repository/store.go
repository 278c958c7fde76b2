package repository

import (
	"context"

	"github.com/Vcvzgbzz/goodieBag/internal/domain"
)

// RewardFilter narrows which ledger rows a sell operation matches.
// Zero-valued fields are ignored; an empty filter matches everything.
type RewardFilter struct {
	Name      string
	Condition domain.Condition
	Rarity    domain.Rarity
}

// Store is the per-channel persistence boundary. Every method is
// parameterized by the channel identifier; the core never sees SQL
// identifiers or schema names. Implementations provision the channel's
// containers lazily and idempotently on first use.
type Store interface {
	// EnsureChannel provisions the channel's storage containers if needed.
	// Repeated calls for a known channel are no-ops.
	EnsureChannel(ctx context.Context, channelID string) error

	// GetOrCreateAccount returns the account, creating it with balance 0 if
	// absent. Concurrent first-reads are conflict-ignored, not errors.
	GetOrCreateAccount(ctx context.Context, channelID, userID, username string) (*domain.Account, error)

	// GetInventory aggregates the user's ledger grouped by
	// (name, rarity, condition), ordered by rarity rank then value
	GetInventory(ctx context.Context, channelID, userID string) (*domain.Inventory, error)

	// BeginTx opens a transaction bound to the channel's containers
	BeginTx(ctx context.Context, channelID string) (Tx, error)
}

// Tx is one atomic multi-statement ledger operation. Either Commit applies
// every mutation or Rollback discards them all; no partial state survives.
type Tx interface {
	// RecordOpen upserts the account, incrementing total_opened (creating
	// the row with total_opened=1 when absent)
	RecordOpen(ctx context.Context, userID, username string) error

	// InsertReward appends a ledger row for a drawn reward
	InsertReward(ctx context.Context, userID string, reward domain.Reward) error

	// GetAccountForUpdate returns the account with its row locked, creating
	// it first if absent. The lock serializes concurrent balance mutations
	// for the same user.
	GetAccountForUpdate(ctx context.Context, userID, username string) (*domain.Account, error)

	// AdjustBalance applies balance = balance + delta atomically
	AdjustBalance(ctx context.Context, userID string, delta int) error

	// SelectRewardsForUpdate locks and returns up to limit matching ledger
	// rows (limit <= 0 means no limit). Row locks prevent two racing sells
	// from double-spending the same items.
	SelectRewardsForUpdate(ctx context.Context, userID string, filter RewardFilter, limit int) ([]domain.LedgerEntry, error)

	// DeleteRewards removes ledger rows by id
	DeleteRewards(ctx context.Context, ids []int64) error

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
