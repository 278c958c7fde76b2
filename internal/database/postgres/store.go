package postgres

import (
	"context"
	"fmt"
	"regexp"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Vcvzgbzz/goodieBag/internal/domain"
	"github.com/Vcvzgbzz/goodieBag/internal/logger"
	"github.com/Vcvzgbzz/goodieBag/internal/repository"
)

// channelIDPattern is the only shape of channel identifier accepted into a
// schema name. Anything else is rejected before reaching SQL.
var channelIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// schemaPrefix namespaces every channel schema
const schemaPrefix = "lootbox_"

// Store implements repository.Store on PostgreSQL with a schema per channel.
//
// Provisioned channels are cached in a process-wide set for the lifetime of
// the service; the cache only grows, bounded by the number of distinct
// channels ever seen. A schema dropped out-of-band is not recreated until
// restart.
type Store struct {
	db *pgxpool.Pool

	mu       sync.RWMutex
	channels map[string]struct{}
}

// NewStore creates a channel-namespaced store over the given pool
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{
		db:       db,
		channels: make(map[string]struct{}),
	}
}

// channelTables holds the sanitized identifiers of one channel's containers
type channelTables struct {
	accounts string
	rewards  string
}

// tablesFor validates the channel ID and returns its sanitized identifiers
func tablesFor(channelID string) (channelTables, error) {
	if !channelIDPattern.MatchString(channelID) {
		return channelTables{}, fmt.Errorf("%w: %q", domain.ErrInvalidChannel, channelID)
	}
	schema := schemaPrefix + channelID
	return channelTables{
		accounts: pgx.Identifier{schema, "accounts"}.Sanitize(),
		rewards:  pgx.Identifier{schema, "rewards"}.Sanitize(),
	}, nil
}

// EnsureChannel idempotently provisions the channel's schema and tables.
// Cached; repeated calls for a known channel skip the DDL round-trips.
func (s *Store) EnsureChannel(ctx context.Context, channelID string) error {
	tables, err := tablesFor(channelID)
	if err != nil {
		return err
	}

	s.mu.RLock()
	_, known := s.channels[channelID]
	s.mu.RUnlock()
	if known {
		return nil
	}

	schema := pgx.Identifier{schemaPrefix + channelID}.Sanitize()
	ddl := []string{
		fmt.Sprintf(SQLCreateSchema, schema),
		fmt.Sprintf(SQLCreateAccounts, tables.accounts),
		fmt.Sprintf(SQLCreateRewards, tables.rewards),
		fmt.Sprintf(SQLCreateRewardsIndex, tables.rewards),
	}
	for _, stmt := range ddl {
		if _, err := s.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to provision channel %s: %w", channelID, err)
		}
	}

	s.mu.Lock()
	s.channels[channelID] = struct{}{}
	s.mu.Unlock()

	logger.FromContext(ctx).Info("Channel containers ready", "channel", channelID)
	return nil
}

// GetOrCreateAccount returns the account, inserting a zero-balance row if
// absent. The insert is conflict-ignored so concurrent first-reads for the
// same new user cannot violate the primary key.
func (s *Store) GetOrCreateAccount(ctx context.Context, channelID, userID, username string) (*domain.Account, error) {
	if err := s.EnsureChannel(ctx, channelID); err != nil {
		return nil, err
	}
	tables, err := tablesFor(channelID)
	if err != nil {
		return nil, err
	}

	if _, err := s.db.Exec(ctx, fmt.Sprintf(SQLInsertAccountIgnore, tables.accounts), userID, username); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	var acc domain.Account
	row := s.db.QueryRow(ctx, fmt.Sprintf(SQLSelectAccount, tables.accounts), userID)
	if err := row.Scan(&acc.UserID, &acc.Username, &acc.TotalOpened, &acc.Balance); err != nil {
		return nil, fmt.Errorf("failed to read account: %w", err)
	}
	return &acc, nil
}

// GetInventory aggregates the user's ledger rows into inventory groups
func (s *Store) GetInventory(ctx context.Context, channelID, userID string) (*domain.Inventory, error) {
	if err := s.EnsureChannel(ctx, channelID); err != nil {
		return nil, err
	}
	tables, err := tablesFor(channelID)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx, fmt.Sprintf(SQLSelectInventory, tables.rewards), userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory: %w", err)
	}
	defer rows.Close()

	inv := &domain.Inventory{}
	for rows.Next() {
		var g domain.InventoryGroup
		if err := rows.Scan(&g.Name, &g.Rarity, &g.Condition, &g.Count, &g.TotalValue); err != nil {
			return nil, fmt.Errorf("failed to scan inventory group: %w", err)
		}
		inv.Groups = append(inv.Groups, g)
		inv.TotalWealth += g.TotalValue
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read inventory rows: %w", err)
	}
	return inv, nil
}

// BeginTx opens a transaction bound to the channel's containers
func (s *Store) BeginTx(ctx context.Context, channelID string) (repository.Tx, error) {
	if err := s.EnsureChannel(ctx, channelID); err != nil {
		return nil, err
	}
	tables, err := tablesFor(channelID)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &channelTx{tx: tx, tables: tables}, nil
}
