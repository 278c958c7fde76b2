package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/Vcvzgbzz/goodieBag/internal/domain"
	"github.com/Vcvzgbzz/goodieBag/internal/repository"
)

// channelTx implements repository.Tx over a pgx transaction bound to one
// channel's containers
type channelTx struct {
	tx     pgx.Tx
	tables channelTables
}

func (t *channelTx) RecordOpen(ctx context.Context, userID, username string) error {
	if _, err := t.tx.Exec(ctx, fmt.Sprintf(SQLRecordOpen, t.tables.accounts), userID, username); err != nil {
		return fmt.Errorf("failed to record open: %w", err)
	}
	return nil
}

func (t *channelTx) InsertReward(ctx context.Context, userID string, reward domain.Reward) error {
	_, err := t.tx.Exec(ctx, fmt.Sprintf(SQLInsertReward, t.tables.rewards),
		userID, reward.Name, reward.Rarity, reward.Condition, reward.Value)
	if err != nil {
		return fmt.Errorf("failed to insert reward: %w", err)
	}
	return nil
}

func (t *channelTx) GetAccountForUpdate(ctx context.Context, userID, username string) (*domain.Account, error) {
	if _, err := t.tx.Exec(ctx, fmt.Sprintf(SQLInsertAccountIgnore, t.tables.accounts), userID, username); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	var acc domain.Account
	row := t.tx.QueryRow(ctx, fmt.Sprintf(SQLSelectAccountForUpdate, t.tables.accounts), userID)
	if err := row.Scan(&acc.UserID, &acc.Username, &acc.TotalOpened, &acc.Balance); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to lock account: %w", err)
	}
	return &acc, nil
}

func (t *channelTx) AdjustBalance(ctx context.Context, userID string, delta int) error {
	tag, err := t.tx.Exec(ctx, fmt.Sprintf(SQLAdjustBalance, t.tables.accounts), delta, userID)
	if err != nil {
		return fmt.Errorf("failed to adjust balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

func (t *channelTx) SelectRewardsForUpdate(ctx context.Context, userID string, filter repository.RewardFilter, limit int) ([]domain.LedgerEntry, error) {
	var sb strings.Builder
	sb.WriteString("SELECT id, user_id, reward_name, reward_rarity, reward_condition, reward_value FROM ")
	sb.WriteString(t.tables.rewards)
	sb.WriteString(" WHERE user_id = $1")

	args := []any{userID}
	if filter.Name != "" {
		args = append(args, filter.Name)
		sb.WriteString(" AND reward_name = $" + strconv.Itoa(len(args)))
	}
	if filter.Rarity != "" {
		args = append(args, filter.Rarity)
		sb.WriteString(" AND reward_rarity = $" + strconv.Itoa(len(args)))
	}
	if filter.Condition != "" {
		args = append(args, filter.Condition)
		sb.WriteString(" AND reward_condition = $" + strconv.Itoa(len(args)))
	}
	sb.WriteString(" ORDER BY id DESC")
	if limit > 0 {
		sb.WriteString(" LIMIT " + strconv.Itoa(limit))
	}
	sb.WriteString(" FOR UPDATE")

	rows, err := t.tx.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select rewards: %w", err)
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Name, &e.Rarity, &e.Condition, &e.Value); err != nil {
			return nil, fmt.Errorf("failed to scan reward row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read reward rows: %w", err)
	}
	return entries, nil
}

func (t *channelTx) DeleteRewards(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := t.tx.Exec(ctx, fmt.Sprintf(SQLDeleteRewards, t.tables.rewards), ids); err != nil {
		return fmt.Errorf("failed to delete rewards: %w", err)
	}
	return nil
}

func (t *channelTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback discards the transaction. Rolling back after Commit is a no-op so
// callers can defer it unconditionally.
func (t *channelTx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return err
	}
	return nil
}
