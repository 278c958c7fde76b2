package economy

import (
	"context"
	"fmt"

	"github.com/Vcvzgbzz/goodieBag/internal/domain"
	"github.com/Vcvzgbzz/goodieBag/internal/logger"
	"github.com/Vcvzgbzz/goodieBag/internal/metrics"
	"github.com/Vcvzgbzz/goodieBag/internal/repository"
)

// SellItem sells up to quantity copies of one (name, condition) pairing.
// Selling fewer than asked is not an error; selling zero is ErrNoItems.
func (s *service) SellItem(ctx context.Context, channelID, userID, username, itemName string, condition domain.Condition, quantity int) (*domain.SellReceipt, error) {
	if itemName == "" || condition == "" {
		return nil, fmt.Errorf("%w: item name and condition are required", domain.ErrInvalidInput)
	}
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", domain.ErrInvalidInput)
	}

	filter := repository.RewardFilter{Name: itemName, Condition: condition}
	return s.sellMatching(ctx, channelID, userID, username, filter, quantity)
}

// SellAllByRarity liquidates every item of one rarity
func (s *service) SellAllByRarity(ctx context.Context, channelID, userID, username string, rarity domain.Rarity) (*domain.SellReceipt, error) {
	if _, ok := domain.RarityRank[rarity]; !ok {
		return nil, fmt.Errorf("%w: unknown rarity %q", domain.ErrInvalidInput, rarity)
	}
	return s.sellMatching(ctx, channelID, userID, username, repository.RewardFilter{Rarity: rarity}, 0)
}

// SellAll liquidates the entire inventory
func (s *service) SellAll(ctx context.Context, channelID, userID, username string) (*domain.SellReceipt, error) {
	return s.sellMatching(ctx, channelID, userID, username, repository.RewardFilter{}, 0)
}

// sellMatching deletes the matched ledger rows and credits their summed value
// in one transaction. The rows are locked first so a racing sell of the same
// items settles strictly before or after this one, never interleaved; the
// user's total wealth (balance plus remaining ledger value) is unchanged.
func (s *service) sellMatching(ctx context.Context, channelID, userID, username string, filter repository.RewardFilter, limit int) (*domain.SellReceipt, error) {
	log := logger.FromContext(ctx)

	tx, err := s.store.BeginTx(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	entries, err := tx.SelectRewardsForUpdate(ctx, userID, filter, limit)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgSelectRewardsFailed, err)
	}
	if len(entries) == 0 {
		return nil, domain.ErrNoItems
	}

	ids := make([]int64, len(entries))
	total := 0
	sharedRarity := entries[0].Rarity
	for i, e := range entries {
		ids[i] = e.ID
		total += e.Value
		if e.Rarity != sharedRarity {
			sharedRarity = ""
		}
	}

	if err := tx.DeleteRewards(ctx, ids); err != nil {
		return nil, fmt.Errorf(ErrMsgDeleteRewardsFailed, err)
	}
	if err := tx.AdjustBalance(ctx, userID, total); err != nil {
		return nil, fmt.Errorf(ErrMsgAdjustBalanceFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	metrics.RecordSale(len(ids), total)
	log.Info(LogMsgItemsSold,
		"user_id", userID,
		"channel", channelID,
		"username", username,
		"sold", len(ids),
		"value", total)

	return &domain.SellReceipt{Sold: len(ids), Value: total, Rarity: sharedRarity}, nil
}
