package economy

import (
	"context"
	"fmt"
	"strings"

	"github.com/Vcvzgbzz/goodieBag/internal/cooldown"
	"github.com/Vcvzgbzz/goodieBag/internal/domain"
	"github.com/Vcvzgbzz/goodieBag/internal/logger"
	"github.com/Vcvzgbzz/goodieBag/internal/lootbox"
	"github.com/Vcvzgbzz/goodieBag/internal/metrics"
	"github.com/Vcvzgbzz/goodieBag/internal/repository"
)

// OpenFreeBox opens the free lootbox for a user. The cooldown is consumed
// before the draw and is not refunded on a storage failure; callers retry
// after the window.
func (s *service) OpenFreeBox(ctx context.Context, channelID, userID, username string) (*OpenResult, error) {
	log := logger.FromContext(ctx)

	res := s.guard.Check(userID, username, s.now())
	if !res.Allowed {
		log.Info(LogMsgCooldownBlocked, "user_id", userID, "retry_after", res.RetryAfter)
		metrics.CooldownBlocks.Inc()
		return nil, cooldown.ErrOnCooldown{Remaining: res.RetryAfter}
	}
	if s.guard.IsAdmin(username) {
		log.Info(LogMsgCooldownOverride, "username", username)
	}

	reward, err := s.roller.Roll()
	if err != nil {
		return nil, fmt.Errorf(ErrMsgRollRewardFailed, err)
	}

	if err := s.persistReward(ctx, channelID, userID, username, reward); err != nil {
		return nil, err
	}

	metrics.RecordBoxOpened(metrics.TierFree, string(reward.Rarity))
	log.Info(LogMsgFreeBoxOpened,
		"user_id", userID,
		"channel", channelID,
		"reward", reward.Name,
		"rarity", reward.Rarity,
		"value", reward.Value)

	return &OpenResult{Reward: reward}, nil
}

// BuyBox purchases and opens a priced box tier. The account row stays locked
// from the balance check through the debit, so two concurrent buys cannot
// both spend the same funds.
func (s *service) BuyBox(ctx context.Context, channelID, userID, username, tier string) (*OpenResult, error) {
	log := logger.FromContext(ctx)

	box, ok := lootbox.BoxTiers[strings.ToLower(tier)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidBoxType, tier)
	}

	tx, err := s.store.BeginTx(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	acc, err := tx.GetAccountForUpdate(ctx, userID, username)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLockAccountFailed, err)
	}

	if acc.Balance < box.Price {
		return nil, &domain.InsufficientFundsError{Need: box.Price, Have: acc.Balance}
	}

	if err := tx.AdjustBalance(ctx, userID, -box.Price); err != nil {
		return nil, fmt.Errorf(ErrMsgAdjustBalanceFailed, err)
	}
	if err := tx.RecordOpen(ctx, userID, username); err != nil {
		return nil, fmt.Errorf(ErrMsgRecordOpenFailed, err)
	}

	reward, err := s.roller.RollWith(box.Distribution)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgRollRewardFailed, err)
	}

	if err := tx.InsertReward(ctx, userID, reward); err != nil {
		return nil, fmt.Errorf(ErrMsgInsertRewardFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	metrics.RecordBoxOpened(box.Name, string(reward.Rarity))
	metrics.RecordPurchase(box.Price)
	log.Info(LogMsgBoxBought,
		"user_id", userID,
		"channel", channelID,
		"tier", box.Name,
		"price", box.Price,
		"reward", reward.Name,
		"rarity", reward.Rarity)

	return &OpenResult{Reward: reward, Tier: box.Name}, nil
}

// persistReward records one opened box and its reward atomically
func (s *service) persistReward(ctx context.Context, channelID, userID, username string, reward domain.Reward) error {
	tx, err := s.store.BeginTx(ctx, channelID)
	if err != nil {
		return fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.RecordOpen(ctx, userID, username); err != nil {
		return fmt.Errorf(ErrMsgRecordOpenFailed, err)
	}
	if err := tx.InsertReward(ctx, userID, reward); err != nil {
		return fmt.Errorf(ErrMsgInsertRewardFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}
	return nil
}
