package economy

import (
	"context"

	"github.com/Vcvzgbzz/goodieBag/internal/domain"
	"github.com/Vcvzgbzz/goodieBag/internal/logger"
)

// GetBalance reads the account, creating it lazily. Two concurrent first
// reads both succeed with balance 0.
func (s *service) GetBalance(ctx context.Context, channelID, userID, username string) (*domain.Account, error) {
	acc, err := s.store.GetOrCreateAccount(ctx, channelID, userID, username)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Debug("Balance read",
		"user_id", userID, "channel", channelID, "balance", acc.Balance)
	return acc, nil
}

// GetInventory returns the grouped ledger view for a user
func (s *service) GetInventory(ctx context.Context, channelID, userID string) (*domain.Inventory, error) {
	return s.store.GetInventory(ctx, channelID, userID)
}
