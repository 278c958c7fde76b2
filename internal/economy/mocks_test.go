package economy

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Vcvzgbzz/goodieBag/internal/domain"
	"github.com/Vcvzgbzz/goodieBag/internal/repository"
)

// MockStore implements repository.Store for testing
type MockStore struct {
	mock.Mock
}

func (m *MockStore) EnsureChannel(ctx context.Context, channelID string) error {
	args := m.Called(ctx, channelID)
	return args.Error(0)
}

func (m *MockStore) GetOrCreateAccount(ctx context.Context, channelID, userID, username string) (*domain.Account, error) {
	args := m.Called(ctx, channelID, userID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockStore) GetInventory(ctx context.Context, channelID, userID string) (*domain.Inventory, error) {
	args := m.Called(ctx, channelID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Inventory), args.Error(1)
}

func (m *MockStore) BeginTx(ctx context.Context, channelID string) (repository.Tx, error) {
	args := m.Called(ctx, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.Tx), args.Error(1)
}

// MockTx implements repository.Tx for testing
type MockTx struct {
	mock.Mock
}

func (m *MockTx) RecordOpen(ctx context.Context, userID, username string) error {
	args := m.Called(ctx, userID, username)
	return args.Error(0)
}

func (m *MockTx) InsertReward(ctx context.Context, userID string, reward domain.Reward) error {
	args := m.Called(ctx, userID, reward)
	return args.Error(0)
}

func (m *MockTx) GetAccountForUpdate(ctx context.Context, userID, username string) (*domain.Account, error) {
	args := m.Called(ctx, userID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockTx) AdjustBalance(ctx context.Context, userID string, delta int) error {
	args := m.Called(ctx, userID, delta)
	return args.Error(0)
}

func (m *MockTx) SelectRewardsForUpdate(ctx context.Context, userID string, filter repository.RewardFilter, limit int) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, userID, filter, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockTx) DeleteRewards(ctx context.Context, ids []int64) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
