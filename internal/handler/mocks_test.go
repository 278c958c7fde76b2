package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Vcvzgbzz/goodieBag/internal/domain"
	"github.com/Vcvzgbzz/goodieBag/internal/economy"
)

// MockEconomy implements economy.Service for testing
type MockEconomy struct {
	mock.Mock
}

func (m *MockEconomy) OpenFreeBox(ctx context.Context, channelID, userID, username string) (*economy.OpenResult, error) {
	args := m.Called(ctx, channelID, userID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.OpenResult), args.Error(1)
}

func (m *MockEconomy) BuyBox(ctx context.Context, channelID, userID, username, tier string) (*economy.OpenResult, error) {
	args := m.Called(ctx, channelID, userID, username, tier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.OpenResult), args.Error(1)
}

func (m *MockEconomy) SellItem(ctx context.Context, channelID, userID, username, itemName string, condition domain.Condition, quantity int) (*domain.SellReceipt, error) {
	args := m.Called(ctx, channelID, userID, username, itemName, condition, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SellReceipt), args.Error(1)
}

func (m *MockEconomy) SellAllByRarity(ctx context.Context, channelID, userID, username string, rarity domain.Rarity) (*domain.SellReceipt, error) {
	args := m.Called(ctx, channelID, userID, username, rarity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SellReceipt), args.Error(1)
}

func (m *MockEconomy) SellAll(ctx context.Context, channelID, userID, username string) (*domain.SellReceipt, error) {
	args := m.Called(ctx, channelID, userID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SellReceipt), args.Error(1)
}

func (m *MockEconomy) GetBalance(ctx context.Context, channelID, userID, username string) (*domain.Account, error) {
	args := m.Called(ctx, channelID, userID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockEconomy) GetInventory(ctx context.Context, channelID, userID string) (*domain.Inventory, error) {
	args := m.Called(ctx, channelID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Inventory), args.Error(1)
}

// MockSlots implements slots.Service for testing
type MockSlots struct {
	mock.Mock
}

func (m *MockSlots) SpinSlots(ctx context.Context, channelID, userID, username string, bet int) (*domain.SlotsResult, error) {
	args := m.Called(ctx, channelID, userID, username, bet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SlotsResult), args.Error(1)
}
