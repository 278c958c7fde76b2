package economy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Vcvzgbzz/goodieBag/internal/domain"
	"github.com/Vcvzgbzz/goodieBag/internal/repository"
)

func TestSellItem_DeletesMatchedRowsAndCreditsSum(t *testing.T) {
	ctx := context.Background()
	store := new(MockStore)
	tx := new(MockTx)
	svc, _ := newTestService(store)

	matched := []domain.LedgerEntry{
		{ID: 7, UserID: "u1", Name: "GLOCK", Rarity: domain.RarityRare, Condition: domain.ConditionFieldTested, Value: 1550},
		{ID: 3, UserID: "u1", Name: "GLOCK", Rarity: domain.RarityRare, Condition: domain.ConditionFieldTested, Value: 1550},
	}

	store.On("BeginTx", ctx, "chan1").Return(tx, nil)
	tx.On("SelectRewardsForUpdate", ctx, "u1",
		repository.RewardFilter{Name: "GLOCK", Condition: domain.ConditionFieldTested}, 2).
		Return(matched, nil)
	tx.On("DeleteRewards", ctx, []int64{7, 3}).Return(nil)
	tx.On("AdjustBalance", ctx, "u1", 3100).Return(nil)
	tx.On("Commit", ctx).Return(nil)
	tx.On("Rollback", ctx).Return(nil)

	receipt, err := svc.SellItem(ctx, "chan1", "u1", "viewer", "GLOCK", domain.ConditionFieldTested, 2)
	require.NoError(t, err)

	assert.Equal(t, 2, receipt.Sold)
	assert.Equal(t, 3100, receipt.Value)
	assert.Equal(t, domain.RarityRare, receipt.Rarity)
	tx.AssertExpectations(t)
}

func TestSellItem_PartialFillWhenFewerOwned(t *testing.T) {
	ctx := context.Background()
	store := new(MockStore)
	tx := new(MockTx)
	svc, _ := newTestService(store)

	matched := []domain.LedgerEntry{
		{ID: 9, UserID: "u1", Name: "Bottle", Rarity: domain.RarityCommon, Condition: domain.ConditionWellWorn, Value: 200},
	}

	store.On("BeginTx", ctx, "chan1").Return(tx, nil)
	tx.On("SelectRewardsForUpdate", ctx, "u1", mock.Anything, 5).Return(matched, nil)
	tx.On("DeleteRewards", ctx, []int64{9}).Return(nil)
	tx.On("AdjustBalance", ctx, "u1", 200).Return(nil)
	tx.On("Commit", ctx).Return(nil)
	tx.On("Rollback", ctx).Return(nil)

	receipt, err := svc.SellItem(ctx, "chan1", "u1", "viewer", "Bottle", domain.ConditionWellWorn, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, receipt.Sold)
}

func TestSellItem_NoMatchesIsNoItems(t *testing.T) {
	ctx := context.Background()
	store := new(MockStore)
	tx := new(MockTx)
	svc, _ := newTestService(store)

	store.On("BeginTx", ctx, "chan1").Return(tx, nil)
	tx.On("SelectRewardsForUpdate", ctx, "u1", mock.Anything, 1).
		Return([]domain.LedgerEntry{}, nil)
	tx.On("Rollback", ctx).Return(nil)

	_, err := svc.SellItem(ctx, "chan1", "u1", "viewer", "ghost", domain.ConditionFactoryNew, 1)
	assert.ErrorIs(t, err, domain.ErrNoItems)

	tx.AssertNotCalled(t, "DeleteRewards", mock.Anything, mock.Anything)
	tx.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything)
	tx.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestSellItem_ValidatesInput(t *testing.T) {
	store := new(MockStore)
	svc, _ := newTestService(store)
	ctx := context.Background()

	_, err := svc.SellItem(ctx, "chan1", "u1", "viewer", "", domain.ConditionFieldTested, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.SellItem(ctx, "chan1", "u1", "viewer", "Bottle", "", 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.SellItem(ctx, "chan1", "u1", "viewer", "Bottle", domain.ConditionFieldTested, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	store.AssertNotCalled(t, "BeginTx", mock.Anything, mock.Anything)
}

func TestSellAllByRarity_UnknownRarityRejected(t *testing.T) {
	store := new(MockStore)
	svc, _ := newTestService(store)

	_, err := svc.SellAllByRarity(context.Background(), "chan1", "u1", "viewer", "Cursed")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSellAllByRarity_SellsUnlimited(t *testing.T) {
	ctx := context.Background()
	store := new(MockStore)
	tx := new(MockTx)
	svc, _ := newTestService(store)

	matched := []domain.LedgerEntry{
		{ID: 4, Name: "AR15", Rarity: domain.RarityLegendary, Value: 8500},
		{ID: 2, Name: "Shotgun", Rarity: domain.RarityLegendary, Value: 12750},
	}

	store.On("BeginTx", ctx, "chan1").Return(tx, nil)
	tx.On("SelectRewardsForUpdate", ctx, "u1",
		repository.RewardFilter{Rarity: domain.RarityLegendary}, 0).
		Return(matched, nil)
	tx.On("DeleteRewards", ctx, []int64{4, 2}).Return(nil)
	tx.On("AdjustBalance", ctx, "u1", 21250).Return(nil)
	tx.On("Commit", ctx).Return(nil)
	tx.On("Rollback", ctx).Return(nil)

	receipt, err := svc.SellAllByRarity(ctx, "chan1", "u1", "viewer", domain.RarityLegendary)
	require.NoError(t, err)
	assert.Equal(t, 2, receipt.Sold)
	assert.Equal(t, 21250, receipt.Value)
	assert.Equal(t, domain.RarityLegendary, receipt.Rarity)
}

func TestSellAll_EmptyLedgerLeavesBalanceUntouched(t *testing.T) {
	ctx := context.Background()
	store := new(MockStore)
	tx := new(MockTx)
	svc, _ := newTestService(store)

	store.On("BeginTx", ctx, "chan1").Return(tx, nil)
	tx.On("SelectRewardsForUpdate", ctx, "u1", repository.RewardFilter{}, 0).
		Return([]domain.LedgerEntry{}, nil)
	tx.On("Rollback", ctx).Return(nil)

	_, err := svc.SellAll(ctx, "chan1", "u1", "viewer")
	assert.ErrorIs(t, err, domain.ErrNoItems)
	tx.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything)
}

func TestSellAll_MixedRaritiesClearReceiptRarity(t *testing.T) {
	ctx := context.Background()
	store := new(MockStore)
	tx := new(MockTx)
	svc, _ := newTestService(store)

	matched := []domain.LedgerEntry{
		{ID: 11, Rarity: domain.RarityCommon, Value: 150},
		{ID: 10, Rarity: domain.RarityMythic, Value: 53325},
	}

	store.On("BeginTx", ctx, "chan1").Return(tx, nil)
	tx.On("SelectRewardsForUpdate", ctx, "u1", repository.RewardFilter{}, 0).Return(matched, nil)
	tx.On("DeleteRewards", ctx, []int64{11, 10}).Return(nil)
	tx.On("AdjustBalance", ctx, "u1", 53475).Return(nil)
	tx.On("Commit", ctx).Return(nil)
	tx.On("Rollback", ctx).Return(nil)

	receipt, err := svc.SellAll(ctx, "chan1", "u1", "viewer")
	require.NoError(t, err)
	assert.Equal(t, domain.Rarity(""), receipt.Rarity)
}

func TestGetBalance_CreatesAccountLazily(t *testing.T) {
	ctx := context.Background()
	store := new(MockStore)
	svc, _ := newTestService(store)

	store.On("GetOrCreateAccount", ctx, "chan1", "u1", "viewer").
		Return(&domain.Account{UserID: "u1", Username: "viewer", Balance: 0}, nil)

	acc, err := svc.GetBalance(ctx, "chan1", "u1", "viewer")
	require.NoError(t, err)
	assert.Equal(t, 0, acc.Balance)
	store.AssertExpectations(t)
}
