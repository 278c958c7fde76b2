package slots

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/Vcvzgbzz/goodieBag/internal/domain"
	"github.com/Vcvzgbzz/goodieBag/internal/logger"
	"github.com/Vcvzgbzz/goodieBag/internal/metrics"
	"github.com/Vcvzgbzz/goodieBag/internal/repository"
)

// Service defines the interface for slots operations
type Service interface {
	SpinSlots(ctx context.Context, channelID, userID, username string, bet int) (*domain.SlotsResult, error)
}

type service struct {
	store repository.Store
	rng   func() float64 // Injectable for testing
}

// NewService creates a new slots service
func NewService(store repository.Store) Service {
	return &service{store: store, rng: rand.Float64}
}

// NewServiceWithSource creates a slots service with a caller-supplied rng
func NewServiceWithSource(store repository.Store, rng func() float64) Service {
	return &service{store: store, rng: rng}
}

// SpinSlots settles one spin against the user's balance. The account row is
// locked for the balance check and the write is a relative adjustment, so
// concurrent spins for the same user serialize instead of overwriting each
// other.
func (s *service) SpinSlots(ctx context.Context, channelID, userID, username string, bet int) (*domain.SlotsResult, error) {
	log := logger.FromContext(ctx)

	if bet <= 0 {
		return nil, fmt.Errorf("%w: bet must be positive", domain.ErrInvalidInput)
	}

	tx, err := s.store.BeginTx(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	acc, err := tx.GetAccountForUpdate(ctx, userID, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	if acc.Balance < bet {
		return nil, &domain.InsufficientFundsError{Need: bet, Have: acc.Balance}
	}

	out := Spin(s.rng)
	winnings, delta := Settle(out, bet)

	if err := tx.AdjustBalance(ctx, userID, delta); err != nil {
		return nil, fmt.Errorf("failed to adjust balance: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	metrics.RecordSlotsSpin(bet, winnings)

	result := &domain.SlotsResult{
		UserID:     userID,
		Username:   username,
		Reels:      out.Reels,
		BetAmount:  bet,
		Multiplier: out.Multiplier,
		Winnings:   winnings,
		NewBalance: acc.Balance + delta,
		Outcome:    out.Outcome,
	}

	log.Info("Slots spin settled",
		"user_id", userID,
		"bet", bet,
		"multiplier", out.Multiplier,
		"winnings", winnings)

	return result, nil
}
