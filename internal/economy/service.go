package economy

import (
	"context"
	"time"

	"github.com/Vcvzgbzz/goodieBag/internal/cooldown"
	"github.com/Vcvzgbzz/goodieBag/internal/domain"
	"github.com/Vcvzgbzz/goodieBag/internal/lootbox"
	"github.com/Vcvzgbzz/goodieBag/internal/repository"
)

// OpenResult contains the result of opening a lootbox
type OpenResult struct {
	Reward domain.Reward `json:"reward"`
	Tier   string        `json:"tier,omitempty"`
}

// Service defines the interface for economy operations
type Service interface {
	// OpenFreeBox opens the cooldown-gated free box
	OpenFreeBox(ctx context.Context, channelID, userID, username string) (*OpenResult, error)

	// BuyBox debits the tier price and opens a priced box; never gated
	BuyBox(ctx context.Context, channelID, userID, username, tier string) (*OpenResult, error)

	// SellItem sells up to quantity copies of one (name, condition) pairing
	SellItem(ctx context.Context, channelID, userID, username, itemName string, condition domain.Condition, quantity int) (*domain.SellReceipt, error)

	// SellAllByRarity liquidates every item of one rarity
	SellAllByRarity(ctx context.Context, channelID, userID, username string, rarity domain.Rarity) (*domain.SellReceipt, error)

	// SellAll liquidates the entire inventory
	SellAll(ctx context.Context, channelID, userID, username string) (*domain.SellReceipt, error)

	// GetBalance reads the account, creating it with balance 0 if absent
	GetBalance(ctx context.Context, channelID, userID, username string) (*domain.Account, error)

	// GetInventory returns the grouped ledger view
	GetInventory(ctx context.Context, channelID, userID string) (*domain.Inventory, error)
}

type service struct {
	store  repository.Store
	guard  *cooldown.Guard
	roller *lootbox.Roller
	now    func() time.Time // Injectable for testing
}

// NewService creates a new economy service
func NewService(store repository.Store, guard *cooldown.Guard, roller *lootbox.Roller) Service {
	return &service{
		store:  store,
		guard:  guard,
		roller: roller,
		now:    time.Now,
	}
}
