package lootbox

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/Vcvzgbzz/goodieBag/internal/domain"
)

// Roller resolves lootbox draws. It is a pure function of its random source
// and the configured tables: no I/O, no side effects, so a seeded source
// makes every draw reproducible in tests.
type Roller struct {
	rng func() float64 // Injectable for testing
}

// NewRoller creates a roller backed by the shared math/rand source
func NewRoller() *Roller {
	return &Roller{rng: rand.Float64} //nolint:gosec // Game randomness, not security critical
}

// NewRollerWithSource creates a roller with an injected uniform [0,1) source
func NewRollerWithSource(rng func() float64) *Roller {
	return &Roller{rng: rng}
}

// Roll draws a reward from the default rarity distribution
func (r *Roller) Roll() (domain.Reward, error) {
	return r.RollWith(DefaultDistribution)
}

// RollWith draws a reward from a custom rarity distribution (purchasable box
// tiers). Resolution order: rarity, condition, uniform item name, value.
func (r *Roller) RollWith(dist Distribution) (domain.Reward, error) {
	rarity, err := Pick(r.rng, dist)
	if err != nil {
		return domain.Reward{}, fmt.Errorf("resolve rarity: %w", err)
	}

	cond, err := Pick(r.rng, ConditionTable)
	if err != nil {
		return domain.Reward{}, fmt.Errorf("resolve condition: %w", err)
	}

	names := Catalog[rarity]
	if len(names) == 0 {
		return domain.Reward{}, fmt.Errorf("no catalog entries for rarity %s: %w", rarity, ErrEmptyDistribution)
	}
	name := names[r.uniformIndex(len(names))]

	// Missing base price defaults to value 0 rather than failing
	base := BasePrices[rarity]
	value := int(math.Round(float64(base) * cond.Multiplier))

	return domain.Reward{
		Name:      name,
		Rarity:    rarity,
		Condition: cond.Condition,
		Value:     value,
	}, nil
}

// uniformIndex maps one rng draw to an index in [0, n)
func (r *Roller) uniformIndex(n int) int {
	i := int(r.rng() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}
