package lootbox

import (
	"errors"
	"fmt"
)

// ErrEmptyDistribution is returned when a weighted pick is attempted over a
// distribution whose total weight is not positive. Callers always receive an
// explicit error rather than a zero value.
var ErrEmptyDistribution = errors.New("weighted pick over empty distribution")

// Weighted pairs a candidate value with its relative draw weight.
// A weight of 0 makes the entry unreachable; negative weights are invalid.
type Weighted[T any] struct {
	Value  T
	Weight float64
}

// Pick returns one entry such that P(entry_i) = weight_i / total.
// rng must return a uniform float64 in [0, 1).
//
// Inverse-CDF walk: draw u*total, subtract weights in order, return the first
// entry where the running remainder is below its weight. The draw is
// continuous-valued so tie-breaking never matters.
func Pick[T any](rng func() float64, entries []Weighted[T]) (T, error) {
	var zero T

	total := 0.0
	for _, e := range entries {
		if e.Weight < 0 {
			return zero, fmt.Errorf("negative weight %v: %w", e.Weight, ErrEmptyDistribution)
		}
		total += e.Weight
	}
	if total <= 0 {
		return zero, ErrEmptyDistribution
	}

	remainder := rng() * total
	for _, e := range entries {
		if remainder < e.Weight {
			return e.Value, nil
		}
		remainder -= e.Weight
	}

	// Unreachable for rng in [0,1); guards against a misbehaving source
	// returning exactly 1.0.
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Weight > 0 {
			return entries[i].Value, nil
		}
	}
	return zero, ErrEmptyDistribution
}
