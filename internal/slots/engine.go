package slots

import "math"

// SpinOutcome is one raw spin before any money changes hands
type SpinOutcome struct {
	Reels      [3]string
	Multiplier float64
	Outcome    string
}

// Spin draws three reels with the given rng (uniform in [0,1)) and scores
// them. Pure; settlement happens in the service.
func Spin(rng func() float64) SpinOutcome {
	var reels [3]string
	for i := range reels {
		idx := int(rng() * float64(len(Symbols)))
		if idx >= len(Symbols) {
			idx = len(Symbols) - 1
		}
		reels[i] = Symbols[idx]
	}
	mult, outcome := Score(reels)
	return SpinOutcome{Reels: reels, Multiplier: mult, Outcome: outcome}
}

// Score maps a reel line to its payout multiplier and outcome message
func Score(reels [3]string) (float64, string) {
	a, b, c := reels[0], reels[1], reels[2]
	hasEggplant := a == SymbolEggplant || b == SymbolEggplant || c == SymbolEggplant

	if a == b && b == c {
		switch {
		case a == SymbolCherry:
			return TripleCherryMultiplier, OutcomeTripleCherry
		case a == SymbolDiamond:
			return TripleDiamondMultiplier, OutcomeTripleDiamond
		case hasEggplant:
			return TripleEggplantMultiplier, OutcomeEggplant
		default:
			return TripleMultiplier, OutcomeTriple
		}
	}

	if a == b || b == c || a == c {
		if hasEggplant {
			return PairEggplantMultiplier, OutcomeEggplant
		}
		return PairMultiplier, OutcomePair
	}

	return 0, OutcomeNoMatch
}

// Settle computes winnings and the balance delta for a scored spin.
// Winnings round down; a zero multiplier forfeits the whole bet.
func Settle(out SpinOutcome, bet int) (winnings, delta int) {
	winnings = int(math.Floor(float64(bet) * out.Multiplier))
	if out.Multiplier > 0 {
		return winnings, winnings - bet
	}
	return 0, -bet
}
