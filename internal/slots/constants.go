package slots

// Reel symbols. Each reel picks uniformly from this set.
const (
	SymbolCherry     = "🍒"
	SymbolLemon      = "🍋"
	SymbolGrapes     = "🍇"
	SymbolWatermelon = "🍉"
	SymbolDiamond    = "💎"
	SymbolEggplant   = "🍆"
)

// Symbols is the reel strip in display order
var Symbols = []string{
	SymbolCherry,
	SymbolLemon,
	SymbolGrapes,
	SymbolWatermelon,
	SymbolDiamond,
	SymbolEggplant,
}

// Payout multipliers. Any eggplant in a matching line downgrades the payout
// below break-even.
const (
	TripleCherryMultiplier   = 5.0
	TripleDiamondMultiplier  = 10.0
	TripleMultiplier         = 3.0
	PairMultiplier           = 2.0
	TripleEggplantMultiplier = 0.9
	PairEggplantMultiplier   = 0.8
)

// Outcome messages
const (
	OutcomeTripleCherry  = "Delicious 🍒🍒🍒!"
	OutcomeTripleDiamond = "BLING BLING BOY 💎💎💎!"
	OutcomeTriple        = "Triple match!"
	OutcomePair          = "Nice! You got a pair."
	OutcomeEggplant      = "Smh, we just got egged :("
	OutcomeNoMatch       = "No match 😢"
)
