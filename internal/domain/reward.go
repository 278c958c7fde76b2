package domain

import "strings"

// Rarity is the draw tier of a reward
type Rarity string

const (
	RarityCommon    Rarity = "Common"
	RarityUncommon  Rarity = "Uncommon"
	RarityRare      Rarity = "Rare"
	RarityEpic      Rarity = "Epic"
	RarityLegendary Rarity = "Legendary"
	RarityMythic    Rarity = "Mythic"
)

// Rarities lists all tiers in ascending draw order
var Rarities = []Rarity{
	RarityCommon,
	RarityUncommon,
	RarityRare,
	RarityEpic,
	RarityLegendary,
	RarityMythic,
}

// RarityRank maps a rarity to its display rank. Higher rank sorts first
// (Mythic > Legendary > Epic > Rare > Uncommon > Common).
var RarityRank = map[Rarity]int{
	RarityMythic:    6,
	RarityLegendary: 5,
	RarityEpic:      4,
	RarityRare:      3,
	RarityUncommon:  2,
	RarityCommon:    1,
}

// ParseRarity matches a rarity name case-insensitively.
// Returns ("", false) for unknown names.
func ParseRarity(s string) (Rarity, bool) {
	for _, r := range Rarities {
		if strings.EqualFold(string(r), s) {
			return r, true
		}
	}
	return "", false
}

// Condition is the wear tag applied to a drawn reward, independent of rarity
type Condition string

const (
	ConditionBattleScarred Condition = "Battle-Scarred"
	ConditionWellWorn      Condition = "Well-Worn"
	ConditionFieldTested   Condition = "Field-Tested"
	ConditionMinimalWear   Condition = "Minimal Wear"
	ConditionFactoryNew    Condition = "Factory-New"
)

// Reward is the immutable result of a lootbox draw.
// Value is fixed at draw time: round(basePrice[rarity] * multiplier[condition]).
type Reward struct {
	Name      string    `json:"name"`
	Rarity    Rarity    `json:"rarity"`
	Condition Condition `json:"condition"`
	Value     int       `json:"value"`
}

// LedgerEntry is a persisted reward row owned by a user.
// The set of a user's entries IS their inventory; aggregates are always
// recomputed from these rows, never stored.
type LedgerEntry struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Rarity    Rarity    `json:"rarity"`
	Condition Condition `json:"condition"`
	Value     int       `json:"value"`
}
