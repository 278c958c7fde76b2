package lootbox

import "github.com/Vcvzgbzz/goodieBag/internal/domain"

// Distribution is a weighted rarity table used for a single draw
type Distribution []Weighted[domain.Rarity]

// DefaultDistribution is the rarity table for the free lootbox
var DefaultDistribution = Distribution{
	{Value: domain.RarityCommon, Weight: 35},
	{Value: domain.RarityUncommon, Weight: 40},
	{Value: domain.RarityRare, Weight: 25},
	{Value: domain.RarityEpic, Weight: 15},
	{Value: domain.RarityLegendary, Weight: 1.25},
	{Value: domain.RarityMythic, Weight: 0.2},
}

// BasePrices is the monetary base value per rarity. A rarity missing from
// this table draws with value 0 rather than failing.
var BasePrices = map[domain.Rarity]int{
	domain.RarityCommon:    250,
	domain.RarityUncommon:  650,
	domain.RarityRare:      1550,
	domain.RarityEpic:      3550,
	domain.RarityLegendary: 8500,
	domain.RarityMythic:    35550,
}

// conditionRow holds the weight and value multiplier of one wear tag
type conditionRow struct {
	Condition  domain.Condition
	Multiplier float64
}

// ConditionTable is the fixed wear distribution, drawn independently of rarity
var ConditionTable = []Weighted[conditionRow]{
	{Value: conditionRow{domain.ConditionBattleScarred, 0.6}, Weight: 20},
	{Value: conditionRow{domain.ConditionWellWorn, 0.8}, Weight: 20},
	{Value: conditionRow{domain.ConditionFieldTested, 1.0}, Weight: 30},
	{Value: conditionRow{domain.ConditionMinimalWear, 1.25}, Weight: 20},
	{Value: conditionRow{domain.ConditionFactoryNew, 1.5}, Weight: 10},
}

// Catalog maps each rarity to its item names. The display name of a drawn
// reward is a uniform pick from the resolved rarity's list.
var Catalog = map[domain.Rarity][]string{
	domain.RarityCommon: {
		"Bottle", "brokenGlass", "Radio", "brainlet", "WELCUM", "cokeHead", "scale",
	},
	domain.RarityUncommon: {
		"USBdrive", "weed", "ShroomDumpy", "JointTime", "KETAMINE", "Lockpicking",
	},
	domain.RarityRare: {
		"gtfo", "methbert", "cokee", "Heroinbert", "RP", "GLOCK", "DES",
	},
	domain.RarityEpic: {
		"plasmagun", "cokeblueprint",
	},
	domain.RarityLegendary: {
		"AR15", "AngleGrinder", "Shotgun", "RAGEEE", "goldenGlorp",
	},
	domain.RarityMythic: {
		"GloriousGlorp", "refinery", "LARGE DIAMOND 💎", "Diamond Studded Rolex ⌚",
	},
}

// BoxTier is a purchasable lootbox: a price plus its own rarity distribution
type BoxTier struct {
	Name         string
	Price        int
	Distribution Distribution
}

// BoxTiers are the purchasable box types, keyed by the rarityType request
// parameter. Priced boxes are never subject to the free-box cooldown.
var BoxTiers = map[string]BoxTier{
	"common": {
		Name:         "common",
		Price:        12,
		Distribution: DefaultDistribution,
	},
	"uncommon": {
		Name:  "uncommon",
		Price: 25,
		Distribution: Distribution{
			{Value: domain.RarityCommon, Weight: 35},
			{Value: domain.RarityUncommon, Weight: 55},
			{Value: domain.RarityRare, Weight: 20},
			{Value: domain.RarityEpic, Weight: 10},
			{Value: domain.RarityLegendary, Weight: 1.25},
			{Value: domain.RarityMythic, Weight: 0.2},
		},
	},
	"rare": {
		Name:  "rare",
		Price: 70,
		Distribution: Distribution{
			{Value: domain.RarityCommon, Weight: 0},
			{Value: domain.RarityUncommon, Weight: 35},
			{Value: domain.RarityRare, Weight: 50},
			{Value: domain.RarityEpic, Weight: 25},
			{Value: domain.RarityLegendary, Weight: 1.25},
			{Value: domain.RarityMythic, Weight: 0.2},
		},
	},
	"epic": {
		Name:  "epic",
		Price: 150,
		Distribution: Distribution{
			{Value: domain.RarityCommon, Weight: 0},
			{Value: domain.RarityUncommon, Weight: 0},
			{Value: domain.RarityRare, Weight: 30},
			{Value: domain.RarityEpic, Weight: 65},
			{Value: domain.RarityLegendary, Weight: 2.25},
			{Value: domain.RarityMythic, Weight: 0.4},
		},
	},
	"legendary": {
		Name:  "legendary",
		Price: 550,
		Distribution: Distribution{
			{Value: domain.RarityCommon, Weight: 0},
			{Value: domain.RarityUncommon, Weight: 0},
			{Value: domain.RarityRare, Weight: 0},
			{Value: domain.RarityEpic, Weight: 20},
			{Value: domain.RarityLegendary, Weight: 70},
			{Value: domain.RarityMythic, Weight: 10},
		},
	},
}

// RarityEmojis decorate text-mode reward messages
var RarityEmojis = map[domain.Rarity]string{
	domain.RarityCommon:    "⚪",
	domain.RarityUncommon:  "🟢",
	domain.RarityRare:      "🔵",
	domain.RarityEpic:      "🟣",
	domain.RarityLegendary: "🟡",
	domain.RarityMythic:    "🔴",
}

// ConditionEmojis decorate text-mode reward messages
var ConditionEmojis = map[domain.Condition]string{
	domain.ConditionBattleScarred: "💀",
	domain.ConditionWellWorn:      "🥲",
	domain.ConditionFieldTested:   "⚙️",
	domain.ConditionMinimalWear:   "✨",
	domain.ConditionFactoryNew:    "💎",
}

// RarityEmoji returns the emoji for a rarity, with a neutral fallback
func RarityEmoji(r domain.Rarity) string {
	if e, ok := RarityEmojis[r]; ok {
		return e
	}
	return "⚫"
}

// ConditionEmoji returns the emoji for a condition, with a fallback
func ConditionEmoji(c domain.Condition) string {
	if e, ok := ConditionEmojis[c]; ok {
		return e
	}
	return "❔"
}
