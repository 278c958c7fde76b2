package handler

import (
	"fmt"
	"strings"

	"github.com/Vcvzgbzz/goodieBag/internal/domain"
	"github.com/Vcvzgbzz/goodieBag/internal/lootbox"
)

// Message builders for the chat-overlay response contract. The exact emoji
// and sentence shapes are load-bearing: overlays display these verbatim.

func openedMessage(username string, reward domain.Reward) string {
	re := lootbox.RarityEmoji(reward.Rarity)
	ce := lootbox.ConditionEmoji(reward.Condition)
	return fmt.Sprintf("%s 🎁 %s opened a lootbox and received a %s item: \"%s\" %s (%s) worth 💰%d! %s",
		re, username, strings.ToUpper(string(reward.Rarity)), reward.Name, ce, reward.Condition, reward.Value, re)
}

func boughtMessage(username, tier string, reward domain.Reward) string {
	re := lootbox.RarityEmoji(reward.Rarity)
	ce := lootbox.ConditionEmoji(reward.Condition)
	return fmt.Sprintf("%s 🎁 %s bought a %s lootbox and received a %s item: \"%s\" %s worth 💰%d! %s",
		re, username, tier, strings.ToUpper(string(reward.Rarity)), reward.Name, ce, reward.Value, re)
}

func insufficientFundsMessage(tier string, funds *domain.InsufficientFundsError) string {
	return fmt.Sprintf("💸 You need %d coins to buy a %s lootbox, but only have %d.",
		funds.Need, tier, funds.Have)
}

func balanceMessage(username string, balance int) string {
	return fmt.Sprintf("🏦 %s's balance: 💰%d", username, balance)
}

func emptyInventoryMessage(username string) string {
	return fmt.Sprintf("%s has no loot yet. 🕳️", username)
}

// inventoryMessage renders the grouped inventory as one line, rarities in
// rank order, one entry per (name, condition) group with count and value
func inventoryMessage(username string, inv *domain.Inventory) string {
	byRarity := make(map[domain.Rarity][]string)
	for _, g := range inv.Groups {
		entry := fmt.Sprintf("%s (%s) x%d — 💰%d", g.Name, g.Condition, g.Count, g.TotalValue)
		byRarity[g.Rarity] = append(byRarity[g.Rarity], entry)
	}

	// Rank order, Mythic first.
	var sections []string
	for i := len(domain.Rarities) - 1; i >= 0; i-- {
		r := domain.Rarities[i]
		entries, ok := byRarity[r]
		if !ok {
			continue
		}
		sections = append(sections, fmt.Sprintf("%s %s: %s",
			lootbox.RarityEmoji(r), strings.ToUpper(string(r)), strings.Join(entries, ", ")))
	}

	return fmt.Sprintf("🎒 %s's Inventory → %s | 🏦 Total Value: 💰%d",
		username, strings.Join(sections, " | "), inv.TotalWealth)
}

func soldMessage(username, itemName string, condition domain.Condition, receipt *domain.SellReceipt) string {
	re := lootbox.RarityEmoji(receipt.Rarity)
	ce := lootbox.ConditionEmoji(condition)
	return fmt.Sprintf("✅ %s sold %dx %s \"%s\" %s (%s) for 💰%d!",
		username, receipt.Sold, re, itemName, ce, condition, receipt.Value)
}

func sellNotFoundMessage(username, itemName string, condition domain.Condition, quantity int) string {
	return fmt.Sprintf("❌ %s, you don't have %dx \"%s\" \"%s\" to sell.", username, quantity, string(condition), itemName)
}

func soldAllMessage(username string, receipt *domain.SellReceipt) string {
	return fmt.Sprintf("✅ %s sold ALL items (%d) for 💰%d.", username, receipt.Sold, receipt.Value)
}

func nothingToSellMessage(username string) string {
	return fmt.Sprintf("🫥 %s has no items to sell.", username)
}

func soldRarityMessage(rarity domain.Rarity, receipt *domain.SellReceipt) string {
	return fmt.Sprintf("✅ Sold %d %s item(s) for 💰%d. %s",
		receipt.Sold, rarity, receipt.Value, lootbox.RarityEmoji(rarity))
}

func noRarityItemsMessage(rarity domain.Rarity) string {
	return fmt.Sprintf("🫥 No %s items found to sell.", rarity)
}

func slotsInsufficientFundsMessage(username string, funds *domain.InsufficientFundsError) string {
	return fmt.Sprintf("❌ %s, you don't have enough 💰 to bet %d. Current balance: %d",
		username, funds.Need, funds.Have)
}

func slotsMessage(result *domain.SlotsResult) string {
	display := fmt.Sprintf("[ %s | %s | %s ]", result.Reels[0], result.Reels[1], result.Reels[2])
	settled := fmt.Sprintf("You lost 💀%d", result.BetAmount)
	if result.Multiplier > 0 {
		settled = fmt.Sprintf("You won 💰%d", result.Winnings)
	}
	return fmt.Sprintf("%s — %s %s | New balance: 💼 %d", display, result.Outcome, settled, result.NewBalance)
}
