package domain

// Account is the per-channel record for a user.
// Created lazily with balance 0 on first interaction; never deleted.
type Account struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	TotalOpened int    `json:"total_opened"`
	Balance     int    `json:"balance"`
}

// InventoryGroup is one line of a derived inventory: ledger entries grouped
// by (name, rarity, condition) with their count and summed value.
type InventoryGroup struct {
	Name       string    `json:"name"`
	Rarity     Rarity    `json:"rarity"`
	Condition  Condition `json:"condition"`
	Count      int       `json:"count"`
	TotalValue int       `json:"total_value"`
}

// Inventory is the full derived view of a user's ledger, ordered by rarity
// rank (Mythic first) then descending group value.
type Inventory struct {
	Groups      []InventoryGroup `json:"groups"`
	TotalWealth int              `json:"total_wealth"`
}

// SellReceipt summarizes a completed sell operation. Rarity is set when all
// sold rows shared one rarity, for display purposes.
type SellReceipt struct {
	Sold   int    `json:"sold"`
	Value  int    `json:"value"`
	Rarity Rarity `json:"-"`
}
