package domain

// SlotsResult is the outcome of one settled slots spin
type SlotsResult struct {
	UserID     string    `json:"user_id"`
	Username   string    `json:"username"`
	Reels      [3]string `json:"result"`
	BetAmount  int       `json:"betAmount"`
	Multiplier float64   `json:"multiplier"`
	Winnings   int       `json:"winnings"`
	NewBalance int       `json:"newBalance"`
	Outcome    string    `json:"outcome"`
}
