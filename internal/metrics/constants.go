package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameBoxesOpened     = "lootboxes_opened_total"
	MetricNameRewardsDrawn    = "rewards_drawn_total"
	MetricNameItemsSold       = "items_sold_total"
	MetricNameMoneyEarned     = "money_earned_total"
	MetricNameMoneySpent      = "money_spent_total"
	MetricNameCooldownBlocks  = "cooldown_blocks_total"
	MetricNameSlotsSpins      = "slots_spins_total"
	MetricNameSlotsWagered    = "slots_wagered_total"
	MetricNameSlotsPaidOut    = "slots_paid_out_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextBoxesOpened    = "Total number of lootboxes opened"
	HelpTextRewardsDrawn   = "Total number of rewards drawn"
	HelpTextItemsSold      = "Total number of items sold back"
	HelpTextMoneyEarned    = "Total money credited from selling items"
	HelpTextMoneySpent     = "Total money spent on boxes"
	HelpTextCooldownBlocks = "Total number of free box attempts blocked by cooldown"
	HelpTextSlotsSpins     = "Total number of slots spins settled"
	HelpTextSlotsWagered   = "Total money wagered on slots"
	HelpTextSlotsPaidOut   = "Total money paid out by slots"
)

// Label names
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelTier   = "tier"
	LabelRarity = "rarity"
)

// TierFree labels free box opens in the boxes-opened counter
const TierFree = "free"
