package economy

// Log message constants
const (
	LogMsgFreeBoxOpened    = "Free lootbox opened"
	LogMsgBoxBought        = "Lootbox bought"
	LogMsgItemsSold        = "Items sold"
	LogMsgCooldownBlocked  = "Free box blocked by cooldown"
	LogMsgCooldownOverride = "Admin overriding cooldown"
)

// Error message format constants
const (
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
	ErrMsgRollRewardFailed        = "failed to roll reward: %w"
	ErrMsgRecordOpenFailed        = "failed to record open: %w"
	ErrMsgInsertRewardFailed      = "failed to insert reward: %w"
	ErrMsgLockAccountFailed       = "failed to lock account: %w"
	ErrMsgAdjustBalanceFailed     = "failed to adjust balance: %w"
	ErrMsgSelectRewardsFailed     = "failed to select rewards: %w"
	ErrMsgDeleteRewardsFailed     = "failed to delete rewards: %w"
)
