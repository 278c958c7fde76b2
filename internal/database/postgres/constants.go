package postgres

// Per-channel DDL. Identifier interpolation is confined to this package:
// channel IDs are validated against channelIDPattern and every identifier is
// sanitized with pgx.Identifier before formatting.
const (
	// SQLCreateSchema provisions the channel's namespace
	SQLCreateSchema = `CREATE SCHEMA IF NOT EXISTS %s`

	// SQLCreateAccounts provisions the per-channel accounts container
	SQLCreateAccounts = `
		CREATE TABLE IF NOT EXISTS %s (
			user_id      TEXT PRIMARY KEY,
			username     TEXT NOT NULL DEFAULT '',
			total_opened BIGINT NOT NULL DEFAULT 0,
			balance      BIGINT NOT NULL DEFAULT 0
		)
	`

	// SQLCreateRewards provisions the per-channel reward ledger
	SQLCreateRewards = `
		CREATE TABLE IF NOT EXISTS %s (
			id               BIGSERIAL PRIMARY KEY,
			user_id          TEXT NOT NULL,
			reward_name      TEXT NOT NULL,
			reward_rarity    TEXT NOT NULL,
			reward_condition TEXT NOT NULL,
			reward_value     BIGINT NOT NULL,
			awarded_at       TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`

	// SQLCreateRewardsIndex supports the per-user ledger scans
	SQLCreateRewardsIndex = `CREATE INDEX IF NOT EXISTS rewards_user_id_idx ON %s (user_id)`
)

// Account queries
const (
	SQLInsertAccountIgnore = `
		INSERT INTO %s (user_id, username)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO NOTHING
	`

	SQLSelectAccount = `
		SELECT user_id, username, total_opened, balance
		FROM %s
		WHERE user_id = $1
	`

	SQLSelectAccountForUpdate = SQLSelectAccount + ` FOR UPDATE`

	SQLRecordOpen = `
		INSERT INTO %s (user_id, username, total_opened)
		VALUES ($1, $2, 1)
		ON CONFLICT (user_id) DO UPDATE
		SET total_opened = accounts.total_opened + 1,
		    username     = EXCLUDED.username
	`

	SQLAdjustBalance = `UPDATE %s SET balance = balance + $1 WHERE user_id = $2`
)

// Ledger queries
const (
	SQLInsertReward = `
		INSERT INTO %s (user_id, reward_name, reward_rarity, reward_condition, reward_value)
		VALUES ($1, $2, $3, $4, $5)
	`

	SQLDeleteRewards = `DELETE FROM %s WHERE id = ANY($1)`

	SQLSelectInventory = `
		SELECT reward_name, reward_rarity, reward_condition,
		       COUNT(*) AS item_count,
		       COALESCE(SUM(reward_value), 0) AS total_value
		FROM %s
		WHERE user_id = $1
		GROUP BY reward_name, reward_rarity, reward_condition
		ORDER BY CASE reward_rarity
			WHEN 'Mythic'    THEN 6
			WHEN 'Legendary' THEN 5
			WHEN 'Epic'      THEN 4
			WHEN 'Rare'      THEN 3
			WHEN 'Uncommon'  THEN 2
			ELSE 1
		END DESC, total_value DESC
	`
)
