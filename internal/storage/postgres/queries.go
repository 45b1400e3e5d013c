package postgres

const schemaBalances = `
	CREATE TABLE IF NOT EXISTS user_token_balance (
		user_id       BIGINT PRIMARY KEY,
		tariff_tokens BIGINT NOT NULL DEFAULT 0 CHECK (tariff_tokens >= 0),
		extra_tokens  BIGINT NOT NULL DEFAULT 0 CHECK (extra_tokens >= 0),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)
`

const schemaStats = `
	CREATE TABLE IF NOT EXISTS generation_stats (
		day          DATE NOT NULL,
		kind         TEXT NOT NULL,
		detail       TEXT NOT NULL DEFAULT '',
		successful   BIGINT NOT NULL DEFAULT 0,
		unsuccessful BIGINT NOT NULL DEFAULT 0,
		PRIMARY KEY (day, kind, detail)
	)
`

const queryBalance = `
	SELECT tariff_tokens, extra_tokens
	FROM user_token_balance
	WHERE user_id = $1
`

const queryBalanceForUpdate = `
	SELECT tariff_tokens, extra_tokens
	FROM user_token_balance
	WHERE user_id = $1
	FOR UPDATE
`

const queryUpdateBalance = `
	UPDATE user_token_balance
	SET tariff_tokens = $2, extra_tokens = $3, updated_at = now()
	WHERE user_id = $1
`

const queryGrant = `
	INSERT INTO user_token_balance (user_id, tariff_tokens, extra_tokens)
	VALUES ($1, $2, $3)
	ON CONFLICT (user_id) DO UPDATE
	SET tariff_tokens = EXCLUDED.tariff_tokens,
	    extra_tokens  = user_token_balance.extra_tokens + EXCLUDED.extra_tokens,
	    updated_at    = now()
`

const queryRecordStats = `
	INSERT INTO generation_stats (day, kind, detail, successful, unsuccessful)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (day, kind, detail) DO UPDATE
	SET successful   = generation_stats.successful + EXCLUDED.successful,
	    unsuccessful = generation_stats.unsuccessful + EXCLUDED.unsuccessful
`
