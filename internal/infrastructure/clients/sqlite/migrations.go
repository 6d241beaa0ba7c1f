package sqlite

import (
	"context"
	"fmt"
)

// schema holds the full catalog schema. Statements are idempotent so a
// fresh file and an existing one take the same path.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS businesses (
		id           TEXT PRIMARY KEY,
		name         TEXT NOT NULL,
		category     TEXT NOT NULL,
		address      TEXT NOT NULL DEFAULT '',
		phone        TEXT NOT NULL DEFAULT '',
		email        TEXT NOT NULL DEFAULT '',
		description  TEXT NOT NULL DEFAULT '',
		rating       REAL NOT NULL DEFAULT 0,
		review_count INTEGER NOT NULL DEFAULT 0,
		deals        TEXT NOT NULL DEFAULT '',
		latitude     REAL NOT NULL DEFAULT 0,
		longitude    REAL NOT NULL DEFAULT 0,
		created_at   TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		email         TEXT NOT NULL DEFAULT '',
		created_at    TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id          TEXT PRIMARY KEY,
		business_id TEXT NOT NULL REFERENCES businesses(id),
		user_id     TEXT NOT NULL REFERENCES users(id),
		rating      INTEGER NOT NULL CHECK (rating >= 1 AND rating <= 5),
		comment     TEXT NOT NULL DEFAULT '',
		created_at  TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS bookmarks (
		id          TEXT PRIMARY KEY,
		user_id     TEXT NOT NULL REFERENCES users(id),
		business_id TEXT NOT NULL REFERENCES businesses(id),
		created_at  TIMESTAMP NOT NULL,
		UNIQUE (user_id, business_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_businesses_category ON businesses(category)`,
	`CREATE INDEX IF NOT EXISTS idx_reviews_business ON reviews(business_id)`,
	`CREATE INDEX IF NOT EXISTS idx_reviews_user ON reviews(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_bookmarks_user ON bookmarks(user_id)`,
}

// migrate creates the schema on first run and is a no-op afterwards.
func (c *Client) migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := c.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}
