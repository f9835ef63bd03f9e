package repository

import (
	"context"

	"github.com/GeeScot/donation-analytics-core/infrastructure/database/postgres"
	"github.com/pkg/errors"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS donation_sets (
		campaign_key TEXT PRIMARY KEY,
		fetched_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS donations (
		id           BIGSERIAL PRIMARY KEY,
		campaign_key TEXT NOT NULL REFERENCES donation_sets (campaign_key) ON DELETE CASCADE,
		external_id  BIGINT NOT NULL,
		amount       DOUBLE PRECISION NOT NULL,
		name         TEXT NOT NULL,
		comment      TEXT,
		completed_at TIMESTAMPTZ NOT NULL,
		updated_at   TIMESTAMPTZ NOT NULL,
		sustained    BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_donations_campaign_key_completed_at
		ON donations (campaign_key, completed_at)`,
	`CREATE TABLE IF NOT EXISTS campaign_analytics (
		id           TEXT PRIMARY KEY,
		campaign_key TEXT NOT NULL UNIQUE,
		data         JSONB NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// EnsureSchema creates the tables used by the repositories if they are
// missing. Safe to run on every startup.
func EnsureSchema(ctx context.Context, conn postgres.Conn) error {
	for _, stmt := range schemaStatements {
		if _, err := conn.Exec(ctx, stmt); err != nil {
			return errors.Wrap(err, "repository: failed to ensure schema")
		}
	}
	return nil
}
