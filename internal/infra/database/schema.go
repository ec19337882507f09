package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Lead fields arrive schema-less, so leads keeps the client payload in a
// jsonb document next to the generated id and timestamps. The unique index
// on lookup_items(kind, name) is what turns a duplicate create into a 409
// instead of a racy check-then-insert.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS leads (
		id         text PRIMARY KEY,
		data       jsonb NOT NULL DEFAULT '{}'::jsonb,
		created_at timestamptz NOT NULL,
		updated_at timestamptz NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS lookup_items (
		id         text PRIMARY KEY,
		kind       text NOT NULL,
		name       text NOT NULL,
		created_at timestamptz NOT NULL,
		updated_at timestamptz NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS lookup_items_kind_name_key
		ON lookup_items (kind, name)`,
	`CREATE TABLE IF NOT EXISTS saved_leads (
		id         text PRIMARY KEY,
		lead_id    text NOT NULL,
		user_id    text NOT NULL,
		created_at timestamptz NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS prospection_leads (
		id         text PRIMARY KEY,
		lead_id    text NOT NULL,
		user_id    text NOT NULL,
		created_at timestamptz NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS contact_history (
		id         text PRIMARY KEY,
		lead_id    text NOT NULL,
		type       text NOT NULL,
		recipient  text NOT NULL DEFAULT '',
		subject    text NOT NULL DEFAULT '',
		content    text NOT NULL DEFAULT '',
		status     text NOT NULL,
		ts         timestamptz NOT NULL,
		user_id    text NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS emails (
		id      text PRIMARY KEY,
		to_addr text NOT NULL,
		subject text NOT NULL DEFAULT '',
		content text NOT NULL DEFAULT '',
		status  text NOT NULL,
		ts      timestamptz NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS postal_mail (
		id      text PRIMARY KEY,
		to_addr text NOT NULL,
		content text NOT NULL DEFAULT '',
		status  text NOT NULL,
		ts      timestamptz NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS admin_users (
		id         text PRIMARY KEY,
		email      text NOT NULL UNIQUE,
		password   text NOT NULL,
		role       text NOT NULL,
		created_at timestamptz NOT NULL,
		updated_at timestamptz NOT NULL
	)`,
}

// EnsureSchema creates every table the portal uses. Statements are
// idempotent and run on each start.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema bootstrap: %w", err)
		}
	}
	return nil
}
