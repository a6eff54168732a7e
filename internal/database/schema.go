package database

// The two DDL variants keep identical table and column names so every query
// above this package works against either backend. Calendar dates are stored
// as YYYY-MM-DD text and timestamps as RFC3339 text: both sort
// chronologically as strings and scan identically from both drivers.
// Purchase cost is exact decimal text; all money arithmetic happens in Go.

const schemaSQLite = `
CREATE TABLE IF NOT EXISTS items (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	name       TEXT NOT NULL,
	category   TEXT NOT NULL,
	min_level  INTEGER NOT NULL DEFAULT 0,
	is_core    INTEGER NOT NULL DEFAULT 0,
	unit       TEXT NOT NULL DEFAULT 'units'
);

CREATE TABLE IF NOT EXISTS daily_checks (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	date            TEXT NOT NULL,
	item_id         INTEGER NOT NULL REFERENCES items(id) ON DELETE CASCADE,
	status          TEXT NOT NULL,
	quantity_needed INTEGER NOT NULL DEFAULT 0,
	is_urgent       INTEGER NOT NULL DEFAULT 0,
	checked_at      TEXT NOT NULL,
	staff_name      TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_daily_checks_date ON daily_checks(date);

CREATE TABLE IF NOT EXISTS purchases (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	date         TEXT NOT NULL,
	item_id      INTEGER NOT NULL REFERENCES items(id) ON DELETE CASCADE,
	quantity     INTEGER NOT NULL,
	cost         TEXT NOT NULL DEFAULT '0',
	store        TEXT NOT NULL DEFAULT '',
	purchased_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_purchases_date ON purchases(date DESC);

CREATE TABLE IF NOT EXISTS reports (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	date         TEXT NOT NULL,
	staff_name   TEXT NOT NULL DEFAULT '',
	submitted_at TEXT NOT NULL,
	status       TEXT NOT NULL DEFAULT 'pending'
);

CREATE TABLE IF NOT EXISTS staff_accounts (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	username      TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	full_name     TEXT NOT NULL DEFAULT '',
	is_active     INTEGER NOT NULL DEFAULT 1,
	created_at    TEXT NOT NULL
);
`

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS items (
	id         BIGSERIAL PRIMARY KEY,
	name       TEXT NOT NULL,
	category   TEXT NOT NULL,
	min_level  INTEGER NOT NULL DEFAULT 0,
	is_core    BOOLEAN NOT NULL DEFAULT FALSE,
	unit       TEXT NOT NULL DEFAULT 'units'
);

CREATE TABLE IF NOT EXISTS daily_checks (
	id              BIGSERIAL PRIMARY KEY,
	date            TEXT NOT NULL,
	item_id         BIGINT NOT NULL REFERENCES items(id) ON DELETE CASCADE,
	status          TEXT NOT NULL,
	quantity_needed INTEGER NOT NULL DEFAULT 0,
	is_urgent       BOOLEAN NOT NULL DEFAULT FALSE,
	checked_at      TEXT NOT NULL,
	staff_name      TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_daily_checks_date ON daily_checks(date);

CREATE TABLE IF NOT EXISTS purchases (
	id           BIGSERIAL PRIMARY KEY,
	date         TEXT NOT NULL,
	item_id      BIGINT NOT NULL REFERENCES items(id) ON DELETE CASCADE,
	quantity     INTEGER NOT NULL,
	cost         TEXT NOT NULL DEFAULT '0',
	store        TEXT NOT NULL DEFAULT '',
	purchased_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_purchases_date ON purchases(date DESC);

CREATE TABLE IF NOT EXISTS reports (
	id           BIGSERIAL PRIMARY KEY,
	date         TEXT NOT NULL,
	staff_name   TEXT NOT NULL DEFAULT '',
	submitted_at TEXT NOT NULL,
	status       TEXT NOT NULL DEFAULT 'pending'
);

CREATE TABLE IF NOT EXISTS staff_accounts (
	id            BIGSERIAL PRIMARY KEY,
	username      TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	full_name     TEXT NOT NULL DEFAULT '',
	is_active     BOOLEAN NOT NULL DEFAULT TRUE,
	created_at    TEXT NOT NULL
);
`

// applySchema creates the tables for the active backend.
func (d *DB) applySchema() error {
	schema := schemaSQLite
	if d.backend == BackendPostgres {
		schema = schemaPostgres
	}
	_, err := d.conn.Exec(schema)
	return err
}
