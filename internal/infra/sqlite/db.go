// Package sqlite provides SQLite-based persistent storage for the
// progression engine. Uses WAL mode for crash-safe writes.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver (no CGO required)
)

// DB wraps a SQLite connection with WAL mode and migrations.
type DB struct {
	db *sql.DB
}

// Open creates or opens the SQLite database at dir/state.db.
// Enables WAL mode, foreign keys, and 5-second busy timeout.
func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dir, "state.db")
	dsn := dbPath + "?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	// Connection pool settings for SQLite
	db.SetMaxOpenConns(1) // SQLite is single-writer
	db.SetMaxIdleConns(1)

	d := &DB{db: db}
	if err := d.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return d, nil
}

// Close cleanly shuts down the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Ping checks database connectivity.
func (d *DB) Ping() error {
	return d.db.Ping()
}

// migrate runs idempotent schema migrations.
func (d *DB) migrate() error {
	migrations := []string{
		// Activity log: one row per calendar day, keyed by ISO date.
		// Written by the producers, only read by the engine.
		`CREATE TABLE IF NOT EXISTS daily_records (
			date             TEXT PRIMARY KEY,
			habits_completed INTEGER NOT NULL DEFAULT 0,
			focus_sessions   INTEGER NOT NULL DEFAULT 0,
			negative_actions INTEGER NOT NULL DEFAULT 0,
			habit_names      TEXT NOT NULL DEFAULT '[]'
		)`,

		// Accumulator XP pools. Monotone: only AddToPool may touch value.
		`CREATE TABLE IF NOT EXISTS xp_pools (
			name  TEXT PRIMARY KEY,
			value INTEGER NOT NULL DEFAULT 0
		)`,

		// Award ledger: one row per credited mission/achievement identity.
		// Append-only; this is the engine's idempotency memory.
		`CREATE TABLE IF NOT EXISTS award_ledger (
			identity    TEXT PRIMARY KEY,
			pool        TEXT NOT NULL,
			amount      INTEGER NOT NULL,
			credited_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_ledger_pool ON award_ledger(pool)`,

		// Key-value store for engine state (periodic claim keys).
		`CREATE TABLE IF NOT EXISTS engine_state (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}

	for _, m := range migrations {
		if _, err := d.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}
	return nil
}

// Reset wipes all persisted engine state: the activity log, every pool,
// the award ledger, and claim state. The only path that shrinks a pool.
func (d *DB) Reset() error {
	for _, table := range []string{"daily_records", "xp_pools", "award_ledger", "engine_state"} {
		if _, err := d.db.Exec(`DELETE FROM ` + table); err != nil {
			return fmt.Errorf("reset %s: %w", table, err)
		}
	}
	return nil
}

// ─── Engine State Key-Value ─────────────────────────────────────────────────

// SetState stores an engine state key-value pair.
func (d *DB) SetState(key, value string) error {
	_, err := d.db.Exec(
		`INSERT INTO engine_state (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value=excluded.value`,
		key, value,
	)
	return err
}

// GetState retrieves an engine state value by key.
// Returns "" if key not found.
func (d *DB) GetState(key string) (string, error) {
	var value string
	err := d.db.QueryRow(`SELECT value FROM engine_state WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}
