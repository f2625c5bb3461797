package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/Vindusvisker/productivity-tab-sub000/internal/domain"
)

// ─── Periodic Claims ────────────────────────────────────────────────────────

// ClaimBonus marks a claim period as consumed and credits the reward in
// one transaction. Returns false when the period key was already claimed
// (no-op). The period key is the claim's natural identity, so this does
// not go through the award ledger.
func (d *DB) ClaimBonus(stateKey, periodKey string, pool domain.Pool, amount int64) (bool, error) {
	if amount <= 0 {
		return false, fmt.Errorf("claim %s: %w", stateKey, domain.ErrNonPositiveGrant)
	}

	tx, err := d.db.Begin()
	if err != nil {
		return false, fmt.Errorf("begin claim: %w", err)
	}
	defer tx.Rollback()

	var current string
	err = tx.QueryRow(`SELECT value FROM engine_state WHERE key = ?`, stateKey).Scan(&current)
	if err != nil && err != sql.ErrNoRows {
		return false, fmt.Errorf("read claim state: %w", err)
	}
	if current == periodKey {
		return false, nil // Already claimed this period
	}

	if _, err := tx.Exec(
		`INSERT INTO engine_state (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value=excluded.value`,
		stateKey, periodKey,
	); err != nil {
		return false, fmt.Errorf("write claim state: %w", err)
	}

	if _, err := tx.Exec(
		`INSERT INTO xp_pools (name, value) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = value + excluded.value`,
		string(pool), amount,
	); err != nil {
		return false, fmt.Errorf("credit pool %s: %w", pool, err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit claim: %w", err)
	}
	return true, nil
}
