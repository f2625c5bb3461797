package sqlite

import (
	"fmt"
	"time"

	"github.com/Vindusvisker/productivity-tab-sub000/internal/domain"
)

// ─── Award Ledger ───────────────────────────────────────────────────────────

// GrantAward credits an identity exactly once: the ledger insert and the
// pool increment run in one transaction, so a crash can never leave the
// pool incremented without its ledger entry (or the reverse).
// Returns false if the identity was already credited (no-op).
func (d *DB) GrantAward(identity string, pool domain.Pool, amount int64) (bool, error) {
	if amount <= 0 {
		return false, fmt.Errorf("grant %s: %w", identity, domain.ErrNonPositiveGrant)
	}

	tx, err := d.db.Begin()
	if err != nil {
		return false, fmt.Errorf("begin grant: %w", err)
	}
	defer tx.Rollback()

	// Ledger check happens first: if the identity is present the
	// increment is skipped entirely.
	result, err := tx.Exec(
		`INSERT OR IGNORE INTO award_ledger (identity, pool, amount, credited_at)
		 VALUES (?, ?, ?, ?)`,
		identity, string(pool), amount, time.Now().Unix(),
	)
	if err != nil {
		return false, fmt.Errorf("%w: %v", domain.ErrLedgerWriteFailed, err)
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return false, nil // Already credited
	}

	if _, err := tx.Exec(
		`INSERT INTO xp_pools (name, value) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = value + excluded.value`,
		string(pool), amount,
	); err != nil {
		return false, fmt.Errorf("credit pool %s: %w", pool, err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("%w: %v", domain.ErrLedgerWriteFailed, err)
	}
	return true, nil
}

// IsAwarded checks whether an identity has already been credited.
func (d *DB) IsAwarded(identity string) (bool, error) {
	var count int
	err := d.db.QueryRow(`SELECT COUNT(*) FROM award_ledger WHERE identity = ?`, identity).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListAwards returns all ledger entries, most recent first.
func (d *DB) ListAwards() ([]domain.AwardEntry, error) {
	rows, err := d.db.Query(
		`SELECT identity, pool, amount, credited_at FROM award_ledger ORDER BY credited_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.AwardEntry
	for rows.Next() {
		var e domain.AwardEntry
		var pool string
		if err := rows.Scan(&e.Identity, &pool, &e.Amount, &e.CreditedAt); err != nil {
			return nil, err
		}
		e.Pool = domain.Pool(pool)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// AwardCount returns how many identities have been credited to a pool.
func (d *DB) AwardCount(pool domain.Pool) (int, error) {
	var count int
	err := d.db.QueryRow(`SELECT COUNT(*) FROM award_ledger WHERE pool = ?`, string(pool)).Scan(&count)
	return count, err
}
