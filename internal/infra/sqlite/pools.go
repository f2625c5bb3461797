package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/Vindusvisker/productivity-tab-sub000/internal/domain"
)

// ─── XP Pools ───────────────────────────────────────────────────────────────
// Pools are monotone accumulators. There is deliberately no SetPool:
// the only write path is an increment, so a pool can never be rewound
// outside a full Reset.

// AddToPool increments a pool by delta and returns the new value.
// Delta must be positive.
func (d *DB) AddToPool(name domain.Pool, delta int64) (int64, error) {
	if delta <= 0 {
		return 0, fmt.Errorf("add to pool %s: %w", name, domain.ErrNonPositiveGrant)
	}
	_, err := d.db.Exec(
		`INSERT INTO xp_pools (name, value) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = value + excluded.value`,
		string(name), delta,
	)
	if err != nil {
		return 0, err
	}
	return d.PoolValue(name)
}

// PoolValue returns the current value of a pool. Missing pools read as 0.
func (d *DB) PoolValue(name domain.Pool) (int64, error) {
	var value int64
	err := d.db.QueryRow(`SELECT value FROM xp_pools WHERE name = ?`, string(name)).Scan(&value)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return value, err
}

// AllPools returns every persisted pool value. Pools never written
// are present in the result with value 0.
func (d *DB) AllPools() (map[domain.Pool]int64, error) {
	pools := make(map[domain.Pool]int64, len(domain.AccumulatorPools()))
	for _, p := range domain.AccumulatorPools() {
		pools[p] = 0
	}

	rows, err := d.db.Query(`SELECT name, value FROM xp_pools`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		var value int64
		if err := rows.Scan(&name, &value); err != nil {
			return nil, err
		}
		pools[domain.Pool(name)] = value
	}
	return pools, rows.Err()
}
