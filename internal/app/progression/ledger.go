package progression

import (
	"fmt"

	"github.com/Vindusvisker/productivity-tab-sub000/internal/domain"
	"github.com/Vindusvisker/productivity-tab-sub000/internal/infra/sqlite"
)

// Awarder is the idempotency guard in front of the accumulator pools.
// Derived "unlocked" status may be recomputed arbitrarily often; credited
// XP must never double-count. GrantOnce is called for every completed
// mission and unlocked achievement on every recomputation pass, and only
// the first call per identity credits anything.
type Awarder struct {
	db *sqlite.DB
}

// NewAwarder creates an awarder over the given store.
func NewAwarder(db *sqlite.DB) *Awarder {
	return &Awarder{db: db}
}

// GrantOnce credits amount to pool for identity, exactly once across all
// recomputations. Returns true only on the first, crediting call.
// Errors are fatal to the pass and must be retried by the caller; a
// silently dropped ledger write is the one way to double-count XP.
func (a *Awarder) GrantOnce(identity string, pool domain.Pool, amount int64) (bool, error) {
	granted, err := a.db.GrantAward(identity, pool, amount)
	if err != nil {
		return false, fmt.Errorf("grant %s: %w", identity, err)
	}
	return granted, nil
}

// Unlocked returns the credited achievement IDs, in ledger order.
func (a *Awarder) Unlocked() ([]string, error) {
	entries, err := a.db.ListAwards()
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, e := range entries {
		if e.Pool == domain.PoolAchievement {
			ids = append(ids, trimIdentityPrefix(e.Identity))
		}
	}
	return ids, nil
}

func trimIdentityPrefix(identity string) string {
	for i := 0; i < len(identity); i++ {
		if identity[i] == ':' {
			return identity[i+1:]
		}
	}
	return identity
}
