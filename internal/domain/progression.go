package domain

// ─── XP Pools ───────────────────────────────────────────────────────────────

// Pool names an XP accumulator persisted in storage.
// Accumulator pools only ever grow, and only through a grant or claim.
// The two derived pools (daily activity, streak bonus) are never persisted;
// they are recomputed from the raw log on every pass.
type Pool string

const (
	PoolMission      Pool = "mission_xp"
	PoolAchievement  Pool = "achievement_xp"
	PoolDailyClaim   Pool = "daily_claim_xp"
	PoolWeeklyClaim  Pool = "weekly_claim_xp"
	PoolMonthlyClaim Pool = "monthly_claim_xp"
)

// AccumulatorPools lists every persisted pool.
func AccumulatorPools() []Pool {
	return []Pool{PoolMission, PoolAchievement, PoolDailyClaim, PoolWeeklyClaim, PoolMonthlyClaim}
}

// XPBreakdown is the per-pool composition of total XP.
type XPBreakdown struct {
	DailyActivity int64 `json:"daily_activity"`
	StreakBonus   int64 `json:"streak_bonus"`
	Mission       int64 `json:"mission"`
	Achievement   int64 `json:"achievement"`
	DailyClaim    int64 `json:"daily_claim"`
	WeeklyClaim   int64 `json:"weekly_claim"`
	MonthlyClaim  int64 `json:"monthly_claim"`
}

// Total sums all seven pools.
func (b XPBreakdown) Total() int64 {
	return b.DailyActivity + b.StreakBonus + b.Mission + b.Achievement +
		b.DailyClaim + b.WeeklyClaim + b.MonthlyClaim
}

// ─── Streaks ────────────────────────────────────────────────────────────────

// Streaks holds the two independently tracked run lengths: the general
// productivity streak (raw score at or above threshold) and the clean
// streak (zero negative actions).
type Streaks struct {
	Current      int `json:"current"`
	Longest      int `json:"longest"`
	CleanCurrent int `json:"clean_current"`
	CleanLongest int `json:"clean_longest"`
}

// ─── Tier ───────────────────────────────────────────────────────────────────

// Tier is the display bucket for a level. Pure lookup, stable for all
// levels >= 1.
type Tier struct {
	Name   string `json:"name"`
	Title  string `json:"title"`
	Bucket int    `json:"bucket"`
}

// ─── Profile ────────────────────────────────────────────────────────────────

// Profile is the derived snapshot handed to consumers after a recomputation.
type Profile struct {
	Level          int               `json:"level"`
	CurrentLevelXP int64             `json:"current_level_xp"`
	TotalXP        int64             `json:"total_xp"`
	Tier           string            `json:"tier"`
	Title          string            `json:"title"`
	Streaks        Streaks           `json:"streaks"`
	WeeklyMission  *WeeklyMission    `json:"weekly_mission,omitempty"`
	Milestone      *MilestoneMission `json:"milestone,omitempty"`
	UnlockedIDs    []string          `json:"unlocked_achievement_ids"`
	CompletedCount int               `json:"completed_count"`
	DaysActive     int               `json:"days_active"`
	Breakdown      XPBreakdown       `json:"breakdown"`
}

// ─── Stats ──────────────────────────────────────────────────────────────────

// Stats is the cumulative snapshot fed to achievement predicates and
// milestone progress rules. Everything here is re-derived from the log
// on every pass.
type Stats struct {
	TotalHabits        int   `json:"total_habits"`
	TotalFocus         int   `json:"total_focus"`
	TotalNegative      int   `json:"total_negative"`
	DaysActive         int   `json:"days_active"`
	CleanDays          int   `json:"clean_days"`
	BestDayScore       int   `json:"best_day_score"`
	CurrentStreak      int   `json:"current_streak"`
	LongestStreak      int   `json:"longest_streak"`
	CleanStreak        int   `json:"clean_streak"`
	LongestCleanStreak int   `json:"longest_clean_streak"`
	MissionsCompleted  int   `json:"missions_completed"`
	TotalXP            int64 `json:"total_xp"`
	Level              int   `json:"level"`
}

// ─── Award Ledger ───────────────────────────────────────────────────────────

// AwardEntry records one credited identity. Append-only; the ledger is the
// only mutable memory of past grants the engine is allowed to keep.
type AwardEntry struct {
	Identity   string `json:"identity"`
	Pool       Pool   `json:"pool"`
	Amount     int64  `json:"amount"`
	CreditedAt int64  `json:"credited_at"` // unix seconds
}

// ─── Claims ─────────────────────────────────────────────────────────────────

// ClaimKind selects one of the three periodic bonus windows.
type ClaimKind string

const (
	ClaimDaily   ClaimKind = "daily"
	ClaimWeekly  ClaimKind = "weekly"
	ClaimMonthly ClaimKind = "monthly"
)

// ClaimStatus describes one claim window for the current period.
type ClaimStatus struct {
	Kind      ClaimKind `json:"kind"`
	PeriodKey string    `json:"period_key"`
	Claimable bool      `json:"claimable"`
	Claimed   bool      `json:"claimed"`
	Reward    int64     `json:"reward"`
	Reason    string    `json:"reason,omitempty"` // why not claimable
}
