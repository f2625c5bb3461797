// Package progression implements the progression engine: scores, streaks,
// XP pools, missions, achievements, the award ledger, and periodic claims.
// The engine is a pure function of (activity log, award ledger); the
// ledger is the only mutable memory of past grants.
package progression

import "github.com/Vindusvisker/productivity-tab-sub000/internal/domain"

// Score formula weights. RawScore = 2·habits + 1·focus − 1·negative.
const (
	ScoreHabitWeight    = 2
	ScoreFocusWeight    = 1
	ScoreNegativeWeight = 1

	// StreakThreshold is the minimum raw score for a day to count
	// toward the productivity streak.
	StreakThreshold = 3
)

// Per-day XP formula weights, floored at zero per day so a bad day
// cannot cancel a good day's XP.
const (
	XPHabitWeight    = 50
	XPFocusWeight    = 25
	XPNegativeWeight = 10
)

// Sanitize clamps malformed (negative) counts to zero. One bad record
// never aborts a recomputation.
func Sanitize(r domain.DailyRecord) domain.DailyRecord {
	if r.HabitsCompleted < 0 {
		r.HabitsCompleted = 0
	}
	if r.FocusSessions < 0 {
		r.FocusSessions = 0
	}
	if r.NegativeActions < 0 {
		r.NegativeActions = 0
	}
	return r
}

// RawScore is the unclamped weighted day score. May be negative; used
// for streak and achievement eligibility, never for display.
func RawScore(r domain.DailyRecord) int {
	return ScoreHabitWeight*r.HabitsCompleted +
		ScoreFocusWeight*r.FocusSessions -
		ScoreNegativeWeight*r.NegativeActions
}

// DisplayScore is RawScore floored at zero. Used only for presentation
// (heatmap intensity); it never feeds an eligibility check.
func DisplayScore(r domain.DailyRecord) int {
	if s := RawScore(r); s > 0 {
		return s
	}
	return 0
}

// DayActivityXP is one day's contribution to the derived daily-activity
// pool, floored at zero independently of other days.
func DayActivityXP(r domain.DailyRecord) int64 {
	xp := XPHabitWeight*r.HabitsCompleted +
		XPFocusWeight*r.FocusSessions -
		XPNegativeWeight*r.NegativeActions
	if xp < 0 {
		return 0
	}
	return int64(xp)
}

// IsCleanDay reports whether a recorded day had zero negative actions.
func IsCleanDay(r domain.DailyRecord) bool {
	return r.NegativeActions == 0
}
