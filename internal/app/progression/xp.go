package progression

import (
	"github.com/Vindusvisker/productivity-tab-sub000/internal/domain"
)

// XPPerLevel is the fixed level size. There is no level cap and no
// diminishing-returns curve.
const XPPerLevel = 1000

// Streak bonus weights: the clean streak pays more than the general one.
const (
	StreakBonusPerDay      = 100
	CleanStreakBonusPerDay = 150
)

// DailyActivityXP re-derives the daily-activity pool from the full log.
// Not an accumulator: each day's contribution is floored at zero
// independently, then summed.
func DailyActivityXP(records []domain.DailyRecord) int64 {
	var total int64
	for _, r := range records {
		total += DayActivityXP(Sanitize(r))
	}
	return total
}

// StreakBonusXP re-derives the streak-bonus pool from the two current
// streaks.
func StreakBonusXP(streaks domain.Streaks) int64 {
	return int64(StreakBonusPerDay*streaks.Current + CleanStreakBonusPerDay*streaks.CleanCurrent)
}

// LevelForXP maps total XP to a level: floor(totalXP/1000)+1.
func LevelForXP(totalXP int64) int {
	if totalXP < 0 {
		return 1
	}
	return int(totalXP/XPPerLevel) + 1
}

// LevelProgress splits total XP into level and XP within the level.
// Invariant: (level-1)*1000 + currentLevelXP == totalXP.
func LevelProgress(totalXP int64) (level int, currentLevelXP int64) {
	if totalXP < 0 {
		totalXP = 0
	}
	return LevelForXP(totalXP), totalXP % XPPerLevel
}
