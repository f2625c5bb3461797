package progression

import (
	"github.com/Vindusvisker/productivity-tab-sub000/internal/domain"
)

// BuildStats assembles the cumulative snapshot fed to achievement
// predicates and milestone rules. Records are expected pre-sanitized.
func BuildStats(records []domain.DailyRecord, streaks domain.Streaks, missionsCompleted int, totalXP int64) domain.Stats {
	stats := domain.Stats{
		CurrentStreak:      streaks.Current,
		LongestStreak:      streaks.Longest,
		CleanStreak:        streaks.CleanCurrent,
		LongestCleanStreak: streaks.CleanLongest,
		MissionsCompleted:  missionsCompleted,
		TotalXP:            totalXP,
		Level:              LevelForXP(totalXP),
		DaysActive:         len(records),
	}

	for _, r := range records {
		stats.TotalHabits += r.HabitsCompleted
		stats.TotalFocus += r.FocusSessions
		stats.TotalNegative += r.NegativeActions
		if IsCleanDay(r) {
			stats.CleanDays++
		}
		if s := RawScore(r); s > stats.BestDayScore {
			stats.BestDayScore = s
		}
	}
	return stats
}
