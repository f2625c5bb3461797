package progression

import (
	"fmt"

	"github.com/Vindusvisker/productivity-tab-sub000/internal/domain"
)

// AchievementIdentity is the award ledger key for an achievement.
func AchievementIdentity(def domain.AchievementDef) string {
	return fmt.Sprintf("achievement:%s", def.ID)
}

// ─── Achievement Catalogue ──────────────────────────────────────────────────
// 30 achievements across 5 difficulty tiers of 6 each. Unlock state is
// recomputed from stats on every pass; the XP award happens exactly once.

// AllAchievements returns the full achievement catalogue.
func AllAchievements() []domain.AchievementDef {
	return []domain.AchievementDef{
		// ── Bronze (6) ─────────────────────────────────────────────────
		{
			ID: "first_habit", Title: "First Step", Description: "Complete your first habit",
			Tier: domain.TierBronze, Category: domain.CategoryHabits, XPReward: 100,
			Predicate: func(s domain.Stats) bool { return s.TotalHabits >= 1 },
		},
		{
			ID: "first_focus", Title: "Tunnel Vision", Description: "Finish your first focus session",
			Tier: domain.TierBronze, Category: domain.CategoryFocus, XPReward: 100,
			Predicate: func(s domain.Stats) bool { return s.TotalFocus >= 1 },
		},
		{
			ID: "first_clean_day", Title: "Clean Slate", Description: "Log a day with zero slips",
			Tier: domain.TierBronze, Category: domain.CategoryClean, XPReward: 100,
			Predicate: func(s domain.Stats) bool { return s.CleanDays >= 1 },
		},
		{
			ID: "days_3", Title: "Showing Up", Description: "Log activity on 3 days",
			Tier: domain.TierBronze, Category: domain.CategoryHabits, XPReward: 100,
			Predicate: func(s domain.Stats) bool { return s.DaysActive >= 3 },
		},
		{
			ID: "score_5", Title: "Good Day", Description: "Score 5 or more in a single day",
			Tier: domain.TierBronze, Category: domain.CategoryStreak, XPReward: 100,
			Predicate: func(s domain.Stats) bool { return s.BestDayScore >= 5 },
		},
		{
			ID: "level_2", Title: "Leveling Up", Description: "Reach level 2",
			Tier: domain.TierBronze, Category: domain.CategoryStreak, XPReward: 100,
			Predicate: func(s domain.Stats) bool { return s.Level >= 2 },
		},

		// ── Silver (6) ─────────────────────────────────────────────────
		{
			ID: "habits_25", Title: "Habit Collector", Description: "Complete 25 habits in total",
			Tier: domain.TierSilver, Category: domain.CategoryHabits, XPReward: 250,
			Predicate: func(s domain.Stats) bool { return s.TotalHabits >= 25 },
		},
		{
			ID: "focus_10", Title: "Deep Diver", Description: "Finish 10 focus sessions in total",
			Tier: domain.TierSilver, Category: domain.CategoryFocus, XPReward: 250,
			Predicate: func(s domain.Stats) bool { return s.TotalFocus >= 10 },
		},
		{
			ID: "streak_3", Title: "Warming Up", Description: "Hold a 3-day streak",
			Tier: domain.TierSilver, Category: domain.CategoryStreak, XPReward: 250,
			Predicate: func(s domain.Stats) bool { return s.LongestStreak >= 3 },
		},
		{
			ID: "clean_3", Title: "Three Clean", Description: "Hold a 3-day clean streak",
			Tier: domain.TierSilver, Category: domain.CategoryClean, XPReward: 250,
			Predicate: func(s domain.Stats) bool { return s.LongestCleanStreak >= 3 },
		},
		{
			ID: "days_7", Title: "Full Week", Description: "Log activity on 7 days",
			Tier: domain.TierSilver, Category: domain.CategoryHabits, XPReward: 250,
			Predicate: func(s domain.Stats) bool { return s.DaysActive >= 7 },
		},
		{
			ID: "level_5", Title: "Apprentice", Description: "Reach level 5",
			Tier: domain.TierSilver, Category: domain.CategoryStreak, XPReward: 250,
			Predicate: func(s domain.Stats) bool { return s.Level >= 5 },
		},

		// ── Gold (6) ───────────────────────────────────────────────────
		{
			ID: "habits_100", Title: "Habit Centurion", Description: "Complete 100 habits in total",
			Tier: domain.TierGold, Category: domain.CategoryHabits, XPReward: 500,
			Predicate: func(s domain.Stats) bool { return s.TotalHabits >= 100 },
		},
		{
			ID: "focus_50", Title: "Focus Fifty", Description: "Finish 50 focus sessions in total",
			Tier: domain.TierGold, Category: domain.CategoryFocus, XPReward: 500,
			Predicate: func(s domain.Stats) bool { return s.TotalFocus >= 50 },
		},
		{
			ID: "streak_7", Title: "Week Warrior", Description: "Hold a 7-day streak",
			Tier: domain.TierGold, Category: domain.CategoryStreak, XPReward: 500,
			Predicate: func(s domain.Stats) bool { return s.LongestStreak >= 7 },
		},
		{
			ID: "clean_7", Title: "Clean Week", Description: "Hold a 7-day clean streak",
			Tier: domain.TierGold, Category: domain.CategoryClean, XPReward: 500,
			Predicate: func(s domain.Stats) bool { return s.LongestCleanStreak >= 7 },
		},
		{
			ID: "days_30", Title: "Monthly Regular", Description: "Log activity on 30 days",
			Tier: domain.TierGold, Category: domain.CategoryHabits, XPReward: 500,
			Predicate: func(s domain.Stats) bool { return s.DaysActive >= 30 },
		},
		{
			ID: "score_10", Title: "Power Day", Description: "Score 10 or more in a single day",
			Tier: domain.TierGold, Category: domain.CategoryStreak, XPReward: 500,
			Predicate: func(s domain.Stats) bool { return s.BestDayScore >= 10 },
		},

		// ── Platinum (6) ───────────────────────────────────────────────
		{
			ID: "habits_250", Title: "Habit Architect", Description: "Complete 250 habits in total",
			Tier: domain.TierPlatinum, Category: domain.CategoryHabits, XPReward: 1000,
			Predicate: func(s domain.Stats) bool { return s.TotalHabits >= 250 },
		},
		{
			ID: "focus_100", Title: "Hundred Hours Deep", Description: "Finish 100 focus sessions in total",
			Tier: domain.TierPlatinum, Category: domain.CategoryFocus, XPReward: 1000,
			Predicate: func(s domain.Stats) bool { return s.TotalFocus >= 100 },
		},
		{
			ID: "streak_30", Title: "Monthly Machine", Description: "Hold a 30-day streak",
			Tier: domain.TierPlatinum, Category: domain.CategoryStreak, XPReward: 1000,
			Predicate: func(s domain.Stats) bool { return s.LongestStreak >= 30 },
		},
		{
			ID: "clean_30", Title: "Thirty Clean", Description: "Hold a 30-day clean streak",
			Tier: domain.TierPlatinum, Category: domain.CategoryClean, XPReward: 1000,
			Predicate: func(s domain.Stats) bool { return s.LongestCleanStreak >= 30 },
		},
		{
			ID: "days_100", Title: "Hundred Days In", Description: "Log activity on 100 days",
			Tier: domain.TierPlatinum, Category: domain.CategoryHabits, XPReward: 1000,
			Predicate: func(s domain.Stats) bool { return s.DaysActive >= 100 },
		},
		{
			ID: "level_20", Title: "Expert", Description: "Reach level 20",
			Tier: domain.TierPlatinum, Category: domain.CategoryStreak, XPReward: 1000,
			Predicate: func(s domain.Stats) bool { return s.Level >= 20 },
		},

		// ── Legendary (6) ──────────────────────────────────────────────
		{
			ID: "habits_1000", Title: "Thousand Habits", Description: "Complete 1000 habits in total",
			Tier: domain.TierLegendary, Category: domain.CategoryHabits, XPReward: 2500,
			Predicate: func(s domain.Stats) bool { return s.TotalHabits >= 1000 },
		},
		{
			ID: "focus_365", Title: "Year of Focus", Description: "Finish 365 focus sessions in total",
			Tier: domain.TierLegendary, Category: domain.CategoryFocus, XPReward: 2500,
			Predicate: func(s domain.Stats) bool { return s.TotalFocus >= 365 },
		},
		{
			ID: "streak_100", Title: "Centurion", Description: "Hold a 100-day streak",
			Tier: domain.TierLegendary, Category: domain.CategoryStreak, XPReward: 2500,
			Predicate: func(s domain.Stats) bool { return s.LongestStreak >= 100 },
		},
		{
			ID: "clean_100", Title: "Hundred Clean", Description: "Hold a 100-day clean streak",
			Tier: domain.TierLegendary, Category: domain.CategoryClean, XPReward: 2500,
			Predicate: func(s domain.Stats) bool { return s.LongestCleanStreak >= 100 },
		},
		{
			ID: "days_365", Title: "Year of Showing Up", Description: "Log activity on 365 days",
			Tier: domain.TierLegendary, Category: domain.CategoryHabits, XPReward: 2500,
			Predicate: func(s domain.Stats) bool { return s.DaysActive >= 365 },
		},
		{
			ID: "level_50", Title: "Grandmaster", Description: "Reach level 50",
			Tier: domain.TierLegendary, Category: domain.CategoryStreak, XPReward: 2500,
			Predicate: func(s domain.Stats) bool { return s.Level >= 50 },
		},
	}
}
