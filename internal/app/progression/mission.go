package progression

import (
	"fmt"
	"time"

	"github.com/Vindusvisker/productivity-tab-sub000/internal/domain"
)

// ─── Week Math ──────────────────────────────────────────────────────────────

// WeekStart returns Monday 00:00 local time for the week containing t.
func WeekStart(t time.Time) time.Time {
	t = t.Local()
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(t.Weekday()) + 6) % 7 // Monday = 0
	return midnight.AddDate(0, 0, -offset)
}

// DaysRemainingInWeek counts days left in the Monday-start week,
// including today. Monday = 7, Sunday = 1.
func DaysRemainingInWeek(t time.Time) int {
	return 7 - (int(t.Local().Weekday())+6)%7
}

// WeekIndex is the number of whole weeks since the Unix epoch for the
// local day containing t. Deterministic selection keys off this.
func WeekIndex(t time.Time) int {
	start := WeekStart(t)
	return int(start.Unix() / 86400 / 7)
}

// WeekKey returns "YYYY-Www" for the ISO week containing t.
func WeekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// ─── Weekly Mission Catalogue ───────────────────────────────────────────────

// weeklyTemplates is the fixed weekly mission pool. MinDays gates which
// templates are still achievable given the days left in the week.
var weeklyTemplates = []domain.WeeklyTemplate{
	{ID: "habits_15", Title: "Habit Machine", Description: "Complete 15 habits this week",
		Category: domain.CategoryHabits, Kind: domain.KindHabitTotal, Target: 15, XPReward: 400, MinDays: 3},
	{ID: "habits_25", Title: "Habit Avalanche", Description: "Complete 25 habits this week",
		Category: domain.CategoryHabits, Kind: domain.KindHabitTotal, Target: 25, XPReward: 650, MinDays: 5},
	{ID: "focus_10", Title: "Deep Worker", Description: "Finish 10 focus sessions this week",
		Category: domain.CategoryFocus, Kind: domain.KindFocusTotal, Target: 10, XPReward: 400, MinDays: 3},
	{ID: "focus_20", Title: "Flow State", Description: "Finish 20 focus sessions this week",
		Category: domain.CategoryFocus, Kind: domain.KindFocusTotal, Target: 20, XPReward: 650, MinDays: 5},
	{ID: "clean_5", Title: "Clean Sweep", Description: "Log 5 clean days this week",
		Category: domain.CategoryClean, Kind: domain.KindCleanDays, Target: 5, XPReward: 500, MinDays: 5},
	{ID: "score_5", Title: "High Five", Description: "Score 3+ on 5 days this week",
		Category: domain.CategoryStreak, Kind: domain.KindScoreDays, Target: 5, XPReward: 500, MinDays: 5},
	{ID: "score_7", Title: "Perfect Week", Description: "Score 3+ every day this week",
		Category: domain.CategoryStreak, Kind: domain.KindScoreDays, Target: 7, XPReward: 1000, MinDays: 7},
}

// fallbackTemplate builds a guaranteed-achievable template scaled to the
// days remaining, for when the achievability filter empties the pool.
// This prevents an impossible mission from ever being issued.
func fallbackTemplate(daysRemaining int) domain.WeeklyTemplate {
	if daysRemaining < 1 {
		daysRemaining = 1
	}
	return domain.WeeklyTemplate{
		ID:          "sprint_habits",
		Title:       "Weekend Sprint",
		Description: fmt.Sprintf("Complete %d habits before Monday", 2*daysRemaining),
		Category:    domain.CategoryHabits,
		Kind:        domain.KindHabitTotal,
		Target:      2 * daysRemaining,
		XPReward:    300,
		MinDays:     1,
	}
}

// SelectWeeklyTemplate picks this week's template deterministically:
// filter to templates achievable in the remaining days, then index the
// filtered list by week number. Same week and same days remaining give
// the same template across independent runs.
func SelectWeeklyTemplate(now time.Time) domain.WeeklyTemplate {
	remaining := DaysRemainingInWeek(now)

	var achievable []domain.WeeklyTemplate
	for _, tmpl := range weeklyTemplates {
		if tmpl.MinDays <= remaining {
			achievable = append(achievable, tmpl)
		}
	}
	if len(achievable) == 0 {
		return fallbackTemplate(remaining)
	}
	return achievable[WeekIndex(now)%len(achievable)]
}

// CurrentWeeklyMission issues the mission for the week containing now,
// with progress summed over this week's records only (Monday through
// end of today).
func CurrentWeeklyMission(records []domain.DailyRecord, now time.Time) domain.WeeklyMission {
	tmpl := SelectWeeklyTemplate(now)
	week := weekRecords(records, now)
	progress := missionProgress(tmpl.Kind, week)

	weekKey := WeekKey(now)
	return domain.WeeklyMission{
		Identity:    fmt.Sprintf("weekly:%s:%s", tmpl.ID, weekKey),
		TemplateID:  tmpl.ID,
		Title:       tmpl.Title,
		Description: tmpl.Description,
		Category:    tmpl.Category,
		WeekKey:     weekKey,
		Progress:    progress,
		Target:      tmpl.Target,
		XPReward:    tmpl.XPReward,
		Completed:   progress >= tmpl.Target,
	}
}

// weekRecords filters the log to the current Monday-start week, through
// the end of today.
func weekRecords(records []domain.DailyRecord, now time.Time) []domain.DailyRecord {
	from := domain.DateOf(WeekStart(now))
	to := domain.DateOf(now)

	var week []domain.DailyRecord
	for _, r := range records {
		if r.Date >= from && r.Date <= to {
			week = append(week, r)
		}
	}
	return week
}

// missionProgress measures progress for a mission kind over a window.
func missionProgress(kind domain.MissionKind, records []domain.DailyRecord) int {
	progress := 0
	for _, r := range records {
		switch kind {
		case domain.KindHabitTotal:
			progress += r.HabitsCompleted
		case domain.KindFocusTotal:
			progress += r.FocusSessions
		case domain.KindCleanDays:
			if IsCleanDay(r) {
				progress++
			}
		case domain.KindScoreDays:
			if RawScore(r) >= StreakThreshold {
				progress++
			}
		}
	}
	return progress
}

// ─── Milestone Missions ─────────────────────────────────────────────────────

// milestoneTable is the fixed, priority-ordered milestone rule table.
// The first rule whose progress is below target is the active milestone;
// evaluation order is part of the contract and must not change.
var milestoneTable = []domain.MilestoneDef{
	{ID: "streak_7", Title: "One Week Strong", Description: "Hold a 7-day streak",
		Category: domain.CategoryStreak, Kind: domain.KindStreak, Target: 7, XPReward: 700},
	{ID: "streak_30", Title: "Thirty and Counting", Description: "Hold a 30-day streak",
		Category: domain.CategoryStreak, Kind: domain.KindStreak, Target: 30, XPReward: 3000},
	{ID: "habits_100", Title: "Century of Habits", Description: "Complete 100 habits in total",
		Category: domain.CategoryHabits, Kind: domain.KindHabitTotal, Target: 100, XPReward: 2000},
	{ID: "focus_50", Title: "Focused Fifty", Description: "Finish 50 focus sessions in total",
		Category: domain.CategoryFocus, Kind: domain.KindFocusTotal, Target: 50, XPReward: 1500},
	{ID: "clean_10", Title: "Ten Clean Days", Description: "Log 10 clean days in total",
		Category: domain.CategoryClean, Kind: domain.KindCleanDays, Target: 10, XPReward: 1000},
}

// milestoneProgress measures a milestone against cumulative stats.
// Streak milestones read the longest streak so that a completed
// milestone stays completed after the streak breaks.
func milestoneProgress(def domain.MilestoneDef, stats domain.Stats) int {
	switch def.Kind {
	case domain.KindStreak:
		return stats.LongestStreak
	case domain.KindHabitTotal:
		return stats.TotalHabits
	case domain.KindFocusTotal:
		return stats.TotalFocus
	case domain.KindCleanDays:
		return stats.CleanDays
	default:
		return 0
	}
}

// MilestoneIdentity is the award ledger key for a milestone.
func MilestoneIdentity(def domain.MilestoneDef) string {
	return fmt.Sprintf("milestone:%s:%d", def.ID, def.Target)
}

// CurrentMilestone returns the first unmet milestone in priority order,
// or nil when every milestone is satisfied.
func CurrentMilestone(stats domain.Stats) *domain.MilestoneMission {
	for _, def := range milestoneTable {
		progress := milestoneProgress(def, stats)
		if progress >= def.Target {
			continue
		}
		return &domain.MilestoneMission{
			Identity:    MilestoneIdentity(def),
			ID:          def.ID,
			Title:       def.Title,
			Description: def.Description,
			Category:    def.Category,
			Progress:    progress,
			Target:      def.Target,
			XPReward:    def.XPReward,
		}
	}
	return nil
}

// CompletedMilestones returns every milestone whose progress has reached
// its target, for award crediting.
func CompletedMilestones(stats domain.Stats) []domain.MilestoneDef {
	var done []domain.MilestoneDef
	for _, def := range milestoneTable {
		if milestoneProgress(def, stats) >= def.Target {
			done = append(done, def)
		}
	}
	return done
}
