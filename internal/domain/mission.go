package domain

// MissionCategory tags a mission for display grouping.
type MissionCategory string

const (
	CategoryHabits MissionCategory = "habits"
	CategoryFocus  MissionCategory = "focus"
	CategoryClean  MissionCategory = "clean"
	CategoryStreak MissionCategory = "streak"
)

// MissionKind selects how progress is measured from the log.
type MissionKind string

const (
	// KindHabitTotal sums habitsCompleted over the window.
	KindHabitTotal MissionKind = "habit_total"
	// KindFocusTotal sums focusSessions over the window.
	KindFocusTotal MissionKind = "focus_total"
	// KindCleanDays counts days with zero negative actions.
	KindCleanDays MissionKind = "clean_days"
	// KindScoreDays counts days with raw score at or above the streak threshold.
	KindScoreDays MissionKind = "score_days"
	// KindStreak measures the longest productivity streak (milestones only).
	KindStreak MissionKind = "streak"
)

// WeeklyTemplate is a static weekly mission definition.
// MinDays is the number of days that must remain in the week for the
// template to still be achievable when issued.
type WeeklyTemplate struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    MissionCategory `json:"category"`
	Kind        MissionKind     `json:"kind"`
	Target      int             `json:"target"`
	XPReward    int64           `json:"xp_reward"`
	MinDays     int             `json:"min_days"`
}

// WeeklyMission is the issued mission for the current ISO week.
// Identity = template ID + week key, so a new week is a new identity.
type WeeklyMission struct {
	Identity    string          `json:"identity"`
	TemplateID  string          `json:"template_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    MissionCategory `json:"category"`
	WeekKey     string          `json:"week_key"`
	Progress    int             `json:"progress"`
	Target      int             `json:"target"`
	XPReward    int64           `json:"xp_reward"`
	Completed   bool            `json:"completed"`
}

// MilestoneDef is one rule in the fixed, priority-ordered milestone table.
// Evaluation order is part of the contract.
type MilestoneDef struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    MissionCategory `json:"category"`
	Kind        MissionKind     `json:"kind"`
	Target      int             `json:"target"`
	XPReward    int64           `json:"xp_reward"`
}

// MilestoneMission is the currently shown long-term mission: the first
// milestone in priority order whose progress is below target.
type MilestoneMission struct {
	Identity    string          `json:"identity"`
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    MissionCategory `json:"category"`
	Progress    int             `json:"progress"`
	Target      int             `json:"target"`
	XPReward    int64           `json:"xp_reward"`
}
