package progression

import (
	"testing"

	"github.com/Vindusvisker/productivity-tab-sub000/internal/domain"
)

// ─── Day Scores ─────────────────────────────────────────────────────────────

func TestRawScore_Weights(t *testing.T) {
	tests := []struct {
		name   string
		record domain.DailyRecord
		want   int
	}{
		{"empty", domain.DailyRecord{}, 0},
		{"habits only", domain.DailyRecord{HabitsCompleted: 3}, 6},
		{"focus only", domain.DailyRecord{FocusSessions: 4}, 4},
		{"mixed", domain.DailyRecord{HabitsCompleted: 2, FocusSessions: 1, NegativeActions: 1}, 4},
		{"negative total", domain.DailyRecord{NegativeActions: 5}, -5},
	}
	for _, tt := range tests {
		if got := RawScore(tt.record); got != tt.want {
			t.Errorf("%s: RawScore() = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestDisplayScore_FloorsAtZero(t *testing.T) {
	bad := domain.DailyRecord{NegativeActions: 3}
	if got := DisplayScore(bad); got != 0 {
		t.Errorf("DisplayScore() = %d, want 0", got)
	}
	if got := RawScore(bad); got != -3 {
		t.Errorf("RawScore() = %d, want -3 (must stay unclamped)", got)
	}

	good := domain.DailyRecord{HabitsCompleted: 2, FocusSessions: 1}
	if got := DisplayScore(good); got != 5 {
		t.Errorf("DisplayScore() = %d, want 5", got)
	}
}

func TestSanitize_ClampsNegativeCounts(t *testing.T) {
	r := Sanitize(domain.DailyRecord{HabitsCompleted: -2, FocusSessions: -1, NegativeActions: -9})
	if r.HabitsCompleted != 0 || r.FocusSessions != 0 || r.NegativeActions != 0 {
		t.Errorf("Sanitize() = %+v, want all counts 0", r)
	}

	ok := Sanitize(domain.DailyRecord{HabitsCompleted: 2, FocusSessions: 3, NegativeActions: 1})
	if ok.HabitsCompleted != 2 || ok.FocusSessions != 3 || ok.NegativeActions != 1 {
		t.Errorf("Sanitize() mangled valid record: %+v", ok)
	}
}

func TestIsCleanDay(t *testing.T) {
	if !IsCleanDay(domain.DailyRecord{HabitsCompleted: 5}) {
		t.Error("day with zero slips should be clean")
	}
	if IsCleanDay(domain.DailyRecord{NegativeActions: 1}) {
		t.Error("day with a slip should not be clean")
	}
}

// ─── Daily Activity XP ──────────────────────────────────────────────────────

func TestDayActivityXP_Weights(t *testing.T) {
	r := domain.DailyRecord{HabitsCompleted: 2, FocusSessions: 1, NegativeActions: 2}
	if got := DayActivityXP(r); got != 105 {
		t.Errorf("DayActivityXP() = %d, want 105", got)
	}
}

func TestDayActivityXP_FloorsPerDay(t *testing.T) {
	bad := domain.DailyRecord{NegativeActions: 20}
	if got := DayActivityXP(bad); got != 0 {
		t.Errorf("DayActivityXP() = %d, want 0", got)
	}

	// A deeply negative day must not eat into other days.
	records := []domain.DailyRecord{
		{Date: "2026-03-01", HabitsCompleted: 2}, // 100
		{Date: "2026-03-02", NegativeActions: 50},
		{Date: "2026-03-03", FocusSessions: 2}, // 50
	}
	if got := DailyActivityXP(records); got != 150 {
		t.Errorf("DailyActivityXP() = %d, want 150", got)
	}
}

// ─── Levels and Tiers ───────────────────────────────────────────────────────

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		xp   int64
		want int
	}{
		{-100, 1},
		{0, 1},
		{999, 1},
		{1000, 2},
		{4500, 5},
		{99_000, 100},
	}
	for _, tt := range tests {
		if got := LevelForXP(tt.xp); got != tt.want {
			t.Errorf("LevelForXP(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestLevelProgress_RoundTrips(t *testing.T) {
	for _, xp := range []int64{0, 1, 999, 1000, 2750, 123_456} {
		level, current := LevelProgress(xp)
		if back := int64(level-1)*XPPerLevel + current; back != xp {
			t.Errorf("LevelProgress(%d): level=%d current=%d, reassembles to %d", xp, level, current, back)
		}
	}
}

func TestTierForLevel_Breakpoints(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{-3, "Novice"},
		{1, "Novice"},
		{4, "Novice"},
		{5, "Apprentice"},
		{19, "Journeyman"},
		{20, "Expert"},
		{30, "Master"},
		{99, "Grandmaster"},
		{100, "Legend"},
		{5000, "Legend"},
	}
	for _, tt := range tests {
		if got := TierForLevel(tt.level); got.Name != tt.want {
			t.Errorf("TierForLevel(%d) = %s, want %s", tt.level, got.Name, tt.want)
		}
	}
}

// ─── Streak Bonus ───────────────────────────────────────────────────────────

func TestStreakBonusXP(t *testing.T) {
	got := StreakBonusXP(domain.Streaks{Current: 7, CleanCurrent: 3})
	if got != 7*100+3*150 {
		t.Errorf("StreakBonusXP() = %d, want %d", got, 7*100+3*150)
	}
	if StreakBonusXP(domain.Streaks{}) != 0 {
		t.Error("StreakBonusXP() of zero streaks should be 0")
	}
}

// ─── Claim Rewards ──────────────────────────────────────────────────────────

func TestStreakMultiplier_Caps(t *testing.T) {
	if got := StreakMultiplier(0); got != 1.0 {
		t.Errorf("StreakMultiplier(0) = %v, want 1.0", got)
	}
	if got := StreakMultiplier(50); got != MaxStreakMultiplier {
		t.Errorf("StreakMultiplier(50) = %v, want cap %v", got, MaxStreakMultiplier)
	}
}

func TestDailyClaimReward(t *testing.T) {
	tests := []struct {
		streak int
		want   int64
	}{
		{0, 100},
		{5, 150},
		{20, 300},
		{100, 300}, // capped
	}
	for _, tt := range tests {
		if got := DailyClaimReward(tt.streak); got != tt.want {
			t.Errorf("DailyClaimReward(%d) = %d, want %d", tt.streak, got, tt.want)
		}
	}
}

// ─── Stats ──────────────────────────────────────────────────────────────────

func TestBuildStats(t *testing.T) {
	records := []domain.DailyRecord{
		{Date: "2026-03-01", HabitsCompleted: 3, FocusSessions: 1},
		{Date: "2026-03-02", HabitsCompleted: 1, NegativeActions: 2},
		{Date: "2026-03-03", FocusSessions: 4},
	}
	streaks := domain.Streaks{Current: 2, Longest: 5, CleanCurrent: 1, CleanLongest: 4}

	stats := BuildStats(records, streaks, 3, 2500)

	if stats.TotalHabits != 4 || stats.TotalFocus != 5 || stats.TotalNegative != 2 {
		t.Errorf("totals = %d/%d/%d, want 4/5/2", stats.TotalHabits, stats.TotalFocus, stats.TotalNegative)
	}
	if stats.CleanDays != 2 {
		t.Errorf("CleanDays = %d, want 2", stats.CleanDays)
	}
	if stats.BestDayScore != 7 {
		t.Errorf("BestDayScore = %d, want 7", stats.BestDayScore)
	}
	if stats.DaysActive != 3 {
		t.Errorf("DaysActive = %d, want 3", stats.DaysActive)
	}
	if stats.Level != 3 {
		t.Errorf("Level = %d, want 3", stats.Level)
	}
	if stats.LongestStreak != 5 || stats.MissionsCompleted != 3 {
		t.Errorf("streak/missions = %d/%d, want 5/3", stats.LongestStreak, stats.MissionsCompleted)
	}
}
