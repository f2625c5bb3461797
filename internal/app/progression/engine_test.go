package progression

import (
	"errors"
	"testing"
	"time"

	"github.com/Vindusvisker/productivity-tab-sub000/internal/domain"
	"github.com/Vindusvisker/productivity-tab-sub000/internal/infra/bus"
	"github.com/Vindusvisker/productivity-tab-sub000/internal/infra/sqlite"
)

func newTestEngine(t *testing.T) (*Engine, *sqlite.DB, *bus.Bus) {
	t.Helper()
	db, err := sqlite.Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	b := bus.New()
	return NewEngine(db, b), db, b
}

// seedWeek logs seven identical clean days ending at testNow (Sunday):
// 2 habits and 1 focus session per day, no slips.
func seedWeek(t *testing.T, db *sqlite.DB) {
	t.Helper()
	for daysAgo := 0; daysAgo < 7; daysAgo++ {
		if err := db.UpsertDailyRecord(dayRecord(daysAgo, 2, 1, 0)); err != nil {
			t.Fatalf("UpsertDailyRecord() error: %v", err)
		}
	}
}

// ─── Full Scenario ──────────────────────────────────────────────────────────

func TestEngine_SevenDayScenario(t *testing.T) {
	e, _, _ := newTestEngine(t)
	seedWeek(t, e.db)

	profile, err := e.Recompute(testNow)
	if err != nil {
		t.Fatalf("Recompute() error: %v", err)
	}

	// Streaks: 7 consecutive qualifying, clean days ending today.
	if profile.Streaks.Current != 7 || profile.Streaks.CleanCurrent != 7 {
		t.Errorf("streaks = %+v, want current/clean 7/7", profile.Streaks)
	}

	// Derived pools: 7 days of (2*50 + 25) = 875 activity XP, and
	// 7*100 + 7*150 = 1750 streak bonus.
	b := profile.Breakdown
	if b.DailyActivity != 875 {
		t.Errorf("DailyActivity = %d, want 875", b.DailyActivity)
	}
	if b.StreakBonus != 1750 {
		t.Errorf("StreakBonus = %d, want 1750", b.StreakBonus)
	}

	// Missions: weekly fallback (300) plus the streak_7 milestone (700).
	if b.Mission != 1000 {
		t.Errorf("Mission pool = %d, want 1000", b.Mission)
	}
	if profile.WeeklyMission == nil || !profile.WeeklyMission.Completed {
		t.Errorf("weekly mission = %+v, want completed", profile.WeeklyMission)
	}
	if profile.Milestone == nil || profile.Milestone.ID != "streak_30" {
		t.Errorf("milestone = %+v, want streak_30 active", profile.Milestone)
	}

	// Achievements: 12 unlock on this log (including level_2 and
	// level_5 via the re-evaluation cascade) worth 2600 XP.
	if len(profile.UnlockedIDs) != 12 {
		t.Errorf("unlocked = %d (%v), want 12", len(profile.UnlockedIDs), profile.UnlockedIDs)
	}
	if b.Achievement != 2600 {
		t.Errorf("Achievement pool = %d, want 2600", b.Achievement)
	}

	if profile.TotalXP != 6225 {
		t.Errorf("TotalXP = %d, want 6225", profile.TotalXP)
	}
	if profile.Level != 7 || profile.CurrentLevelXP != 225 {
		t.Errorf("level = %d (+%d), want 7 (+225)", profile.Level, profile.CurrentLevelXP)
	}
	if profile.Tier != "Apprentice" {
		t.Errorf("tier = %s, want Apprentice", profile.Tier)
	}
}

func TestEngine_RecomputeIdempotent(t *testing.T) {
	e, db, _ := newTestEngine(t)
	seedWeek(t, e.db)

	first, err := e.Recompute(testNow)
	if err != nil {
		t.Fatalf("Recompute() error: %v", err)
	}

	// Re-running must not re-credit anything.
	for i := 0; i < 5; i++ {
		again, err := e.Recompute(testNow)
		if err != nil {
			t.Fatalf("Recompute() #%d error: %v", i+2, err)
		}
		if again.TotalXP != first.TotalXP {
			t.Fatalf("TotalXP drifted: %d -> %d", first.TotalXP, again.TotalXP)
		}
	}

	count, err := db.AwardCount(domain.PoolMission)
	if err != nil {
		t.Fatalf("AwardCount() error: %v", err)
	}
	if count != 2 {
		t.Errorf("mission awards = %d, want 2 (weekly + streak_7)", count)
	}
}

func TestEngine_FixpointUnlocksLevelAchievements(t *testing.T) {
	e, _, _ := newTestEngine(t)
	seedWeek(t, e.db)

	profile, err := e.Recompute(testNow)
	if err != nil {
		t.Fatalf("Recompute() error: %v", err)
	}

	// level_5 is only reachable after the first award pass raised the
	// level; a single pass would miss it.
	found := false
	for _, id := range profile.UnlockedIDs {
		if id == "level_5" {
			found = true
		}
	}
	if !found {
		t.Errorf("level_5 not unlocked; got %v", profile.UnlockedIDs)
	}
}

func TestEngine_RetroactiveEditShrinksDerivedOnly(t *testing.T) {
	e, db, _ := newTestEngine(t)
	seedWeek(t, e.db)

	if _, err := e.Recompute(testNow); err != nil {
		t.Fatalf("Recompute() error: %v", err)
	}

	// Rewrite history: every day becomes empty.
	for daysAgo := 0; daysAgo < 7; daysAgo++ {
		if err := db.UpsertDailyRecord(dayRecord(daysAgo, 0, 0, 0)); err != nil {
			t.Fatalf("UpsertDailyRecord() error: %v", err)
		}
	}

	profile, err := e.Recompute(testNow)
	if err != nil {
		t.Fatalf("Recompute() error: %v", err)
	}

	// Derived pools follow the log down.
	if profile.Breakdown.DailyActivity != 0 {
		t.Errorf("DailyActivity = %d, want 0", profile.Breakdown.DailyActivity)
	}
	if profile.Streaks.Current != 0 {
		t.Errorf("Current streak = %d, want 0", profile.Streaks.Current)
	}

	// Credited pools never rewind.
	if profile.Breakdown.Achievement != 2600 {
		t.Errorf("Achievement pool = %d, want 2600 (ledger is permanent)", profile.Breakdown.Achievement)
	}
	if profile.Breakdown.Mission != 1000 {
		t.Errorf("Mission pool = %d, want 1000", profile.Breakdown.Mission)
	}
}

// ─── Claims ─────────────────────────────────────────────────────────────────

func TestEngine_DailyClaim(t *testing.T) {
	e, _, _ := newTestEngine(t)
	seedWeek(t, e.db)
	if _, err := e.Recompute(testNow); err != nil {
		t.Fatalf("Recompute() error: %v", err)
	}

	// Streak 7 -> multiplier 1.7 -> 170 XP.
	status, err := e.Claim(domain.ClaimDaily, testNow)
	if err != nil {
		t.Fatalf("Claim(daily) error: %v", err)
	}
	if status.Reward != 170 {
		t.Errorf("daily reward = %d, want 170", status.Reward)
	}

	// Same day again: rejected, pool unchanged.
	if _, err := e.Claim(domain.ClaimDaily, testNow); !errors.Is(err, domain.ErrAlreadyClaimed) {
		t.Errorf("second Claim(daily) error = %v, want ErrAlreadyClaimed", err)
	}

	profile, err := e.Profile(testNow)
	if err != nil {
		t.Fatalf("Profile() error: %v", err)
	}
	if profile.Breakdown.DailyClaim != 170 {
		t.Errorf("DailyClaim pool = %d, want 170", profile.Breakdown.DailyClaim)
	}

	// Next day the window reopens.
	tomorrow := testNow.AddDate(0, 0, 1)
	if _, err := e.Claim(domain.ClaimDaily, tomorrow); err != nil {
		t.Errorf("Claim(daily) next day error: %v", err)
	}
}

func TestEngine_WeeklyClaimGatedOnActivity(t *testing.T) {
	e, _, _ := newTestEngine(t)
	seedWeek(t, e.db) // 875 weekly activity XP, below the 1000 gate
	if _, err := e.Recompute(testNow); err != nil {
		t.Fatalf("Recompute() error: %v", err)
	}

	if _, err := e.Claim(domain.ClaimWeekly, testNow); !errors.Is(err, domain.ErrClaimNotReady) {
		t.Fatalf("Claim(weekly) error = %v, want ErrClaimNotReady", err)
	}

	// One more productive day pushes the week over the gate.
	if err := e.db.UpsertDailyRecord(dayRecord(0, 4, 2, 0)); err != nil {
		t.Fatalf("UpsertDailyRecord() error: %v", err)
	}
	status, err := e.Claim(domain.ClaimWeekly, testNow)
	if err != nil {
		t.Fatalf("Claim(weekly) error: %v", err)
	}
	if status.Reward != 1000 {
		t.Errorf("weekly reward = %d, want 1000", status.Reward)
	}
}

func TestEngine_MonthlyClaimGatedOnLevel(t *testing.T) {
	e, _, _ := newTestEngine(t)

	// Empty log: level 1, far below the gate.
	if _, err := e.Claim(domain.ClaimMonthly, testNow); !errors.Is(err, domain.ErrClaimNotReady) {
		t.Fatalf("Claim(monthly) error = %v, want ErrClaimNotReady", err)
	}

	seedWeek(t, e.db)
	if _, err := e.Recompute(testNow); err != nil {
		t.Fatalf("Recompute() error: %v", err)
	}

	status, err := e.Claim(domain.ClaimMonthly, testNow)
	if err != nil {
		t.Fatalf("Claim(monthly) error: %v", err)
	}
	if status.Reward != 2000 || status.PeriodKey != "2026-03" {
		t.Errorf("monthly claim = %+v, want 2000 XP for 2026-03", status)
	}
}

func TestEngine_ClaimStatuses(t *testing.T) {
	e, _, _ := newTestEngine(t)
	seedWeek(t, e.db)
	if _, err := e.Recompute(testNow); err != nil {
		t.Fatalf("Recompute() error: %v", err)
	}

	statuses, err := e.ClaimStatuses(testNow)
	if err != nil {
		t.Fatalf("ClaimStatuses() error: %v", err)
	}
	if len(statuses) != 3 {
		t.Fatalf("len = %d, want 3", len(statuses))
	}

	byKind := map[domain.ClaimKind]domain.ClaimStatus{}
	for _, s := range statuses {
		byKind[s.Kind] = s
	}
	if !byKind[domain.ClaimDaily].Claimable {
		t.Error("daily should be claimable")
	}
	if byKind[domain.ClaimWeekly].Claimable || byKind[domain.ClaimWeekly].Reason == "" {
		t.Errorf("weekly = %+v, want locked with a reason", byKind[domain.ClaimWeekly])
	}
	if !byKind[domain.ClaimMonthly].Claimable {
		t.Error("monthly should be claimable at level 7")
	}
}

func TestEngine_UnknownClaimKind(t *testing.T) {
	e, _, _ := newTestEngine(t)
	if _, err := e.Claim(domain.ClaimKind("hourly"), testNow); !errors.Is(err, domain.ErrUnknownClaimKind) {
		t.Errorf("Claim(hourly) error = %v, want ErrUnknownClaimKind", err)
	}
}

// ─── Change Bus / Reset ─────────────────────────────────────────────────────

func TestEngine_StartRecomputesOnActivity(t *testing.T) {
	e, db, b := newTestEngine(t)
	e.Start()

	today := domain.DateOf(time.Now())
	if err := db.UpsertDailyRecord(domain.DailyRecord{Date: today, HabitsCompleted: 1}); err != nil {
		t.Fatalf("UpsertDailyRecord() error: %v", err)
	}
	b.Publish(bus.ActivityChanged)

	// Handlers run synchronously on the publisher's goroutine, so the
	// award is visible immediately.
	awarded, err := db.IsAwarded("achievement:first_habit")
	if err != nil {
		t.Fatalf("IsAwarded() error: %v", err)
	}
	if !awarded {
		t.Error("first_habit not credited after ActivityChanged")
	}
}

func TestEngine_Reset(t *testing.T) {
	e, db, _ := newTestEngine(t)
	seedWeek(t, e.db)
	if _, err := e.Recompute(testNow); err != nil {
		t.Fatalf("Recompute() error: %v", err)
	}
	if _, err := e.Claim(domain.ClaimDaily, testNow); err != nil {
		t.Fatalf("Claim() error: %v", err)
	}

	if err := e.Reset(); err != nil {
		t.Fatalf("Reset() error: %v", err)
	}

	profile, err := e.Profile(testNow)
	if err != nil {
		t.Fatalf("Profile() error: %v", err)
	}
	if profile.TotalXP != 0 || profile.Level != 1 || profile.DaysActive != 0 {
		t.Errorf("profile after reset = %+v, want zeroed", profile)
	}

	// Claim state was wiped too: today is claimable again.
	if _, err := e.Claim(domain.ClaimDaily, testNow); err != nil {
		t.Errorf("Claim(daily) after reset error: %v", err)
	}
	count, _ := db.RecordCount()
	if count != 0 {
		t.Errorf("RecordCount() = %d, want 0", count)
	}
}

// ─── Heatmap ────────────────────────────────────────────────────────────────

func TestEngine_Heatmap(t *testing.T) {
	e, db, _ := newTestEngine(t)
	if err := db.UpsertDailyRecord(domain.DailyRecord{Date: "2026-03-01", NegativeActions: 4}); err != nil {
		t.Fatalf("UpsertDailyRecord() error: %v", err)
	}
	if err := db.UpsertDailyRecord(domain.DailyRecord{Date: "2026-03-02", HabitsCompleted: 3}); err != nil {
		t.Fatalf("UpsertDailyRecord() error: %v", err)
	}

	scores, err := e.Heatmap()
	if err != nil {
		t.Fatalf("Heatmap() error: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("len = %d, want 2", len(scores))
	}
	if scores[0].Raw != -4 || scores[0].Display != 0 {
		t.Errorf("bad day = raw %d display %d, want -4/0", scores[0].Raw, scores[0].Display)
	}
	if scores[1].Raw != 6 || scores[1].Display != 6 {
		t.Errorf("good day = raw %d display %d, want 6/6", scores[1].Raw, scores[1].Display)
	}
}
