package progression

import (
	"testing"
	"time"

	"github.com/Vindusvisker/productivity-tab-sub000/internal/domain"
)

// testNow is a fixed Sunday noon so week math is stable in tests.
var testNow = time.Date(2026, 3, 8, 12, 0, 0, 0, time.Local)

// dayRecord builds a qualifying record offset days back from testNow.
func dayRecord(daysAgo int, habits, focus, slips int) domain.DailyRecord {
	return domain.DailyRecord{
		Date:            domain.DateOf(testNow.AddDate(0, 0, -daysAgo)),
		HabitsCompleted: habits,
		FocusSessions:   focus,
		NegativeActions: slips,
	}
}

// ─── Current Streak ─────────────────────────────────────────────────────────

func TestStreaks_Empty(t *testing.T) {
	s := Streaks(nil, testNow)
	if s.Current != 0 || s.Longest != 0 || s.CleanCurrent != 0 || s.CleanLongest != 0 {
		t.Errorf("Streaks(nil) = %+v, want all zero", s)
	}
}

func TestStreaks_ConsecutiveRunThroughToday(t *testing.T) {
	records := []domain.DailyRecord{
		dayRecord(0, 2, 0, 0), // today, score 4
		dayRecord(1, 2, 1, 0),
		dayRecord(2, 3, 0, 0),
	}
	s := Streaks(records, testNow)
	if s.Current != 3 {
		t.Errorf("Current = %d, want 3", s.Current)
	}
}

func TestStreaks_TodayNotFinalIsSkippedNotBroken(t *testing.T) {
	// Today scores below the threshold, but the day isn't over:
	// the streak from yesterday must survive.
	records := []domain.DailyRecord{
		dayRecord(0, 0, 1, 0), // today, score 1 < threshold
		dayRecord(1, 2, 0, 0),
		dayRecord(2, 2, 0, 0),
	}
	s := Streaks(records, testNow)
	if s.Current != 2 {
		t.Errorf("Current = %d, want 2 (today skipped, not broken)", s.Current)
	}
}

func TestStreaks_YesterdayBelowThresholdBreaks(t *testing.T) {
	records := []domain.DailyRecord{
		dayRecord(0, 2, 0, 0),
		dayRecord(1, 0, 1, 0), // score 1, final day, breaks
		dayRecord(2, 2, 0, 0),
	}
	s := Streaks(records, testNow)
	if s.Current != 1 {
		t.Errorf("Current = %d, want 1", s.Current)
	}
}

func TestStreaks_CalendarGapBreaks(t *testing.T) {
	records := []domain.DailyRecord{
		dayRecord(0, 2, 0, 0),
		dayRecord(1, 2, 0, 0),
		// day 2 missing
		dayRecord(3, 2, 0, 0),
	}
	s := Streaks(records, testNow)
	if s.Current != 2 {
		t.Errorf("Current = %d, want 2 (gap must break the run)", s.Current)
	}
}

func TestStreaks_StaleRunDoesNotCount(t *testing.T) {
	// Last activity was three days ago: no current streak.
	records := []domain.DailyRecord{
		dayRecord(3, 2, 0, 0),
		dayRecord(4, 2, 0, 0),
	}
	s := Streaks(records, testNow)
	if s.Current != 0 {
		t.Errorf("Current = %d, want 0", s.Current)
	}
	if s.Longest != 2 {
		t.Errorf("Longest = %d, want 2", s.Longest)
	}
}

func TestStreaks_AnchoredAtYesterday(t *testing.T) {
	// No record for today yet: a run ending yesterday is still current.
	records := []domain.DailyRecord{
		dayRecord(1, 2, 0, 0),
		dayRecord(2, 2, 0, 0),
	}
	s := Streaks(records, testNow)
	if s.Current != 2 {
		t.Errorf("Current = %d, want 2", s.Current)
	}
}

// ─── Longest Streak ─────────────────────────────────────────────────────────

func TestStreaks_LongestSurvivesBreak(t *testing.T) {
	records := []domain.DailyRecord{
		dayRecord(0, 2, 0, 0),
		dayRecord(1, 2, 0, 0),
		dayRecord(2, 0, 0, 5), // breaks both streaks
		dayRecord(3, 2, 0, 0),
		dayRecord(4, 2, 0, 0),
		dayRecord(5, 2, 0, 0),
		dayRecord(6, 2, 0, 0),
	}
	s := Streaks(records, testNow)
	if s.Current != 2 {
		t.Errorf("Current = %d, want 2", s.Current)
	}
	if s.Longest != 4 {
		t.Errorf("Longest = %d, want 4", s.Longest)
	}
}

// ─── Clean Streak ───────────────────────────────────────────────────────────

func TestStreaks_CleanIndependentOfScore(t *testing.T) {
	// Low-score days can still be clean; a slip day can still qualify.
	records := []domain.DailyRecord{
		dayRecord(0, 0, 0, 0), // clean, score 0
		dayRecord(1, 0, 1, 0), // clean, score 1
		dayRecord(2, 5, 0, 1), // not clean, score 9
		dayRecord(3, 0, 0, 0), // clean
	}
	s := Streaks(records, testNow)
	if s.CleanCurrent != 2 {
		t.Errorf("CleanCurrent = %d, want 2", s.CleanCurrent)
	}
	// Yesterday is final and below the threshold, so no current streak.
	if s.Current != 0 {
		t.Errorf("Current = %d, want 0", s.Current)
	}
	if s.Longest != 1 {
		t.Errorf("Longest = %d, want 1 (only the slip day qualifies)", s.Longest)
	}
}

func TestStreaks_UnparseableDateIgnored(t *testing.T) {
	records := []domain.DailyRecord{
		{Date: "garbage", HabitsCompleted: 9},
		dayRecord(0, 2, 0, 0),
		dayRecord(1, 2, 0, 0),
	}
	s := Streaks(records, testNow)
	if s.Longest != 2 {
		t.Errorf("Longest = %d, want 2", s.Longest)
	}
}
