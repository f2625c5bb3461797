package progression

import (
	"sort"
	"time"

	"github.com/Vindusvisker/productivity-tab-sub000/internal/domain"
)

// Streaks derives all four run lengths from the full log.
func Streaks(records []domain.DailyRecord, now time.Time) domain.Streaks {
	qualifies := func(r domain.DailyRecord) bool { return RawScore(r) >= StreakThreshold }
	return domain.Streaks{
		Current:      currentRun(records, now, qualifies),
		Longest:      longestRun(records, qualifies),
		CleanCurrent: currentRun(records, now, IsCleanDay),
		CleanLongest: longestRun(records, IsCleanDay),
	}
}

// currentRun walks the log from the most recent day backwards.
// Today is special: if today's record does not yet qualify it is skipped
// rather than breaking the run, because the day is not final until
// midnight. Any other non-qualifying or missing day ends the run.
func currentRun(records []domain.DailyRecord, now time.Time, qualifies func(domain.DailyRecord) bool) int {
	recs := sortedByDate(records, true)
	if len(recs) == 0 {
		return 0
	}

	today := domain.DateOf(now)
	yesterday := domain.DateOf(now.AddDate(0, 0, -1))

	i := 0
	if recs[0].Date == today && !qualifies(recs[0]) {
		i = 1 // today not final yet: skip, don't break
	}

	streak := 0
	var prev time.Time
	for ; i < len(recs); i++ {
		day, err := recs[i].Day()
		if err != nil {
			break
		}
		if streak == 0 {
			// The run must be anchored at today or yesterday.
			if recs[i].Date != today && recs[i].Date != yesterday {
				return 0
			}
		} else if domain.DateOf(day) != domain.DateOf(prev.AddDate(0, 0, -1)) {
			break // gap in the calendar
		}
		if !qualifies(recs[i]) {
			break
		}
		streak++
		prev = day
	}
	return streak
}

// longestRun walks the log forward, counting the longest unbroken run of
// qualifying consecutive days.
func longestRun(records []domain.DailyRecord, qualifies func(domain.DailyRecord) bool) int {
	recs := sortedByDate(records, false)

	longest, run := 0, 0
	var prev time.Time
	for _, r := range recs {
		day, err := r.Day()
		if err != nil {
			continue
		}
		if run > 0 && domain.DateOf(day) != domain.DateOf(prev.AddDate(0, 0, 1)) {
			run = 0 // gap
		}
		if qualifies(r) {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
		prev = day
	}
	return longest
}

// sortedByDate returns a sorted copy. ISO date strings order correctly
// as plain strings.
func sortedByDate(records []domain.DailyRecord, descending bool) []domain.DailyRecord {
	recs := make([]domain.DailyRecord, len(records))
	copy(recs, records)
	sort.Slice(recs, func(i, j int) bool {
		if descending {
			return recs[i].Date > recs[j].Date
		}
		return recs[i].Date < recs[j].Date
	})
	return recs
}
