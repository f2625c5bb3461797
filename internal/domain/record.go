// Package domain holds the pure types of the progression engine:
// records, missions, achievements, pools, and profile snapshots.
package domain

import "time"

// DateLayout is the ISO day format used as the daily record key.
const DateLayout = "2006-01-02"

// DailyRecord is one day of logged activity. The key is the ISO date.
// Records are written by external producers (habit tracker, focus timer,
// slip tracker, manual edits); the engine only reads them.
type DailyRecord struct {
	Date            string   `json:"date"`
	HabitsCompleted int      `json:"habits_completed"`
	FocusSessions   int      `json:"focus_sessions"`
	NegativeActions int      `json:"negative_actions"`
	HabitNames      []string `json:"habit_names,omitempty"`
}

// Day parses the record's date at local midnight.
func (r DailyRecord) Day() (time.Time, error) {
	return time.ParseInLocation(DateLayout, r.Date, time.Local)
}

// DateOf formats a time as a daily record key in local time.
func DateOf(t time.Time) string {
	return t.Local().Format(DateLayout)
}

// DayScore pairs a date with its derived scores, for heatmap rendering.
type DayScore struct {
	Date    string `json:"date"`
	Raw     int    `json:"raw"`
	Display int    `json:"display"`
}
