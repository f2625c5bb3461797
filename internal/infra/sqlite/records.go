package sqlite

import (
	"database/sql"
	"encoding/json"

	"github.com/Vindusvisker/productivity-tab-sub000/internal/domain"
)

// ─── Daily Records ──────────────────────────────────────────────────────────

// UpsertDailyRecord inserts or replaces the record for its date.
func (d *DB) UpsertDailyRecord(r domain.DailyRecord) error {
	names, err := json.Marshal(r.HabitNames)
	if err != nil {
		return err
	}
	_, err = d.db.Exec(
		`INSERT INTO daily_records (date, habits_completed, focus_sessions, negative_actions, habit_names)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(date) DO UPDATE SET
			habits_completed=excluded.habits_completed,
			focus_sessions=excluded.focus_sessions,
			negative_actions=excluded.negative_actions,
			habit_names=excluded.habit_names`,
		r.Date, r.HabitsCompleted, r.FocusSessions, r.NegativeActions, string(names),
	)
	return err
}

// GetDailyRecord retrieves the record for a date. Returns nil if absent.
func (d *DB) GetDailyRecord(date string) (*domain.DailyRecord, error) {
	row := d.db.QueryRow(
		`SELECT date, habits_completed, focus_sessions, negative_actions, habit_names
		 FROM daily_records WHERE date = ?`, date,
	)
	return scanRecord(row)
}

// ListDailyRecords returns the full activity log ordered by date ascending.
func (d *DB) ListDailyRecords() ([]domain.DailyRecord, error) {
	rows, err := d.db.Query(
		`SELECT date, habits_completed, focus_sessions, negative_actions, habit_names
		 FROM daily_records ORDER BY date ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.DailyRecord
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *r)
	}
	return records, rows.Err()
}

// RecordCount returns the number of distinct dated records.
func (d *DB) RecordCount() (int, error) {
	var count int
	err := d.db.QueryRow(`SELECT COUNT(*) FROM daily_records`).Scan(&count)
	return count, err
}

func scanRecord(s scanner) (*domain.DailyRecord, error) {
	var r domain.DailyRecord
	var names string
	err := s.Scan(&r.Date, &r.HabitsCompleted, &r.FocusSessions, &r.NegativeActions, &names)
	if err == sql.ErrNoRows {
		return nil, nil // Not found, no error
	}
	if err != nil {
		return nil, err
	}
	if names != "" {
		_ = json.Unmarshal([]byte(names), &r.HabitNames)
	}
	return &r, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}
