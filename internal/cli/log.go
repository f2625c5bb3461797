package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Vindusvisker/productivity-tab-sub000/internal/app/progression"
	"github.com/Vindusvisker/productivity-tab-sub000/internal/domain"
	"github.com/Vindusvisker/productivity-tab-sub000/internal/infra/bus"
)

func init() {
	logCmd.PersistentFlags().StringVar(&logDate, "date", "", "Day to log against (YYYY-MM-DD, default today)")
	logCmd.PersistentFlags().IntVar(&logCount, "count", 1, "How many to log")
	logCmd.AddCommand(logHabitCmd)
	logCmd.AddCommand(logFocusCmd)
	logCmd.AddCommand(logSlipCmd)
	rootCmd.AddCommand(logCmd)
}

var (
	logDate  string
	logCount int
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log daily activity (habits, focus sessions, slips)",
}

var logHabitCmd = &cobra.Command{
	Use:   "habit [NAME]",
	Short: "Log a completed habit",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		return logActivity(func(r *domain.DailyRecord) {
			r.HabitsCompleted += logCount
			if name != "" {
				r.HabitNames = append(r.HabitNames, name)
			}
		})
	},
}

var logFocusCmd = &cobra.Command{
	Use:   "focus",
	Short: "Log a finished focus session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return logActivity(func(r *domain.DailyRecord) {
			r.FocusSessions += logCount
		})
	},
}

var logSlipCmd = &cobra.Command{
	Use:   "slip",
	Short: "Log a slip (negative action)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return logActivity(func(r *domain.DailyRecord) {
			r.NegativeActions += logCount
		})
	},
}

// logActivity merges a mutation into the day's record, persists it, and
// nudges the engine through the change bus.
func logActivity(mutate func(*domain.DailyRecord)) error {
	if logCount < 1 {
		return fmt.Errorf("--count must be at least 1")
	}

	date, err := parseDateFlag(logDate)
	if err != nil {
		return err
	}

	d, err := newDaemon()
	if err != nil {
		return err
	}
	defer d.Close()

	record, err := d.DB.GetDailyRecord(date)
	if err != nil {
		return err
	}
	if record == nil {
		record = &domain.DailyRecord{Date: date}
	}
	mutate(record)

	if err := d.DB.UpsertDailyRecord(*record); err != nil {
		return err
	}
	d.Bus.Publish(bus.ActivityChanged)

	sanitized := progression.Sanitize(*record)
	fmt.Printf("%s  habits=%d focus=%d slips=%d  score=%d\n",
		record.Date,
		record.HabitsCompleted, record.FocusSessions, record.NegativeActions,
		progression.DisplayScore(sanitized),
	)
	return nil
}
