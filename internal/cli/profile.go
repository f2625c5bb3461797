package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Vindusvisker/productivity-tab-sub000/internal/app/progression"
)

func init() {
	rootCmd.AddCommand(profileCmd)
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your level, XP, streaks, and current missions",
	RunE:  runProfile,
}

func runProfile(cmd *cobra.Command, args []string) error {
	d, err := newDaemon()
	if err != nil {
		return err
	}
	defer d.Close()

	profile, err := d.Engine.Recompute(time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("Level %d — %s (%s)\n", profile.Level, profile.Title, profile.Tier)
	fmt.Printf("XP:            %d total (%d/%d into this level)\n",
		profile.TotalXP, profile.CurrentLevelXP, progression.XPPerLevel)
	fmt.Printf("Streak:        %d days (longest %d)\n",
		profile.Streaks.Current, profile.Streaks.Longest)
	fmt.Printf("Clean streak:  %d days (longest %d)\n",
		profile.Streaks.CleanCurrent, profile.Streaks.CleanLongest)
	fmt.Printf("Days active:   %d\n", profile.DaysActive)

	if m := profile.WeeklyMission; m != nil {
		fmt.Printf("\nWeekly mission: %s (%d/%d, %d XP)\n",
			m.Title, m.Progress, m.Target, m.XPReward)
	}
	if m := profile.Milestone; m != nil {
		fmt.Printf("Milestone:      %s (%d/%d, %d XP)\n",
			m.Title, m.Progress, m.Target, m.XPReward)
	}

	b := profile.Breakdown
	fmt.Printf("\nXP breakdown:\n")
	fmt.Printf("  daily activity  %d\n", b.DailyActivity)
	fmt.Printf("  streak bonus    %d\n", b.StreakBonus)
	fmt.Printf("  missions        %d\n", b.Mission)
	fmt.Printf("  achievements    %d\n", b.Achievement)
	fmt.Printf("  claims          %d\n", b.DailyClaim+b.WeeklyClaim+b.MonthlyClaim)

	return nil
}
