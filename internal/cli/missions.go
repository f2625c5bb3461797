package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Vindusvisker/productivity-tab-sub000/internal/app/progression"
)

func init() {
	rootCmd.AddCommand(missionsCmd)
}

var missionsCmd = &cobra.Command{
	Use:   "missions",
	Short: "Show the weekly mission and the next milestone",
	RunE:  runMissions,
}

func runMissions(cmd *cobra.Command, args []string) error {
	d, err := newDaemon()
	if err != nil {
		return err
	}
	defer d.Close()

	now := time.Now()
	profile, err := d.Engine.Recompute(now)
	if err != nil {
		return err
	}

	if m := profile.WeeklyMission; m != nil {
		state := "in progress"
		if m.Completed {
			state = "completed"
		}
		fmt.Printf("Weekly mission (%s, %d days left):\n", m.WeekKey, progression.DaysRemainingInWeek(now))
		fmt.Printf("  %s — %s\n", m.Title, m.Description)
		fmt.Printf("  %d/%d  %d XP  [%s]\n", m.Progress, m.Target, m.XPReward, state)
	}

	if m := profile.Milestone; m != nil {
		fmt.Printf("\nNext milestone:\n")
		fmt.Printf("  %s — %s\n", m.Title, m.Description)
		fmt.Printf("  %d/%d  %d XP\n", m.Progress, m.Target, m.XPReward)
	} else {
		fmt.Println("\nAll milestones reached.")
	}

	return nil
}
