package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func init() {
	achievementsCmd.Flags().BoolVar(&achievementsAll, "all", false, "Include locked achievements")
	rootCmd.AddCommand(achievementsCmd)
}

var achievementsAll bool

var achievementsCmd = &cobra.Command{
	Use:     "achievements",
	Aliases: []string{"ach"},
	Short:   "List achievements and unlock state",
	RunE:    runAchievements,
}

func runAchievements(cmd *cobra.Command, args []string) error {
	d, err := newDaemon()
	if err != nil {
		return err
	}
	defer d.Close()

	if _, err := d.Engine.Recompute(time.Now()); err != nil {
		return err
	}
	achievements, err := d.Engine.Achievements()
	if err != nil {
		return err
	}

	unlocked := 0
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIER\tXP\tTITLE\tSTATUS")
	for _, a := range achievements {
		status := "locked"
		if a.Unlocked {
			status = "unlocked"
			unlocked++
		} else if !achievementsAll {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", a.ID, a.Tier, a.XPReward, a.Title, status)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d/%d unlocked\n", unlocked, len(achievements))
	return nil
}
