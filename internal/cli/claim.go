package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/Vindusvisker/productivity-tab-sub000/internal/domain"
)

func init() {
	rootCmd.AddCommand(claimCmd)
}

var claimCmd = &cobra.Command{
	Use:   "claim [daily|weekly|monthly]",
	Short: "Show or consume periodic bonuses",
	Long: `Without arguments, shows the state of all three claim windows.
With a kind, consumes that period's bonus.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClaim,
}

func runClaim(cmd *cobra.Command, args []string) error {
	d, err := newDaemon()
	if err != nil {
		return err
	}
	defer d.Close()

	now := time.Now()

	if len(args) == 0 {
		statuses, err := d.Engine.ClaimStatuses(now)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "KIND\tPERIOD\tREWARD\tSTATE")
		for _, s := range statuses {
			state := "claimable"
			switch {
			case s.Claimed:
				state = "claimed"
			case s.Reason != "":
				state = "locked: " + s.Reason
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", s.Kind, s.PeriodKey, s.Reward, state)
		}
		return w.Flush()
	}

	status, err := d.Engine.Claim(domain.ClaimKind(args[0]), now)
	if err != nil {
		return err
	}
	fmt.Printf("Claimed %s bonus for %s: +%d XP\n", status.Kind, status.PeriodKey, status.Reward)
	return nil
}
