package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func init() {
	heatmapCmd.Flags().IntVar(&heatmapLimit, "limit", 30, "Most recent days to show (0 for all)")
	rootCmd.AddCommand(heatmapCmd)
}

var heatmapLimit int

var heatmapCmd = &cobra.Command{
	Use:   "heatmap",
	Short: "Show per-day scores",
	RunE:  runHeatmap,
}

func runHeatmap(cmd *cobra.Command, args []string) error {
	d, err := newDaemon()
	if err != nil {
		return err
	}
	defer d.Close()

	scores, err := d.Engine.Heatmap()
	if err != nil {
		return err
	}
	if len(scores) == 0 {
		fmt.Println("No activity logged yet. Run 'ptab log habit' to get started.")
		return nil
	}

	if heatmapLimit > 0 && len(scores) > heatmapLimit {
		scores = scores[len(scores)-heatmapLimit:]
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tRAW\tSCORE")
	for _, s := range scores {
		fmt.Fprintf(w, "%s\t%d\t%d\n", s.Date, s.Raw, s.Display)
	}
	return w.Flush()
}
