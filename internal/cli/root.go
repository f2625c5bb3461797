// Package cli implements the ptab command-line interface using Cobra.
// Each subcommand maps to one engine capability (log, profile, claim...).
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ptab",
	Short: "ptab — Personal progression engine",
	Long: `ptab turns your daily habits, focus sessions, and slips into
scores, streaks, XP, levels, missions, and achievements.

Log activity from the terminal or point the new-tab dashboard at the
local API server ('ptab serve').`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
