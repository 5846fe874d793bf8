// Package main provides the entry point for the bigfoot CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bigfootdev/bigfoot/cmd/bigfoot/commands"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bigfoot",
		Short: "Bigfoot - personal commit tracking and motivation",
		Long: `Bigfoot tracks your daily git activity across local repositories
and turns it into streaks, momentum analysis, personal records and
achievements to keep you motivated.

Commands:
  track        Scan repositories and record today's commits
  dashboard    Show the motivational dashboard`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewTrackCommand())
	rootCmd.AddCommand(commands.NewDashboardCommand())
	rootCmd.AddCommand(commands.NewHistoryCommand())
	rootCmd.AddCommand(commands.NewRecordsCommand())
	rootCmd.AddCommand(commands.NewAchievementsCommand())
	rootCmd.AddCommand(commands.NewGoalsCommand())
	rootCmd.AddCommand(commands.NewRewardsCommand())
	rootCmd.AddCommand(commands.NewExportCommand())
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewDoctorCommand())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "bigfoot %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}
