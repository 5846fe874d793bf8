package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bigfootdev/bigfoot/internal/display"
)

// NewRewardsCommand creates the rewards command
func NewRewardsCommand() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "rewards",
		Short: "Show recently earned rewards",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			now := time.Now()

			rewards, err := app.Rewards.GetRecent(days, now)
			if err != nil {
				return err
			}

			display.NewRenderer(os.Stdout).RenderRewards(rewards)

			stats, err := app.Rewards.GetStats(now)
			if err != nil {
				return err
			}
			fmt.Printf("\nTotal rewards: %d (%d in the last 30 days)\n", stats.Total, stats.Recent)

			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 30, "lookback window in days")

	return cmd
}
