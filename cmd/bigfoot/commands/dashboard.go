package commands

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bigfootdev/bigfoot/internal/display"
	"github.com/bigfootdev/bigfoot/pkg/config"
)

// NewDashboardCommand creates the dashboard command
func NewDashboardCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the motivational dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			now := time.Now()

			streak, err := app.Streaks.GetStreakData(now)
			if err != nil {
				return err
			}

			momentum, err := app.Momentum.Analyze(now)
			if err != nil {
				return err
			}

			hallOfFame, err := app.Records.GetHallOfFame(now)
			if err != nil {
				return err
			}

			cfg := config.AppConfig
			goals, err := app.Goals.GetGoalProgress(cfg.Goals.Daily, cfg.Goals.Weekly, cfg.Goals.Monthly, now)
			if err != nil {
				return err
			}

			message := app.Rewards.MotivationalMessage(streak.CurrentStreak)

			display.NewRenderer(os.Stdout).RenderDashboard(streak, momentum, hallOfFame, goals, message)

			return nil
		},
	}
}
