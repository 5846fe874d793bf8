package commands

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bigfootdev/bigfoot/internal/display"
	"github.com/bigfootdev/bigfoot/pkg/config"
)

// NewGoalsCommand creates the goals command
func NewGoalsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "goals",
		Short: "Show progress toward daily, weekly and monthly goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			cfg := config.AppConfig
			goals, err := app.Goals.GetGoalProgress(cfg.Goals.Daily, cfg.Goals.Weekly, cfg.Goals.Monthly, time.Now())
			if err != nil {
				return err
			}

			display.NewRenderer(os.Stdout).RenderGoals(goals)

			return nil
		},
	}
}
