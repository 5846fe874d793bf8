package commands

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bigfootdev/bigfoot/internal/display"
)

// NewAchievementsCommand creates the achievements command
func NewAchievementsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "achievements",
		Short: "Show the achievement catalogue and unlock progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			achievements, err := app.Achievements.GetAchievements(time.Now())
			if err != nil {
				return err
			}

			display.NewRenderer(os.Stdout).RenderAchievements(achievements)

			return nil
		},
	}
}
