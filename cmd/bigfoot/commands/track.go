package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bigfootdev/bigfoot/internal/display"
	"github.com/bigfootdev/bigfoot/internal/models"
	"github.com/bigfootdev/bigfoot/pkg/config"
)

// NewTrackCommand creates the track command
func NewTrackCommand() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "track [date]",
		Short: "Scan git repositories and record commit activity",
		Long: `Scan configured search paths for git repositories and record
your commit activity into the local database.

With no arguments, tracks today. An explicit date (YYYY-MM-DD) tracks
that day; --days N tracks the N days ending today.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			endDate := models.DateOnly(time.Now())
			if len(args) == 1 {
				endDate, err = models.ParseDate(args[0])
				if err != nil {
					return fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", args[0], err)
				}
			}

			startDate := endDate
			if days > 1 {
				startDate = endDate.AddDate(0, 0, -(days - 1))
			}

			results, err := app.Tracker.TrackRange(cmd.Context(), startDate, endDate)
			if err != nil {
				return err
			}

			renderer := display.NewRenderer(os.Stdout)
			for _, result := range results {
				rewards, err := checkRewards(app, result)
				if err != nil {
					return err
				}
				renderer.RenderTrackResult(result, rewards)
			}

			streak, err := app.Streaks.CurrentStreak(endDate)
			if err != nil {
				return err
			}
			fmt.Println(app.Rewards.MotivationalMessage(streak))

			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 1, "number of days ending at the date to track")

	return cmd
}

// checkRewards evaluates milestone rewards for one tracked day
func checkRewards(app *App, result *models.TrackResult) ([]*models.Reward, error) {
	streak, err := app.Streaks.CurrentStreak(result.Date)
	if err != nil {
		return nil, err
	}

	return app.Rewards.CheckMilestones(result.Date, result.TotalCommits, streak, config.AppConfig.Goals.Daily)
}
