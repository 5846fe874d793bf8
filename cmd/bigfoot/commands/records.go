package commands

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bigfootdev/bigfoot/internal/display"
)

// NewRecordsCommand creates the records command
func NewRecordsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "records",
		Short: "Show personal records and today's record chase",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			hallOfFame, err := app.Records.GetHallOfFame(time.Now())
			if err != nil {
				return err
			}

			display.NewRenderer(os.Stdout).RenderRecords(hallOfFame)

			return nil
		},
	}
}
