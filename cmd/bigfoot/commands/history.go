package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bigfootdev/bigfoot/internal/display"
	"github.com/bigfootdev/bigfoot/internal/models"
)

// NewHistoryCommand creates the history command
func NewHistoryCommand() *cobra.Command {
	var (
		chartType string
		periods   int
		htmlPath  string
		heatmap   bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show historical commit trends",
		Long: `Show commit activity bucketed into daily, weekly or monthly periods,
with peak, average and trend analysis.

Use --html to additionally write an interactive chart to a file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			now := time.Now()
			renderer := display.NewRenderer(os.Stdout)

			if heatmap {
				days := periods
				if days <= 0 {
					days = 90
				}
				totals, err := app.History.Heatmap(days, now)
				if err != nil {
					return err
				}
				renderer.RenderHeatmap(totals, days, now)
				return nil
			}

			data, err := app.History.BuildHistory(models.ChartType(chartType), periods, now)
			if err != nil {
				return err
			}

			renderer.RenderHistoryChart(data)

			if htmlPath != "" {
				if err := display.WriteHistoryHTML(data, htmlPath); err != nil {
					return err
				}
				fmt.Printf("\nChart written to %s\n", htmlPath)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&chartType, "type", "t", string(models.ChartDaily), "chart type: daily, weekly or monthly")
	cmd.Flags().IntVarP(&periods, "periods", "p", 0, "number of periods (0 uses the default for the type)")
	cmd.Flags().StringVar(&htmlPath, "html", "", "write an interactive HTML chart to this path")
	cmd.Flags().BoolVar(&heatmap, "heatmap", false, "show a calendar heatmap instead of bars")

	return cmd
}
