package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	var (
		output string
		days   int
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export commit history and records to an Excel workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.Export.ExportWorkbook(output, days, time.Now()); err != nil {
				return err
			}

			fmt.Printf("Exported last %d days to %s\n", days, output)

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "bigfoot.xlsx", "output file path")
	cmd.Flags().IntVar(&days, "days", 90, "number of days to export")

	return cmd
}
