package commands

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/bigfootdev/bigfoot/internal/handlers"
	"github.com/bigfootdev/bigfoot/pkg/config"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve analytics as a local JSON API",
		Long: `Start a local HTTP server exposing the analytics engine as JSON
endpoints under /api, for editor widgets and status bars.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			gin.SetMode(gin.ReleaseMode)
			router := gin.Default()

			handler := handlers.NewDashboardHandler(
				app.Streaks, app.Momentum, app.History,
				app.Records, app.Achievements, app.Goals, app.Rewards,
			)
			handler.RegisterRoutes(router)

			port := config.AppConfig.Server.Port
			fmt.Printf("Serving on http://localhost:%s\n", port)

			return router.Run(":" + port)
		},
	}
}
