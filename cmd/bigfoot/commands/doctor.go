package commands

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bigfootdev/bigfoot/pkg/config"
)

// NewDoctorCommand creates the doctor command
func NewDoctorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that tracking prerequisites are in place",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			ok := color.New(color.FgGreen).SprintFunc()
			bad := color.New(color.FgRed).SprintFunc()

			if path, err := exec.LookPath("git"); err == nil {
				fmt.Printf("%s git found at %s\n", ok("✓"), path)
			} else {
				fmt.Printf("%s git not found in PATH\n", bad("✗"))
			}

			fmt.Printf("%s database at %s\n", ok("✓"), config.AppConfig.Database.Path)

			for _, searchPath := range config.AppConfig.Tracker.SearchPaths {
				if _, err := os.Stat(searchPath); err == nil {
					fmt.Printf("%s search path %s\n", ok("✓"), searchPath)
				} else {
					fmt.Printf("%s search path %s does not exist\n", bad("✗"), searchPath)
				}
			}

			repos := app.Tracker.FindGitRepositories()
			fmt.Printf("%s %d git repositories discovered\n", ok("✓"), len(repos))
			for _, repo := range repos {
				fmt.Printf("    %s\n", repo)
			}

			return nil
		},
	}
}
