// Package commands implements the CLI commands for the steamctl tool.
package commands

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/steamachievementnotifier/steamworks-go/internal/app"
	"github.com/steamachievementnotifier/steamworks-go/internal/build"
)

// CLI represents the command line interface for steamctl.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "steamctl",
		Short:         "Inspect and edit Steam stats and achievements from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newInfoCmd())
	rootCmd.AddCommand(c.newFriendsCmd())
	rootCmd.AddCommand(c.newAchievementsCmd())
	rootCmd.AddCommand(c.newStatsCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}
