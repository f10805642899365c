package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Read and write the current user's stats",
	}
	cmd.AddCommand(c.newStatsGetCmd())
	cmd.AddCommand(c.newStatsSetCmd())
	return cmd
}

func (c *CLI) newStatsGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <name>",
		Short: "Print the value of a stat",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			float, _ := cmd.Flags().GetBool("float")

			value, err := c.app.StatValue(cmd.Context(), args[0], float)
			if err != nil {
				return err
			}
			fmt.Println(value)
			return nil
		},
	}
	cmd.Flags().BoolP("float", "f", false, "Read the stat as FLOAT instead of INT")
	return cmd
}

func (c *CLI) newStatsSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <name> <value>",
		Short: "Update a stat and commit it to the servers",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.SetStat(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("Stored %s = %s\n", args[0], args[1])
			return nil
		},
	}
}
