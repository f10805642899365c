package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func (c *CLI) newAchievementsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "achievements",
		Aliases: []string{"ach"},
		Short:   "Inspect and edit the current user's achievements",
	}
	cmd.AddCommand(c.newAchievementsListCmd())
	cmd.AddCommand(c.newAchievementsUnlockCmd())
	cmd.AddCommand(c.newAchievementsClearCmd())
	return cmd
}

func (c *CLI) newAchievementsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every achievement and its unlock state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			global, _ := cmd.Flags().GetBool("global")

			achievements, err := c.app.Achievements(cmd.Context(), global)
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			if global {
				table.Header("Name", "Title", "Unlocked", "Unlock time", "Global %")
			} else {
				table.Header("Name", "Title", "Unlocked", "Unlock time")
			}

			for _, ach := range achievements {
				title := ach.DisplayName
				if ach.Hidden && !ach.Achieved {
					title = "(hidden)"
				}
				unlocked := "no"
				unlockTime := "-"
				if ach.Achieved {
					unlocked = "yes"
					if !ach.UnlockTime.IsZero() {
						unlockTime = ach.UnlockTime.Format(time.RFC3339)
					}
				}
				row := []string{ach.Name, title, unlocked, unlockTime}
				if global {
					pct := "-"
					if ach.GlobalPercent >= 0 {
						pct = fmt.Sprintf("%.1f", ach.GlobalPercent)
					}
					row = append(row, pct)
				}
				table.Append(row)
			}
			table.Render()
			return nil
		},
	}
	cmd.Flags().BoolP("global", "g", false, "Include worldwide unlock percentages")
	return cmd
}

func (c *CLI) newAchievementsUnlockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unlock <name>",
		Short: "Unlock an achievement and commit it to the servers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.Unlock(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Unlocked %s\n", args[0])
			return nil
		},
	}
}

func (c *CLI) newAchievementsClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear <name>",
		Short: "Lock an achievement again and commit it to the servers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.Relock(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Cleared %s\n", args[0])
			return nil
		},
	}
}
