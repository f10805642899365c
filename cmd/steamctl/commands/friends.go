package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func (c *CLI) newFriendsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "friends",
		Short: "List the current user's friends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			avatars, _ := cmd.Flags().GetBool("avatars")

			friends, err := c.app.Friends(cmd.Context(), avatars)
			if err != nil {
				return err
			}
			if len(friends) == 0 {
				fmt.Println("No friends found.")
				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			if avatars {
				table.Header("Steam ID", "Name", "Nickname", "Avatar")
			} else {
				table.Header("Steam ID", "Name", "Nickname")
			}

			for _, fr := range friends {
				row := []string{fr.ID.String(), fr.Name, fr.Nickname}
				if avatars {
					avatar := "-"
					if fr.AvatarBytes > 0 {
						avatar = fmt.Sprintf("%d bytes", fr.AvatarBytes)
					}
					row = append(row, avatar)
				}
				table.Append(row)
			}
			table.Render()
			return nil
		},
	}
	cmd.Flags().BoolP("avatars", "a", false, "Fetch avatar images for each friend")
	return cmd
}
