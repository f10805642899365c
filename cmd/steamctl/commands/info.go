package commands

import (
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func (c *CLI) newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the current user and Steam client environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info, err := c.app.Info(cmd.Context())
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")

			table.Append([]string{"Steam ID", info.SteamID.String()})
			table.Append([]string{"Steam2 ID", info.SteamID.Steam2()})
			table.Append([]string{"Persona", info.Persona})
			table.Append([]string{"Level", strconv.FormatUint(uint64(info.Level), 10)})
			table.Append([]string{"Logged on", strconv.FormatBool(info.LoggedOn)})
			table.Append([]string{"App ID", strconv.FormatUint(uint64(info.AppID), 10)})
			table.Append([]string{"Country", info.Country})
			table.Append([]string{"UI language", info.Language})
			table.Append([]string{"Server time", info.ServerTime.Format(time.RFC3339)})
			table.Append([]string{"Steam Deck", strconv.FormatBool(info.SteamDeck)})

			table.Render()
			return nil
		},
	}
}
