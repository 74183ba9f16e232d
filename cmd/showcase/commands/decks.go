package commands

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func decksCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decks",
		Short: "List decks and their card counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			decks, err := a.decks.Decks(cmd.Context())
			if err != nil {
				return err
			}
			if len(decks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No decks.")
				return nil
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("SLUG", "TITLE", "CARDS", "VARIANT", "VIEW", "AUTOPLAY")
			for _, d := range decks {
				cfg := a.decks.ConfigFor(d)
				autoplay := "off"
				if cfg.Autoplay {
					autoplay = cfg.AutoplayInterval.String()
				}
				t.Row(d.Slug, d.Title, strconv.Itoa(d.CardCount), string(cfg.Variant), string(cfg.DefaultView), autoplay)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
}
