package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jask/showcase/internal/database"
)

func resetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Wipe the catalogue and reload the built-in decks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.decks.Reset(ctx); err != nil {
				return err
			}
			if err := database.SeedDefaults(ctx, a.db); err != nil {
				return fmt.Errorf("seed defaults: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Catalogue reset to the built-in decks.")
			return nil
		},
	}
}
