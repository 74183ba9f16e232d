package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func importCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import decks from a TOML catalogue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			res, err := a.decks.Import(cmd.Context(), f)
			if err != nil {
				return fmt.Errorf("import %s: %w", args[0], err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Imported %d decks, %d cards (%d removed).\n", res.Decks, res.Cards, res.Removed)
			for _, e := range res.Errors {
				fmt.Fprintf(cmd.ErrOrStderr(), "skipped: %v\n", e)
			}
			if len(res.Errors) > 0 && res.Decks == 0 {
				return fmt.Errorf("import %s: no valid decks", args[0])
			}
			return nil
		},
	}
}
