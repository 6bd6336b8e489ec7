package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gemshelf/gemshelf/internal/preset"
)

// NewPresetsCommand creates the presets command, a non-interactive listing
// of the reference catalog offered during Add Item.
func NewPresetsCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "presets",
		Short:         "List the preset item catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := preset.Load()
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to load preset catalog", err)
			}
			out := cmd.OutOrStdout()
			for i, item := range items {
				fmt.Fprintf(out, "%d. %s (%s) - Price: $%s\n", i+1, item.Name, item.Category, item.Price.StringFixed(2))
			}
			return nil
		},
	}
}
