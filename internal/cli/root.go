// Package cli wires the cobra command surface for gemshelf.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gemshelf/gemshelf/internal/preset"
	"github.com/gemshelf/gemshelf/internal/shell"
	"github.com/gemshelf/gemshelf/internal/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
}

// NewRootCommand creates the root command. Running it with no subcommand
// starts the interactive console session on the command's input and output
// streams.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "gemshelf",
		Short:         "Jewelry inventory and sales tracker",
		Long:          "An interactive, menu-driven tracker for a small jewelry retail operation:\nregister an account, maintain stocked items, and record sales transactions.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, opts)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose logging")

	cmd.AddCommand(NewPresetsCommand(opts))

	return cmd
}

// runShell builds a fresh application state and drives the interactive
// session until the user exits from the welcome screen.
func runShell(cmd *cobra.Command, opts *RootOptions) error {
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)

	presets, err := preset.Load()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load preset catalog", err)
	}

	state := store.New(store.SystemClock())
	console := shell.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout())
	router := shell.NewRouter(state, console, presets, logger)

	slog.Info("session loop starting", "presets", len(presets))
	if err := router.Run(); err != nil {
		return WrapExitError(ExitFailure, "session error", err)
	}
	slog.Info("session loop finished")
	return nil
}
