// Package cmd provides Cobra CLI commands for tilemux.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/tilemux/internal/cli"
	"github.com/bnema/tilemux/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "tilemux",
		Short: "A pane tiling engine for terminal multiplexers",
		Long: `tilemux - the pane tiling and resize engine of a terminal multiplexer.

It splits a tab into terminal and plugin panes, resizes them by moving shared
edges, closes them by handing their space to neighbours and moves focus
geometrically.

Use 'tilemux play' to drive the engine against real shells in your terminal,
or 'tilemux layout check' to validate a positioned layout file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.AppOptions{FileLog: cmd.Name() == "play"})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
