package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/tilemux/internal/cli"
)

var playLayout string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Drive the tiling engine against real shells",
	Long: `Open an interactive playground in the current terminal: one tab of the
engine with shells in pty-backed panes, a tab bar and a status bar.

Keys follow a modal scheme. ctrl+p enters pane mode (split, close, focus,
fullscreen, sync), ctrl+n resize mode, ctrl+s scroll mode and ctrl+g locks
every key to the focused shell. ctrl+q quits.

Logs go to a session file, see 'tilemux logs'.

Examples:
  tilemux play                # builtin layout
  tilemux play -l dev         # ~/.config/tilemux/layouts/dev.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().StringVarP(&playLayout, "layout", "l", "", "layout name or file (default: layout.path from config)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	return cli.RunPlay(app, cli.PlayOptions{
		Layout: playLayout,
		In:     os.Stdin,
		Out:    os.Stdout,
	})
}
