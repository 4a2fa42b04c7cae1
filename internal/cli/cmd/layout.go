package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/bnema/tilemux/internal/cli/styles"
	"github.com/bnema/tilemux/internal/config"
	"github.com/bnema/tilemux/internal/infrastructure/layoutfile"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Work with positioned layout files",
}

var layoutCheckCmd = &cobra.Command{
	Use:   "check <layout>",
	Short: "Validate a layout file and list its slots",
	Long: `Load a layout by path, or by name from the layouts directory, check that
its slots are positive, inside the declared size and do not overlap, and
print them as a table.

Examples:
  tilemux layout check dev               # ~/.config/tilemux/layouts/dev.yaml
  tilemux layout check ./split.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runLayoutCheck,
}

func init() {
	rootCmd.AddCommand(layoutCmd)
	layoutCmd.AddCommand(layoutCheckCmd)
}

func runLayoutCheck(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	layoutDir, err := config.GetLayoutDir()
	if err != nil {
		return err
	}
	path, err := layoutfile.Find(args[0], layoutDir)
	if err != nil {
		return err
	}

	layout, err := layoutfile.Load(path)
	if err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "\n  %s %s\n", app.Theme.ValidBadge(false), app.Theme.Subtle.Render(path))
		return err
	}
	renderLayout(cmd.OutOrStdout(), app.Theme, path, layout)
	return nil
}

func renderLayout(w io.Writer, theme *styles.Theme, path string, layout *layoutfile.Layout) {
	size := "any size"
	if layout.Size != nil {
		size = fmt.Sprintf("%dx%d", layout.Size.Cols, layout.Size.Rows)
	}

	fmt.Fprintf(w, "\n  %s %s %s\n",
		theme.ValidBadge(true),
		theme.Title.Render(layout.Name),
		theme.Subtle.Render(fmt.Sprintf("%s, %d terminal(s), %s", size, layout.TerminalSlots(), path)),
	)

	columns := styles.LayoutTableColumns()
	rows := make([]table.Row, 0, len(layout.Panes))
	for i, s := range layout.Panes {
		rows = append(rows, styles.SlotRow{
			Index:      i,
			Plugin:     s.Plugin,
			X:          s.X,
			Y:          s.Y,
			Cols:       s.Cols,
			Rows:       s.Rows,
			Borderless: s.Borderless,
		}.ToRow())
	}

	// Header plus its bottom border.
	t := styles.NewStyledTable(theme, columns, rows, styles.TableWidth(columns), len(rows)+2)
	fmt.Fprintln(w, theme.Box.Render(t.View()))
}
