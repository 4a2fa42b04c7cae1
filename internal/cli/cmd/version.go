package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tilemux/internal/cli/styles"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"about"},
	Short:   "Show version and build information",
	Long:    `Display version, commit, build date and repository URL.`,
	Args:    cobra.NoArgs,
	RunE:    runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewAboutRenderer(app.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(app.BuildInfo))
	return nil
}
