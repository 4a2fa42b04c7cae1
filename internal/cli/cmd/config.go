package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bnema/tilemux/internal/cli/styles"
	"github.com/bnema/tilemux/internal/config"
)

var schemaStdout bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long:  `Show where tilemux keeps its files, the effective configuration and its JSON schema.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show config, layout and log locations",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Write the JSON schema of the config file",
	Long: `Write config.schema.json next to the config file so editors can validate
and complete it. With --stdout the schema is printed instead.`,
	Args: cobra.NoArgs,
	RunE: runConfigSchema,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSchemaCmd)
	configCmd.AddCommand(configShowCmd)
	configSchemaCmd.Flags().BoolVar(&schemaStdout, "stdout", false, "print the schema instead of writing it")
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)
	out := cmd.OutOrStdout()

	configFile, err := config.GetConfigFile()
	if err != nil {
		fmt.Fprintln(out, renderer.RenderError(err))
		return nil
	}
	if _, statErr := os.Stat(configFile); os.IsNotExist(statErr) {
		fmt.Fprintln(out, renderer.RenderNoConfigFile(configFile))
		return nil
	}

	layoutDir, err := config.GetLayoutDir()
	if err != nil {
		return err
	}
	logDir := app.Config.Logging.LogDir
	if logDir == "" {
		if logDir, err = config.GetLogDir(); err != nil {
			return err
		}
	}

	fmt.Fprintln(out, renderer.RenderPaths(configFile, layoutDir, logDir))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	if schemaStdout {
		data, err := config.MarshalSchema()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	if err := config.GenerateSchemaFile(); err != nil {
		return err
	}
	path, err := config.GetSchemaFile()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewConfigRenderer(app.Theme).RenderSchemaWritten(path))
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	if app.ConfigErr != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), styles.NewConfigRenderer(app.Theme).RenderError(app.ConfigErr))
	}

	data, err := yaml.Marshal(app.Config)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
