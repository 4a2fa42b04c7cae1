package styles

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderPaths renders the config file and the directories tilemux reads
// and writes.
func (r *ConfigRenderer) RenderPaths(configFile, layoutDir, logDir string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	keyStyle := r.theme.Normal
	pathStyle := r.theme.Subtle

	return fmt.Sprintf(
		"\n  %s %s %s\n  %s %s %s\n  %s %s %s\n",
		iconStyle.Render(IconConfig), keyStyle.Render("Config "), pathStyle.Render(configFile),
		iconStyle.Render(IconFolder), keyStyle.Render("Layouts"), pathStyle.Render(layoutDir),
		iconStyle.Render(IconLogs), keyStyle.Render("Logs   "), pathStyle.Render(logDir),
	)
}

// RenderSchemaWritten renders the message shown after the JSON schema was
// written next to the config file.
func (r *ConfigRenderer) RenderSchemaWritten(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	return fmt.Sprintf(
		"\n  %s Wrote %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Subtle.Render(filepath.Base(path)),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}

// RenderNoConfigFile renders message when config file doesn't exist yet.
func (r *ConfigRenderer) RenderNoConfigFile(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	pathStyle := r.theme.Subtle
	hintStyle := r.theme.Subtle

	return fmt.Sprintf(
		"\n  %s Config %s\n  %s\n",
		iconStyle.Render(IconConfig),
		pathStyle.Render(path),
		hintStyle.Render("Config file will be created on first run with all defaults."),
	)
}
