package config

import (
	"fmt"
	"regexp"
	"strings"
)

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// validateConfig collects every invalid value into one error.
func validateConfig(config *Config) error {
	var validationErrors []string

	if config.Panes.MaxPanes < 0 {
		validationErrors = append(validationErrors, "panes.max_panes must be non-negative")
	}

	if config.Resize.ColumnStep < 1 {
		validationErrors = append(validationErrors, "resize.column_step must be at least 1")
	}
	if config.Resize.RowStep < 1 {
		validationErrors = append(validationErrors, "resize.row_step must be at least 1")
	}

	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level must be one of: trace, debug, info, warn, error (got: %s)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.format must be 'console' or 'json' (got: %s)", config.Logging.Format))
	}
	if config.Logging.MaxSize < 0 {
		validationErrors = append(validationErrors, "logging.max_size must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAge < 0 {
		validationErrors = append(validationErrors, "logging.max_age must be non-negative")
	}

	for key, color := range map[string]string{
		"appearance.active_color": config.Appearance.ActiveColor,
		"appearance.mode_color":   config.Appearance.ModeColor,
	} {
		if color != "" && !hexColor.MatchString(color) {
			validationErrors = append(validationErrors, fmt.Sprintf("%s must be a #rgb or #rrggbb color (got: %s)", key, color))
		}
	}

	if strings.TrimSpace(config.Shell.Command) == "" {
		validationErrors = append(validationErrors, "shell.command cannot be empty")
	}

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}
