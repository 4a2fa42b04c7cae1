package config

import "os"

const (
	defaultColumnStep = 10
	defaultRowStep    = 2

	// Logging defaults
	defaultMaxLogSizeMB  = 10
	defaultMaxBackups    = 3
	defaultMaxLogAgeDays = 7

	defaultActiveColor = "#7aa2f7"
	defaultModeColor   = "#e0af68"
)

// getDefaultLogDir returns the default log directory, falls back to empty string on error
func getDefaultLogDir() string {
	logDir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return logDir
}

func defaultShell() string {
	if shell := os.Getenv("SHELL"); shell != "" {
		return shell
	}
	return "/bin/sh"
}

// DefaultConfig returns the default configuration values for tilemux.
func DefaultConfig() *Config {
	return &Config{
		Panes: PanesConfig{
			DrawFrames: false,
			MaxPanes:   0,
		},
		Resize: ResizeConfig{
			ColumnStep: defaultColumnStep,
			RowStep:    defaultRowStep,
		},
		Logging: LoggingConfig{
			Level:         "info",
			Format:        "console",
			LogDir:        getDefaultLogDir(),
			EnableFileLog: true,
			MaxSize:       defaultMaxLogSizeMB,
			MaxBackups:    defaultMaxBackups,
			MaxAge:        defaultMaxLogAgeDays,
			Compress:      true,
		},
		Appearance: AppearanceConfig{
			ActiveColor: defaultActiveColor,
			ModeColor:   defaultModeColor,
		},
		Shell: ShellConfig{
			Command: defaultShell(),
		},
	}
}
