package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	return root
}

func writeConfig(t *testing.T, root, body string) {
	t.Helper()
	dir := filepath.Join(root, "config", appName)
	require.NoError(t, os.MkdirAll(dir, dirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), filePerm))
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, defaultColumnStep, mgr.viper.GetInt("resize.column_step"))
	assert.Equal(t, defaultRowStep, mgr.viper.GetInt("resize.row_step"))
	assert.False(t, mgr.viper.GetBool("panes.draw_frames"))
	assert.Equal(t, "info", mgr.viper.GetString("logging.level"))
}

func TestNormalizeConfig(t *testing.T) {
	t.Setenv("SHELL", "/usr/bin/fish")
	cfg := DefaultConfig()
	cfg.Shell.Command = ""
	cfg.Logging.Level = "DEBUG"

	normalizeConfig(cfg)

	assert.Equal(t, "/usr/bin/fish", cfg.Shell.Command)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestDefaultShell(t *testing.T) {
	t.Setenv("SHELL", "")
	assert.Equal(t, "/bin/sh", defaultShell())

	t.Setenv("SHELL", "/bin/zsh")
	assert.Equal(t, "/bin/zsh", defaultShell())
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "zero column step", mutate: func(c *Config) { c.Resize.ColumnStep = 0 }, wantErr: "resize.column_step"},
		{name: "zero row step", mutate: func(c *Config) { c.Resize.RowStep = 0 }, wantErr: "resize.row_step"},
		{name: "negative max panes", mutate: func(c *Config) { c.Panes.MaxPanes = -1 }, wantErr: "panes.max_panes"},
		{name: "unknown level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantErr: "logging.level"},
		{name: "unknown format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: "logging.format"},
		{name: "bad color", mutate: func(c *Config) { c.Appearance.ActiveColor = "green" }, wantErr: "appearance.active_color"},
		{name: "short color", mutate: func(c *Config) { c.Appearance.ModeColor = "#fa0" }},
		{name: "empty shell", mutate: func(c *Config) { c.Shell.Command = " " }, wantErr: "shell.command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Shell.Command = "/bin/sh"
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateConfig_CollectsEveryError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Resize.ColumnStep = 0
	cfg.Resize.RowStep = 0

	err := validateConfig(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "resize.column_step")
	assert.Contains(t, err.Error(), "resize.row_step")
}

func TestManager_LoadCreatesDefaultConfig(t *testing.T) {
	root := isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	configFile := filepath.Join(root, "config", appName, "config.yaml")
	assert.FileExists(t, configFile)
	assert.FileExists(t, filepath.Join(root, "config", appName, "config.schema.json"))
	assert.DirExists(t, filepath.Join(root, "state", appName))
	assert.Equal(t, configFile, mgr.GetConfigFile())

	cfg := mgr.Get()
	assert.Equal(t, defaultColumnStep, cfg.Resize.ColumnStep)
	assert.Equal(t, filepath.Join(root, "state", appName, "logs"), cfg.Logging.LogDir)
}

func TestManager_LoadReadsFileAndEnv(t *testing.T) {
	root := isolateXDG(t)
	writeConfig(t, root, `
panes:
  draw_frames: true
  max_panes: 6
resize:
  column_step: 4
shell:
  command: /bin/bash
  args: ["-l"]
`)
	t.Setenv("TILEMUX_RESIZE_ROW_STEP", "3")

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.True(t, cfg.Panes.DrawFrames)
	assert.Equal(t, 6, cfg.Panes.MaxPanes)
	assert.Equal(t, 4, cfg.Resize.ColumnStep)
	assert.Equal(t, 3, cfg.Resize.RowStep)
	assert.Equal(t, "/bin/bash", cfg.Shell.Command)
	assert.Equal(t, []string{"-l"}, cfg.Shell.Args)
	assert.Equal(t, defaultActiveColor, cfg.Appearance.ActiveColor, "missing keys fall back to defaults")
}

func TestManager_LoadRejectsInvalidFile(t *testing.T) {
	root := isolateXDG(t)
	writeConfig(t, root, "resize:\n  column_step: 0\n")

	mgr, err := NewManager()
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resize.column_step")
}

func TestManager_ReloadKeepsPreviousOnError(t *testing.T) {
	root := isolateXDG(t)
	writeConfig(t, root, "resize:\n  column_step: 7\n")

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	writeConfig(t, root, "resize:\n  row_step: -2\n")
	require.Error(t, mgr.reload())
	assert.Equal(t, 7, mgr.Get().Resize.ColumnStep)

	writeConfig(t, root, "resize:\n  column_step: 9\n")
	require.NoError(t, mgr.reload())
	assert.Equal(t, 9, mgr.Get().Resize.ColumnStep)
}

func TestManager_GetReturnsCopy(t *testing.T) {
	mgr := &Manager{config: DefaultConfig()}
	mgr.config.Shell.Args = []string{"-l"}

	cfg := mgr.Get()
	cfg.Resize.ColumnStep = 99
	cfg.Shell.Args[0] = "-i"

	assert.Equal(t, defaultColumnStep, mgr.config.Resize.ColumnStep)
	assert.Equal(t, []string{"-l"}, mgr.config.Shell.Args)
}

func TestMarshalSchema(t *testing.T) {
	data, err := MarshalSchema()
	require.NoError(t, err)

	assert.Contains(t, string(data), `"column_step"`)
	assert.Contains(t, string(data), `"draw_frames"`)
	assert.Contains(t, string(data), "tilemux configuration")
}

func TestGetXDGDirs_DevMode(t *testing.T) {
	t.Setenv("ENV", "dev")
	cwd, err := os.Getwd()
	require.NoError(t, err)

	dirs, err := GetXDGDirs()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(cwd, ".dev", appName), dirs.ConfigHome)
	assert.Equal(t, dirs.ConfigHome, dirs.StateHome)
}
