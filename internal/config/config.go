// Package config provides configuration management for tilemux with Viper integration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/bnema/tilemux/internal/logging"
)

// File permission constants
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Config represents the complete configuration for tilemux.
type Config struct {
	Panes      PanesConfig      `mapstructure:"panes" yaml:"panes" json:"panes"`
	Resize     ResizeConfig     `mapstructure:"resize" yaml:"resize" json:"resize"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging" json:"logging"`
	Appearance AppearanceConfig `mapstructure:"appearance" yaml:"appearance" json:"appearance"`
	Shell      ShellConfig      `mapstructure:"shell" yaml:"shell" json:"shell"`
	Layout     LayoutConfig     `mapstructure:"layout" yaml:"layout" json:"layout"`
}

// PanesConfig controls how panes are tiled.
type PanesConfig struct {
	DrawFrames bool `mapstructure:"draw_frames" yaml:"draw_frames" json:"draw_frames" jsonschema:"description=Draw a rounded frame around every pane instead of shared boundary lines"`
	// MaxPanes of 0 means unlimited.
	MaxPanes int `mapstructure:"max_panes" yaml:"max_panes" json:"max_panes" jsonschema:"minimum=0,description=Close the oldest panes beyond this count before splitting (0 = unlimited)"`
}

// ResizeConfig holds the resize steps in cells.
type ResizeConfig struct {
	ColumnStep int `mapstructure:"column_step" yaml:"column_step" json:"column_step" jsonschema:"minimum=1"`
	RowStep    int `mapstructure:"row_step" yaml:"row_step" json:"row_step" jsonschema:"minimum=1"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" yaml:"format" json:"format" jsonschema:"enum=console,enum=json"`

	// File output configuration
	LogDir        string `mapstructure:"log_dir" yaml:"log_dir" json:"log_dir"`
	EnableFileLog bool   `mapstructure:"enable_file_log" yaml:"enable_file_log" json:"enable_file_log"`
	MaxSize       int    `mapstructure:"max_size" yaml:"max_size" json:"max_size" jsonschema:"description=Rotate a session log past this many megabytes"`
	MaxBackups    int    `mapstructure:"max_backups" yaml:"max_backups" json:"max_backups"`
	MaxAge        int    `mapstructure:"max_age" yaml:"max_age" json:"max_age" jsonschema:"description=Days to keep rotated logs"`
	Compress      bool   `mapstructure:"compress" yaml:"compress" json:"compress"`
}

// AppearanceConfig holds the frame and boundary colors of the active pane.
type AppearanceConfig struct {
	// ActiveColor is used while keys go straight to the panes (normal and locked modes).
	ActiveColor string `mapstructure:"active_color" yaml:"active_color" json:"active_color"`
	// ModeColor is used in every other input mode.
	ModeColor string `mapstructure:"mode_color" yaml:"mode_color" json:"mode_color"`
}

// ShellConfig selects the process started in new terminal panes.
type ShellConfig struct {
	Command string   `mapstructure:"command" yaml:"command" json:"command" jsonschema:"description=Shell started in new panes (defaults to $SHELL)"`
	Args    []string `mapstructure:"args" yaml:"args" json:"args,omitempty"`
}

// LayoutConfig points at the positioned layout applied at startup.
type LayoutConfig struct {
	Path string `mapstructure:"path" yaml:"path" json:"path,omitempty"`
}

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
	logger    zerolog.Logger
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config") // config.yaml, config.json, config.toml...

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".") // Current directory for development

	v.SetEnvPrefix("TILEMUX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindings := map[string]string{
		"panes.draw_frames":       "PANES_DRAW_FRAMES",
		"panes.max_panes":         "PANES_MAX_PANES",
		"resize.column_step":      "RESIZE_COLUMN_STEP",
		"resize.row_step":         "RESIZE_ROW_STEP",
		"logging.level":           "LOGGING_LEVEL",
		"logging.format":          "LOGGING_FORMAT",
		"logging.enable_file_log": "LOGGING_ENABLE_FILE_LOG",
		"appearance.active_color": "APPEARANCE_ACTIVE_COLOR",
		"appearance.mode_color":   "APPEARANCE_MODE_COLOR",
		"shell.command":           "SHELL_COMMAND",
		"layout.path":             "LAYOUT_PATH",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, "TILEMUX_"+env); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable %s: %w", env, err)
		}
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
		logger:    logging.NewFromEnv(),
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		if err := m.createDefaultConfig(); err != nil {
			return fmt.Errorf("failed to create default config: %w", err)
		}
	}

	config, err := m.unmarshal()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

func (m *Manager) unmarshal() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	normalizeConfig(config)
	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// normalizeConfig fills values that depend on the environment.
func normalizeConfig(config *Config) {
	if config.Shell.Command == "" {
		config.Shell.Command = defaultShell()
	}
	if config.Logging.LogDir == "" {
		config.Logging.LogDir = getDefaultLogDir()
	}
	config.Logging.Level = strings.ToLower(config.Logging.Level)
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	configCopy.Shell.Args = append([]string(nil), m.config.Shell.Args...)
	return &configCopy
}

// SetLogger replaces the logger used to report reload failures. The
// playground points it at its session log.
func (m *Manager) SetLogger(logger zerolog.Logger) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logger = logger
}

// Watch starts watching the config file for changes and reloads automatically.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}

	m.viper.OnConfigChange(func(_ fsnotify.Event) {
		if err := m.reload(); err != nil {
			m.mu.RLock()
			log := m.logger
			m.mu.RUnlock()
			log.Warn().Err(err).Str("file", m.viper.ConfigFileUsed()).Msg("failed to reload config, keeping the previous one")
			return
		}
		m.notify()
	})
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

func (m *Manager) notify() {
	m.mu.RLock()
	config := m.config
	callbacks := make([]func(*Config), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.RUnlock()

	for _, callback := range callbacks {
		callback(config)
	}
}

// OnConfigChange registers a callback function to be called when config changes.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

// reload re-reads the file; an invalid file keeps the previous configuration.
func (m *Manager) reload() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}
	config, err := m.unmarshal()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("panes.draw_frames", defaults.Panes.DrawFrames)
	m.viper.SetDefault("panes.max_panes", defaults.Panes.MaxPanes)

	m.viper.SetDefault("resize.column_step", defaults.Resize.ColumnStep)
	m.viper.SetDefault("resize.row_step", defaults.Resize.RowStep)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.max_size", defaults.Logging.MaxSize)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age", defaults.Logging.MaxAge)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)

	m.viper.SetDefault("appearance.active_color", defaults.Appearance.ActiveColor)
	m.viper.SetDefault("appearance.mode_color", defaults.Appearance.ModeColor)

	m.viper.SetDefault("shell.command", defaults.Shell.Command)
	m.viper.SetDefault("shell.args", defaults.Shell.Args)

	m.viper.SetDefault("layout.path", defaults.Layout.Path)
}

// createDefaultConfig writes the defaults as YAML and the JSON schema next to it.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	configData, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(configFile, configData, filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := GenerateSchemaFile(); err != nil {
		return err
	}

	m.viper.SetConfigFile(configFile)
	return nil
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

var (
	globalManager     *Manager
	globalManagerOnce sync.Once
)

// Init initializes the global configuration manager.
func Init() error {
	var err error
	globalManagerOnce.Do(func() {
		globalManager, err = NewManager()
		if err != nil {
			return
		}
		err = globalManager.Load()
	})
	return err
}

// Get returns the global configuration.
func Get() *Config {
	if globalManager == nil {
		return DefaultConfig()
	}
	return globalManager.Get()
}

// Watch starts watching the global configuration for changes.
func Watch() error {
	if globalManager == nil {
		return fmt.Errorf("configuration not initialized")
	}
	return globalManager.Watch()
}

// OnConfigChange registers a callback for global configuration changes.
func OnConfigChange(callback func(*Config)) {
	if globalManager == nil {
		return
	}
	globalManager.OnConfigChange(callback)
}
