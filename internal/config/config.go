package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/aliasforge/aliasforge/internal/backup"
	"github.com/aliasforge/aliasforge/internal/paths"
	"github.com/aliasforge/aliasforge/internal/shell"
)

// AppName is the application name used for config file naming.
const AppName = "aliasforge"

// Config represents the top-level configuration structure.
type Config struct {
	Version      int          `mapstructure:"version" yaml:"version"`
	DefaultShell string       `mapstructure:"default_shell" yaml:"default_shell"`
	Store        StoreConfig  `mapstructure:"store" yaml:"store"`
	Backup       BackupConfig `mapstructure:"backup" yaml:"backup"`
}

// StoreConfig configures the alias collection file.
type StoreConfig struct {
	// Path is the collection file location. Empty selects the default
	// under the aliasforge config directory.
	Path string `mapstructure:"path" yaml:"path"`
}

// BackupConfig configures snapshot retention.
type BackupConfig struct {
	// RetentionCount is the number of snapshots kept per target path.
	RetentionCount int `mapstructure:"retention_count" yaml:"retention_count"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	// Config file settings
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".") // Current directory
	viper.AddConfigPath(filepath.Join(paths.ConfigHome(), AppName))

	// Environment variable support
	viper.SetEnvPrefix("ALIASFORGE")
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("version", 1)
	viper.SetDefault("default_shell", "")
	viper.SetDefault("store.path", "")
	viper.SetDefault("backup.retention_count", backup.DefaultRetentionCount)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		// If config file not found...
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If user specified a path, this is an error
			if path != "" {
				return nil, fmt.Errorf("config file not found at %s: %w", path, err)
			}
			// Otherwise (implicit load), it's fine to use defaults
		} else {
			// Real read error (parsing, permissions, etc)
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Validate checks the loaded configuration for consistency.
func Validate(cfg *Config) error {
	if cfg.Backup.RetentionCount < 0 {
		return fmt.Errorf("backup.retention_count must be non-negative, got %d", cfg.Backup.RetentionCount)
	}
	if cfg.DefaultShell != "" && !shell.Valid(cfg.DefaultShell) {
		return fmt.Errorf("default_shell %q is not a supported shell", cfg.DefaultShell)
	}
	return nil
}
