package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/aliasforge/aliasforge/internal/backup"
	"github.com/aliasforge/aliasforge/internal/config"
	"github.com/aliasforge/aliasforge/internal/errors"
	"github.com/aliasforge/aliasforge/internal/paths"
	"github.com/aliasforge/aliasforge/internal/shell"
	"github.com/aliasforge/aliasforge/pkg/fileutil"
)

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage aliasforge configuration",
	Long: `Manage aliasforge configuration stored in ~/.config/aliasforge/config.yaml.

Without a subcommand, lists all configuration values.`,
	Example: `  # List all configuration
  aliasforge config

  # Get a specific value
  aliasforge config get default_shell

  # Set a value
  aliasforge config set default_shell zsh

  See Also: aliasforge doctor`,
	RunE: runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long: `Get a single configuration value by key.

Supports dot notation for nested keys, e.g. backup.retention_count.`,
	Example: `  # Get the default shell
  aliasforge config get default_shell

  # Get the backup retention count
  aliasforge config get backup.retention_count

  See Also: aliasforge config set, aliasforge config list`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value and write it back to the config file.

Shell names are validated against the supported shells, and the backup
retention count must be a non-negative integer.`,
	Example: `  # Set the default shell
  aliasforge config set default_shell fish

  # Keep ten backups per file instead of five
  aliasforge config set backup.retention_count 10

  See Also: aliasforge config get, aliasforge config list`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration",
	Long:  `List all configuration values in YAML format.`,
	Example: `  # List all configuration
  aliasforge config list

  See Also: aliasforge config get, aliasforge config set`,
	RunE: runConfigList,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default configuration file",
	Long: `Write a config.yaml with default values to the aliasforge config
directory. Refuses to overwrite an existing file.`,
	Example: `  # Create ~/.config/aliasforge/config.yaml
  aliasforge config init`,
	RunE: runConfigInit,
}

func runConfigGet(_ *cobra.Command, args []string) error {
	key := args[0]

	if !viper.IsSet(key) {
		fmt.Println("not set")
		return nil
	}

	val := viper.Get(key)

	switch v := val.(type) {
	case []any:
		for _, item := range v {
			fmt.Println(item)
		}
	case []string:
		for _, item := range v {
			fmt.Println(item)
		}
	default:
		fmt.Println(viper.GetString(key))
	}

	return nil
}

func runConfigSet(_ *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	switch key {
	case "default_shell":
		if value != "" && !shell.Valid(value) {
			return errors.Newf("invalid shell %q (valid: %s)",
				value, strings.Join(shell.IDs(), ", "))
		}
		viper.Set(key, value)

	case "backup.retention_count":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return errors.Newf("backup.retention_count must be a non-negative integer, got %q", value)
		}
		viper.Set(key, n)

	case "version":
		n, err := strconv.Atoi(value)
		if err != nil {
			return errors.Newf("version must be an integer, got %q", value)
		}
		viper.Set(key, n)

	default:
		viper.Set(key, value)
	}

	if err := writeConfig(); err != nil {
		return err
	}
	fmt.Printf("Set %s = %s\n", key, value)
	return nil
}

func runConfigList(_ *cobra.Command, _ []string) error {
	data, err := yaml.Marshal(configSnapshot())
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}

	fmt.Print(string(data))
	return nil
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	configPath := filepath.Join(paths.AppConfigDir(), "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return errors.NewUserError(
			errors.Newf("config file already exists at %s", configPath),
			"Edit it directly or use 'aliasforge config set'")
	}

	if err := paths.EnsureDir(filepath.Dir(configPath), 0); err != nil {
		return errors.Wrap(err, "creating config directory")
	}

	defaults := map[string]any{
		"version":       1,
		"default_shell": "",
		"store": map[string]any{
			"path": "",
		},
		"backup": map[string]any{
			"retention_count": backup.DefaultRetentionCount,
		},
	}
	if err := fileutil.AtomicWriteYAML(configPath, defaults); err != nil {
		return errors.Wrap(err, "writing config file")
	}

	fmt.Printf("%s✓ Created %s%s\n", colorGreen, configPath, colorReset)
	return nil
}

// configSnapshot builds the config structure from the live viper state.
func configSnapshot() map[string]any {
	return map[string]any{
		"version":       viper.GetInt("version"),
		"default_shell": viper.GetString("default_shell"),
		"store": map[string]any{
			"path": viper.GetString("store.path"),
		},
		"backup": map[string]any{
			"retention_count": viper.GetInt("backup.retention_count"),
		},
	}
}

// writeConfig writes the current viper configuration to the config file.
func writeConfig() error {
	configPath := filepath.Join(paths.ConfigHome(), config.AppName, "config.yaml")

	if err := paths.EnsureDir(filepath.Dir(configPath), 0); err != nil {
		return errors.Wrap(err, "creating config directory")
	}

	if err := fileutil.AtomicWriteYAML(configPath, configSnapshot()); err != nil {
		return errors.Wrap(err, "writing config file")
	}

	return nil
}
