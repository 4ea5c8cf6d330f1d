// Package config provides configuration management for the aliasforge CLI.
//
// Configuration is loaded from config.yaml in the current directory or
// $XDG_CONFIG_HOME/aliasforge/, with ALIASFORGE_* environment variables
// taking precedence. All keys have working defaults, so a config file is
// optional.
package config
