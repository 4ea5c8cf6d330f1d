// Package paths centralizes filesystem path resolution for aliasforge.
//
// It wraps the XDG base directory spec (via adrg/xdg) for the application
// config directory, provides home directory expansion for user-supplied
// paths, and defines the default location of the alias collection file.
package paths
