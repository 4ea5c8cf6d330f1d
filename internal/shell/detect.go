package shell

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/aliasforge/aliasforge/internal/paths"
)

// DetectionResult contains information about the user's login shell.
type DetectionResult struct {
	// Platform is the operating system (linux, darwin, windows).
	Platform string

	// DefaultShellID is the identifier of the detected shell.
	DefaultShellID string

	// BinaryPath is the path to the shell binary, when known.
	BinaryPath string

	// ConfigPath is the absolute path to the shell's config file.
	ConfigPath string
}

// Detect determines the user's default shell from the environment.
//
// On Unix the SHELL variable decides; unknown or missing values fall back
// to bash. On Windows PowerShell is assumed unless COMSPEC is the only
// hint available, in which case cmd is used.
func Detect() DetectionResult {
	result := DetectionResult{Platform: runtime.GOOS}

	if runtime.GOOS == "windows" {
		result.DefaultShellID = PowerShell
		if _, ok := os.LookupEnv("PSModulePath"); !ok {
			if comspec := os.Getenv("COMSPEC"); comspec != "" {
				result.DefaultShellID = Cmd
				result.BinaryPath = comspec
			}
		}
	} else {
		result.DefaultShellID = Bash
		if shellPath := os.Getenv("SHELL"); shellPath != "" {
			result.BinaryPath = shellPath
			if id := filepath.Base(shellPath); Valid(id) {
				result.DefaultShellID = id
			}
		}
	}

	if s, err := Get(result.DefaultShellID); err == nil {
		result.ConfigPath = paths.ExpandHome(s.DefaultConfigPath())
	}

	return result
}

// ConfigPath returns the absolute config file path for the given shell,
// with the home directory expanded.
func ConfigPath(s Shell) string {
	return paths.ExpandHome(s.DefaultConfigPath())
}
