package shell

import (
	"fmt"
	"regexp"
	"strings"
)

// powerShell implements the Shell grammar for PowerShell.
//
// Aliases are exported as functions rather than Set-Alias statements:
// PowerShell aliases can only point at commands, not at command lines with
// arguments, so a function wrapper is the only form that preserves
// arbitrary command text.
type powerShell struct{}

func (*powerShell) Name() string          { return PowerShell }
func (*powerShell) DisplayName() string   { return "PowerShell" }
func (*powerShell) CommentPrefix() string { return "#" }

func (*powerShell) RenderAlias(name, command string) string {
	return fmt.Sprintf("function %s { %s }", name, command)
}

// columnSplit matches runs of 2+ spaces separating Get-Alias table columns.
var columnSplit = regexp.MustCompile(`\s{2,}`)

// functionLine matches the function form this grammar renders.
var functionLine = regexp.MustCompile(`^function\s+(\S+)\s*\{\s*(.*?)\s*\}$`)

// ParseAliasLine handles both the function form written by RenderAlias and
// the two-column (Name, Definition) table produced by Get-Alias.
func (*powerShell) ParseAliasLine(line string) (string, string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}

	if m := functionLine.FindStringSubmatch(line); m != nil {
		return m[1], m[2], true
	}

	// Skip table headers and separators
	lower := strings.ToLower(line)
	if strings.HasPrefix(lower, "name") || strings.HasPrefix(line, "----") ||
		strings.HasPrefix(lower, "commandtype") {
		return "", "", false
	}

	cols := columnSplit.Split(line, 2)
	if len(cols) != 2 {
		return "", "", false
	}

	name := strings.TrimSpace(cols[0])
	definition := strings.TrimSpace(cols[1])
	if name == "" || definition == "" {
		return "", "", false
	}

	// Get-Alias renders the name column as "alias -> definition" under
	// some format views; keep only the alias part.
	if idx := strings.Index(name, " -> "); idx > 0 {
		name = name[:idx]
	}

	return name, definition, true
}

func (*powerShell) DefaultConfigPath() string {
	return "~/Documents/PowerShell/Microsoft.PowerShell_profile.ps1"
}

func (*powerShell) ListArgs() []string {
	return []string{
		"powershell", "-NoProfile", "-Command",
		"Get-Alias | Format-Table Name, Definition -AutoSize",
	}
}
