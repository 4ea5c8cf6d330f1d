package shell

import (
	"fmt"
	"strings"
)

// cmdShell implements the Shell grammar for the Windows command prompt.
//
// Aliases are doskey macros (name=command). The managed file is a plain
// macrofile suitable for "doskey /macrofile=...". cmd has no quote
// stripping: macro bodies are taken verbatim after the first '='.
type cmdShell struct{}

func (*cmdShell) Name() string          { return Cmd }
func (*cmdShell) DisplayName() string   { return "Command Prompt" }
func (*cmdShell) CommentPrefix() string { return "::" }

func (*cmdShell) RenderAlias(name, command string) string {
	return fmt.Sprintf("%s=%s", name, command)
}

func (*cmdShell) ParseAliasLine(line string) (string, string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "::") || strings.HasPrefix(line, "REM ") {
		return "", "", false
	}

	idx := strings.Index(line, "=")
	if idx <= 0 {
		return "", "", false
	}

	name := strings.TrimSpace(line[:idx])
	command := line[idx+1:]
	if command == "" {
		return "", "", false
	}

	return name, command, true
}

func (*cmdShell) DefaultConfigPath() string { return "~/aliases.cmd" }

func (*cmdShell) ListArgs() []string { return []string{"cmd", "/c", "doskey /macros"} }
