package shell

import (
	"fmt"
	"strings"
)

// fishShell implements the Shell grammar for fish.
//
// Fish uses space-separated alias definitions (alias name 'body') and
// backslash escaping inside single quotes, unlike the POSIX close-reopen
// sequence.
type fishShell struct{}

func (*fishShell) Name() string          { return Fish }
func (*fishShell) DisplayName() string   { return "Fish" }
func (*fishShell) CommentPrefix() string { return "#" }

// escapeFish escapes command text for a single-quoted fish string.
// Inside single quotes fish honors \\ and \' escapes only.
func escapeFish(command string) string {
	command = strings.ReplaceAll(command, `\`, `\\`)
	command = strings.ReplaceAll(command, `'`, `\'`)
	return command
}

// unescapeFish is the inverse of escapeFish.
func unescapeFish(command string) string {
	var b strings.Builder
	b.Grow(len(command))
	for i := 0; i < len(command); i++ {
		if command[i] == '\\' && i+1 < len(command) {
			next := command[i+1]
			if next == '\\' || next == '\'' {
				b.WriteByte(next)
				i++
				continue
			}
		}
		b.WriteByte(command[i])
	}
	return b.String()
}

func (*fishShell) RenderAlias(name, command string) string {
	return fmt.Sprintf("alias %s '%s'", name, escapeFish(command))
}

// ParseAliasLine handles fish's space-separated listing form
// (alias name 'body') and falls back to the name=value form fish also
// accepts in definitions.
func (*fishShell) ParseAliasLine(line string) (string, string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}

	if !strings.HasPrefix(line, "alias ") {
		return "", "", false
	}
	rest := strings.TrimSpace(strings.TrimPrefix(line, "alias "))

	// name=value fallback, quoted like POSIX
	if idx := strings.Index(rest, "="); idx > 0 && (strings.Index(rest, " ") == -1 || idx < strings.Index(rest, " ")) {
		return rest[:idx], unquoteFish(rest[idx+1:]), true
	}

	idx := strings.Index(rest, " ")
	if idx <= 0 {
		return "", "", false
	}

	name := rest[:idx]
	body := strings.TrimSpace(rest[idx+1:])
	return name, unquoteFish(body), true
}

// unquoteFish strips one layer of matching single quoting and undoes fish's
// backslash escapes. Unquoted values are returned verbatim.
func unquoteFish(s string) string {
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		return unescapeFish(s[1 : len(s)-1])
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return unescapeFish(s[1 : len(s)-1])
	}
	return s
}

func (*fishShell) DefaultConfigPath() string { return "~/.config/fish/config.fish" }

func (*fishShell) ListArgs() []string { return []string{"fish", "-c", "alias"} }
