package shell

import (
	"fmt"
	"strings"
)

// escapePosix escapes command text for embedding inside single quotes.
// A single quote cannot appear inside a single-quoted POSIX string, so each
// one is replaced by the four-character sequence that closes the quote,
// inserts an escaped literal quote, and reopens the quote. Re-parsing
// recovers the original command byte-for-byte.
func escapePosix(command string) string {
	return strings.ReplaceAll(command, "'", `'\''`)
}

// unescapePosix is the inverse of escapePosix.
func unescapePosix(command string) string {
	return strings.ReplaceAll(command, `'\''`, "'")
}

// renderPosixAlias renders the canonical POSIX alias statement.
func renderPosixAlias(name, command string) string {
	return fmt.Sprintf("alias %s='%s'", name, escapePosix(command))
}

// parsePosixAliasLine extracts (name, command) from one line of POSIX-style
// alias output. The line may or may not carry the leading "alias " keyword;
// zsh's builtin prints bare name=value pairs while bash prefixes each line.
func parsePosixAliasLine(line string) (string, string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}

	line = strings.TrimPrefix(line, "alias ")

	idx := strings.Index(line, "=")
	if idx <= 0 {
		return "", "", false
	}

	name := strings.TrimSpace(line[:idx])
	rest := line[idx+1:]

	return name, unquotePosix(rest), true
}

// unquotePosix strips one layer of matching single or double quoting from
// an alias value, undoing the shell's own escaping. Unquoted values are
// returned verbatim.
func unquotePosix(s string) string {
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		return unescapePosix(s[1 : len(s)-1])
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		inner := s[1 : len(s)-1]
		inner = strings.ReplaceAll(inner, `\"`, `"`)
		inner = strings.ReplaceAll(inner, `\\`, `\`)
		return inner
	}
	return s
}

// zshShell implements the Shell grammar for zsh.
type zshShell struct{}

func (*zshShell) Name() string          { return Zsh }
func (*zshShell) DisplayName() string   { return "Zsh" }
func (*zshShell) CommentPrefix() string { return "#" }

func (*zshShell) RenderAlias(name, command string) string {
	return renderPosixAlias(name, command)
}

func (*zshShell) ParseAliasLine(line string) (string, string, bool) {
	return parsePosixAliasLine(line)
}

func (*zshShell) DefaultConfigPath() string { return "~/.zshrc" }

// ListArgs runs zsh interactively so user-defined aliases from ~/.zshrc are
// loaded before listing.
func (*zshShell) ListArgs() []string { return []string{"zsh", "-ic", "alias"} }

// bashShell implements the Shell grammar for bash.
type bashShell struct{}

func (*bashShell) Name() string          { return Bash }
func (*bashShell) DisplayName() string   { return "Bash" }
func (*bashShell) CommentPrefix() string { return "#" }

func (*bashShell) RenderAlias(name, command string) string {
	return renderPosixAlias(name, command)
}

func (*bashShell) ParseAliasLine(line string) (string, string, bool) {
	return parsePosixAliasLine(line)
}

func (*bashShell) DefaultConfigPath() string { return "~/.bashrc" }

func (*bashShell) ListArgs() []string { return []string{"bash", "-ic", "alias"} }
