package shell

// Shell defines the grammar contract for one supported shell. It is a pure
// lookup surface: implementations perform no I/O and are safe for
// concurrent use.
type Shell interface {
	// Name returns the shell identifier (zsh, bash, fish, powershell, cmd).
	Name() string

	// DisplayName returns a human-readable shell name.
	DisplayName() string

	// CommentPrefix returns the single-line comment prefix for the shell
	// (e.g. "#" for POSIX shells, "::" for cmd).
	CommentPrefix() string

	// RenderAlias renders one alias statement line for the shell, with
	// quoting/escaping applied so the command text survives re-parsing
	// byte-for-byte.
	RenderAlias(name, command string) string

	// ParseAliasLine attempts to extract (name, command) from one cleaned
	// line of the shell's alias listing output. ok is false when the line
	// is not an alias statement.
	ParseAliasLine(line string) (name, command string, ok bool)

	// DefaultConfigPath returns the default config file path the managed
	// block is written to, with ~ unexpanded.
	DefaultConfigPath() string

	// ListArgs returns the argv used to ask the shell to list its aliases.
	ListArgs() []string
}
