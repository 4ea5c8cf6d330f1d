// Package shell defines the per-shell grammar table for aliasforge.
//
// Each supported shell (zsh, bash, fish, powershell, cmd) implements the
// [Shell] interface: statement rendering, inverse line parsing, comment
// syntax, the default config file location, and the argv used to list a
// live shell's aliases. Grammars are isolated strategies selected through
// a registry so new shells can be added without touching existing ones.
//
// All grammars are pure lookup surfaces with no I/O. Quoting contracts
// guarantee that for any command text, parsing a rendered statement
// recovers the original bytes:
//
//   - POSIX shells (zsh, bash): single quotes, each ' escaped as the
//     close-insert-reopen sequence
//   - fish: single quotes with backslash escapes (\' and \\)
//   - PowerShell: function wrapper, command text verbatim
//   - cmd: doskey macro form, command text verbatim after the first '='
package shell
