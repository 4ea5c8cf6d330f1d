// Package logging provides structured logging for the aliasforge CLI.
//
// It builds on log/slog with a TTY-optimized text handler that colorizes
// output when writing to a terminal, a JSON handler for machine-readable
// logs, and a MultiHandler that fans records out to several destinations
// (used for --log-file).
//
// Verbosity flags map onto levels via [LevelFromVerbosity]: no flag is
// Info, -v is Debug, -vv is Trace.
//
// Tests can use [ForTest] to route log output through testing.T so
// messages only surface for failing or verbose test runs.
package logging
