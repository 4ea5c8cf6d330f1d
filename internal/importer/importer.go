// Package importer parses shell-native alias syntax back into structured
// records, from live shell output or from exported JSON documents.
package importer

import (
	"context"
	"log/slog"
	"strings"

	"github.com/aliasforge/aliasforge/internal/alias"
	"github.com/aliasforge/aliasforge/internal/logging"
	"github.com/aliasforge/aliasforge/internal/shell"
)

// Importer converts raw alias listings into Records. All per-line
// failures are accumulated, never raised: a malformed line is skipped
// and parsing continues.
type Importer struct {
	runner Runner
	log    *slog.Logger
}

// Option configures an Importer.
type Option func(*Importer)

// WithRunner overrides the shell process runner. Used in tests.
func WithRunner(r Runner) Option {
	return func(i *Importer) {
		i.runner = r
	}
}

// WithLogger sets the logger for skipped-line diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(i *Importer) {
		i.log = log
	}
}

// New creates an Importer with the given options.
func New(opts ...Option) *Importer {
	i := &Importer{
		runner: execRunner{},
		log:    logging.NewDiscard(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// ShellResult is the outcome of a live-shell import.
type ShellResult struct {
	// Aliases holds the successfully parsed records.
	Aliases []alias.Record

	// Skipped counts lines that looked like alias statements but were
	// rejected (invalid name or unparseable).
	Skipped int

	// Err is non-empty when the shell invocation itself failed. The
	// alias list is empty in that case. Process failure is a result,
	// not a thrown error: the caller decides what to do with it.
	Err string
}

// FromShell invokes the shell's native alias listing and parses the
// output. A spawn failure or non-zero exit yields an empty result with
// the error description; it is never fatal. Cancellation and timeouts
// are governed by the caller through ctx.
func (i *Importer) FromShell(ctx context.Context, s shell.Shell) ShellResult {
	raw, err := i.runner.Run(ctx, s.ListArgs())
	if err != nil {
		i.log.Warn("shell invocation failed", "shell", s.Name(), "error", err)
		return ShellResult{Err: err.Error()}
	}
	return i.ParseListing(s, string(raw))
}

// ParseListing parses raw alias-listing output for the given shell.
// Terminal control sequences are stripped before line splitting.
func (i *Importer) ParseListing(s shell.Shell, raw string) ShellResult {
	var result ShellResult

	for _, line := range strings.Split(Sanitize(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		name, command, ok := s.ParseAliasLine(line)
		if !ok {
			continue
		}
		if command == "" {
			result.Skipped++
			continue
		}
		if !alias.ValidName(name) {
			i.log.Debug("skipping alias with invalid name", "shell", s.Name(), "name", name)
			result.Skipped++
			continue
		}

		result.Aliases = append(result.Aliases, alias.Record{
			ID:      alias.NewID(),
			Name:    name,
			Command: command,
			Tags:    []string{"imported"},
			Enabled: true,
			Source:  alias.SourceImported,
		})
	}

	return result
}
