// Package alias defines the canonical structured representation of one
// shell alias, independent of any shell's syntax.
package alias

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"
)

// Source marks the provenance of a record. It has no behavioral effect on
// export or import other than default-tagging imported records.
type Source string

const (
	// SourceUser marks an alias created by the user.
	SourceUser Source = "user"

	// SourceSystem marks an alias shipped with a predefined set.
	SourceSystem Source = "system"

	// SourceImported marks an alias parsed from a live shell or an
	// exported document.
	SourceImported Source = "imported"
)

// namePattern is the shell-identifier-safe pattern alias names must match.
var namePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// Record is the in-memory representation of one alias. The Command text
// is stored verbatim and never evaluated; it may embed quotes, pipes, and
// variables.
type Record struct {
	// ID is an opaque unique string assigned at creation, immutable.
	ID string `json:"id" toml:"id"`

	// Name is the alias name. Must match ^[A-Za-z_][A-Za-z0-9_-]*$.
	Name string `json:"name" toml:"name"`

	// Command is the literal shell command text.
	Command string `json:"command" toml:"command"`

	// Description is an optional human-readable note, rendered as a
	// comment line above the alias statement on export.
	Description string `json:"description" toml:"description,omitempty"`

	// Tags is an ordered set of labels. Insertion order is preserved but
	// irrelevant for correctness.
	Tags []string `json:"tags" toml:"tags,omitempty"`

	// Enabled controls whether the record is included in exported output.
	// Disabled records are parsed and stored but never exported.
	Enabled bool `json:"enabled" toml:"enabled"`

	// Source is the provenance marker (user, system, imported).
	Source Source `json:"source" toml:"source,omitempty"`

	// Profile is the optional profile the record belongs to. Carried in
	// the exported document for compatibility; empty by default.
	Profile string `json:"profile" toml:"profile,omitempty"`
}

// ValidName reports whether name is safe to use as a shell alias
// identifier.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// Exportable reports whether the record produces a statement line on
// export: it must be enabled and carry a valid name. Records failing
// this check are silently excluded, never an error.
func (r Record) Exportable() bool {
	return r.Enabled && ValidName(r.Name)
}

// NewID generates a fresh opaque record identifier.
func NewID() string {
	b := make([]byte, 12)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand only fails when the OS entropy source is broken;
		// there is no reasonable recovery.
		panic(err)
	}
	return hex.EncodeToString(b)
}

// New creates a user-sourced, enabled Record with a fresh ID.
func New(name, command string) Record {
	return Record{
		ID:      NewID(),
		Name:    name,
		Command: command,
		Enabled: true,
		Source:  SourceUser,
	}
}
