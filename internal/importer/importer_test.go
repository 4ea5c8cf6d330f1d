package importer

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/aliasforge/aliasforge/internal/alias"
	"github.com/aliasforge/aliasforge/internal/shell"
)

// cannedRunner returns fixed output or a fixed error.
type cannedRunner struct {
	out []byte
	err error
}

func (r cannedRunner) Run(_ context.Context, _ []string) ([]byte, error) {
	return r.out, r.err
}

func TestFromShell(t *testing.T) {
	s, err := shell.Get(shell.Zsh)
	if err != nil {
		t.Fatal(err)
	}

	out := "gs='git status'\nll='ls -la'\n"
	imp := New(WithRunner(cannedRunner{out: []byte(out)}))

	result := imp.FromShell(context.Background(), s)
	if result.Err != "" {
		t.Fatalf("FromShell() Err = %q", result.Err)
	}
	if len(result.Aliases) != 2 {
		t.Fatalf("FromShell() returned %d aliases, want 2", len(result.Aliases))
	}
	if result.Aliases[0].Name != "gs" || result.Aliases[0].Command != "git status" {
		t.Errorf("first alias = %+v", result.Aliases[0])
	}
}

// A shell that cannot be spawned yields an empty result with a
// description, never an error.
func TestFromShell_ProcessFailure(t *testing.T) {
	s, err := shell.Get(shell.Bash)
	if err != nil {
		t.Fatal(err)
	}

	imp := New(WithRunner(cannedRunner{err: errors.New("exec: bash: not found")}))

	result := imp.FromShell(context.Background(), s)
	if result.Err == "" {
		t.Fatal("FromShell() must surface the process failure in Err")
	}
	if len(result.Aliases) != 0 {
		t.Errorf("FromShell() aliases = %d, want 0 on process failure", len(result.Aliases))
	}
}

func TestParseListing(t *testing.T) {
	s, err := shell.Get(shell.Zsh)
	if err != nil {
		t.Fatal(err)
	}

	raw := `gs='git status'
run-help=man
-='cd -'
...='cd ../..'
ll='ls -la'
garbage line without equals
`
	result := New().ParseListing(s, raw)

	names := make([]string, 0, len(result.Aliases))
	for _, r := range result.Aliases {
		names = append(names, r.Name)
	}

	want := []string{"gs", "run-help", "ll"}
	if len(names) != len(want) {
		t.Fatalf("parsed names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("parsed names = %v, want %v", names, want)
			break
		}
	}

	// "-" and "..." are rejected names
	if result.Skipped != 2 {
		t.Errorf("Skipped = %d, want 2", result.Skipped)
	}
}

func TestParseListing_RecordDefaults(t *testing.T) {
	s, err := shell.Get(shell.Zsh)
	if err != nil {
		t.Fatal(err)
	}

	result := New().ParseListing(s, "gs='git status'\n")
	if len(result.Aliases) != 1 {
		t.Fatal("expected one alias")
	}

	r := result.Aliases[0]
	if r.ID == "" {
		t.Error("imported record must get a fresh ID")
	}
	if !r.Enabled {
		t.Error("imported record must be enabled")
	}
	if r.Source != alias.SourceImported {
		t.Errorf("Source = %q, want imported", r.Source)
	}
	if len(r.Tags) != 1 || r.Tags[0] != "imported" {
		t.Errorf("Tags = %v, want [imported]", r.Tags)
	}
}

func TestParseListing_StripsControlSequences(t *testing.T) {
	s, err := shell.Get(shell.Zsh)
	if err != nil {
		t.Fatal(err)
	}

	raw := "\x1b]0;zsh\x07\x1b[32mgs='git status'\x1b[0m\r\n"
	result := New().ParseListing(s, raw)

	if len(result.Aliases) != 1 {
		t.Fatalf("parsed %d aliases, want 1", len(result.Aliases))
	}
	if result.Aliases[0].Command != "git status" {
		t.Errorf("Command = %q", result.Aliases[0].Command)
	}
}
