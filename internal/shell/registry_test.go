package shell

import (
	"testing"

	"github.com/aliasforge/aliasforge/internal/errors"
)

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()

	if err := r.Register(&zshShell{}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	// Duplicate registration is rejected
	err := r.Register(&zshShell{})
	if !errors.Is(err, ErrShellAlreadyRegistered) {
		t.Errorf("Register() duplicate error = %v, want ErrShellAlreadyRegistered", err)
	}
}

func TestRegistry_Get(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(&bashShell{}); err != nil {
		t.Fatal(err)
	}

	s, err := r.Get(Bash)
	if err != nil {
		t.Fatalf("Get(bash) error = %v", err)
	}
	if s.Name() != Bash {
		t.Errorf("Get(bash).Name() = %q", s.Name())
	}

	_, err = r.Get("tcsh")
	if !errors.Is(err, errors.ErrUnknownShell) {
		t.Errorf("Get(tcsh) error = %v, want ErrUnknownShell", err)
	}
}

func TestBuiltinShells(t *testing.T) {
	want := []string{Zsh, Bash, Fish, PowerShell, Cmd}

	all := All()
	if len(all) != len(want) {
		t.Fatalf("All() returned %d shells, want %d", len(all), len(want))
	}
	for i, s := range all {
		if s.Name() != want[i] {
			t.Errorf("All()[%d] = %q, want %q", i, s.Name(), want[i])
		}
	}

	for _, id := range want {
		if !Valid(id) {
			t.Errorf("Valid(%q) = false", id)
		}
	}
	if Valid("tcsh") {
		t.Error("Valid(tcsh) = true")
	}
}

func TestCommentPrefixes(t *testing.T) {
	for _, s := range All() {
		want := "#"
		if s.Name() == Cmd {
			want = "::"
		}
		if got := s.CommentPrefix(); got != want {
			t.Errorf("%s CommentPrefix() = %q, want %q", s.Name(), got, want)
		}
	}
}
