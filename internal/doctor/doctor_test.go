package doctor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aliasforge/aliasforge/internal/alias"
	"github.com/aliasforge/aliasforge/internal/backup"
	"github.com/aliasforge/aliasforge/internal/block"
	"github.com/aliasforge/aliasforge/internal/shell"
	"github.com/aliasforge/aliasforge/internal/store"
)

// stubCheck returns a fixed result.
type stubCheck struct {
	name   string
	status Severity
}

func (c stubCheck) Name() string     { return c.name }
func (c stubCheck) Category() string { return "test" }
func (c stubCheck) Run() *CheckResult {
	return &CheckResult{Name: c.name, Category: "test", Status: c.status}
}

func TestRunner_Summary(t *testing.T) {
	r := NewRunner()
	r.AddCheck(stubCheck{"a", SeverityPass})
	r.AddCheck(stubCheck{"b", SeverityPass})
	r.AddCheck(stubCheck{"c", SeverityInfo})
	r.AddCheck(stubCheck{"d", SeverityWarning})
	r.AddCheck(stubCheck{"e", SeverityError})

	report := r.Run()

	if report.Summary.Passed != 2 || report.Summary.Info != 1 ||
		report.Summary.Warnings != 1 || report.Summary.Errors != 1 {
		t.Errorf("Summary = %+v", report.Summary)
	}
	if report.Healthy() {
		t.Error("Healthy() = true with an error result")
	}
	if len(report.Results) != 5 {
		t.Errorf("Results = %d, want 5", len(report.Results))
	}
}

func TestReport_Healthy(t *testing.T) {
	r := NewRunner()
	r.AddCheck(stubCheck{"a", SeverityPass})
	r.AddCheck(stubCheck{"b", SeverityWarning})

	if !r.Run().Healthy() {
		t.Error("warnings alone must not mark the report unhealthy")
	}
}

func TestStoreCheck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aliases.toml")
	s := store.New(path)
	if err := s.Add(alias.New("gs", "git status")); err != nil {
		t.Fatal(err)
	}

	result := (&StoreCheck{Store: s}).Run()
	if result.Status != SeverityPass {
		t.Errorf("Status = %v, want pass: %s", result.Status, result.Message)
	}
	if !strings.Contains(result.Message, "1 aliases") {
		t.Errorf("Message = %q", result.Message)
	}
}

func TestStoreCheck_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aliases.toml")
	if err := os.WriteFile(path, []byte("not [valid"), 0o644); err != nil {
		t.Fatal(err)
	}

	result := (&StoreCheck{Store: store.New(path)}).Run()
	if result.Status != SeverityError {
		t.Errorf("Status = %v, want error", result.Status)
	}
	if result.FixHint == "" {
		t.Error("corrupt store must carry a fix hint")
	}
}

func zshShell(t *testing.T) shell.Shell {
	t.Helper()
	s, err := shell.Get(shell.Zsh)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestBlockCheck(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	s := zshShell(t)
	m := block.MarkersFor(s)
	rcPath := filepath.Join(home, ".zshrc")

	tests := []struct {
		desc    string
		content string
		missing bool
		status  Severity
	}{
		{"no file", "", true, SeverityInfo},
		{"no block", "plain content\n", false, SeverityInfo},
		{"intact block", m.Start + "\nalias gs='git status'\n" + m.End + "\n", false, SeverityPass},
		{"start only", m.Start + "\n", false, SeverityError},
		{"end only", m.End + "\n", false, SeverityError},
		{"reversed", m.End + "\n" + m.Start + "\n", false, SeverityError},
		{"duplicated", m.Start + "\n" + m.End + "\n" + m.Start + "\n" + m.End + "\n", false, SeverityWarning},
	}

	for _, tt := range tests {
		if tt.missing {
			os.Remove(rcPath)
		} else {
			if err := os.WriteFile(rcPath, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
		}

		result := (&BlockCheck{Shell: s}).Run()
		if result.Status != tt.status {
			t.Errorf("%s: Status = %v, want %v (%s)", tt.desc, result.Status, tt.status, result.Message)
		}
	}
}

func TestBackupCheck(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	s := zshShell(t)
	mgr := backup.NewManager()

	result := (&BackupCheck{Shell: s, Manager: mgr}).Run()
	if result.Status != SeverityInfo {
		t.Errorf("Status = %v, want info with no backups", result.Status)
	}

	rcPath := filepath.Join(home, ".zshrc")
	if err := os.WriteFile(rcPath, []byte("content\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := mgr.Create(rcPath); err != nil {
		t.Fatal(err)
	}

	result = (&BackupCheck{Shell: s, Manager: mgr}).Run()
	if result.Status != SeverityPass {
		t.Errorf("Status = %v, want pass with a backup present", result.Status)
	}
	if !strings.Contains(result.Message, "1 backup") {
		t.Errorf("Message = %q", result.Message)
	}
}
