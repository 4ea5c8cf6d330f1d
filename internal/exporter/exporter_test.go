package exporter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/aliasforge/aliasforge/internal/alias"
	"github.com/aliasforge/aliasforge/internal/backup"
	"github.com/aliasforge/aliasforge/internal/shell"
)

var testTime = time.Date(2026, 1, 26, 10, 0, 0, 0, time.UTC)

func fixedClock() func() time.Time {
	t := testTime
	return func() time.Time {
		t = t.Add(time.Millisecond)
		return t
	}
}

func zsh(t *testing.T) shell.Shell {
	t.Helper()
	s, err := shell.Get(shell.Zsh)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func testRecords() []alias.Record {
	return []alias.Record{
		{ID: "a1", Name: "gs", Command: "git status", Enabled: true},
		{ID: "a2", Name: "ll", Command: "ls -la", Description: "long listing", Enabled: true},
		{ID: "a3", Name: "off", Command: "true", Enabled: false},
	}
}

func TestToShell_NewFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".zshrc")

	e := New(WithClock(fixedClock()))
	result, err := e.ToShell(testRecords(), zsh(t), path)
	if err != nil {
		t.Fatalf("ToShell() error = %v", err)
	}

	if result.Path != path {
		t.Errorf("Path = %q, want %q", result.Path, path)
	}
	if result.BackupPath != "" {
		t.Errorf("BackupPath = %q, want empty for a new file", result.BackupPath)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)

	if !strings.Contains(text, "alias gs='git status'") {
		t.Errorf("missing exported alias:\n%s", text)
	}
	if !strings.Contains(text, "# long listing\nalias ll='ls -la'") {
		t.Errorf("missing description comment:\n%s", text)
	}
	if strings.Contains(text, "off") {
		t.Errorf("disabled alias must not be exported:\n%s", text)
	}
}

func TestToShell_PreservesUserContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".zshrc")
	userContent := "export PATH=$PATH:~/bin\nalias mine='untouched'\n"
	if err := os.WriteFile(path, []byte(userContent), 0o600); err != nil {
		t.Fatal(err)
	}

	e := New(WithClock(fixedClock()))
	result, err := e.ToShell(testRecords(), zsh(t), path)
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)

	if !strings.HasPrefix(text, "export PATH=$PATH:~/bin\nalias mine='untouched'\n") {
		t.Errorf("user content must survive:\n%s", text)
	}

	// Existing file means a backup was taken, holding the pre-write bytes
	if result.BackupPath == "" {
		t.Fatal("BackupPath must be set when the target existed")
	}
	backupData, err := os.ReadFile(result.BackupPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(backupData) != userContent {
		t.Errorf("backup content = %q, want the pre-write bytes", backupData)
	}

	// File mode is preserved
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("mode = %v, want 0600 preserved", info.Mode().Perm())
	}
}

// Re-exporting the same set twice must leave the file byte-identical
// apart from the timestamp line.
func TestToShell_Idempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".zshrc")
	if err := os.WriteFile(path, []byte("# my config\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	e := New(WithClock(fixedClock()))
	records := testRecords()

	if _, err := e.ToShell(records, zsh(t), path); err != nil {
		t.Fatal(err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := e.ToShell(records, zsh(t), path); err != nil {
		t.Fatal(err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if stripTimestamp(string(first)) != stripTimestamp(string(second)) {
		t.Errorf("repeated export changed content:\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}

func stripTimestamp(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.Contains(line, "Last updated:") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

func TestToShell_BackupRetention(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".zshrc")
	if err := os.WriteFile(path, []byte("x\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	mgr := backup.NewManager(backup.WithRetentionCount(2))
	e := New(WithClock(fixedClock()), WithBackupManager(mgr))

	for range 5 {
		if _, err := e.ToShell(testRecords(), zsh(t), path); err != nil {
			t.Fatal(err)
		}
	}

	snapshots, err := mgr.List(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(snapshots) > 2 {
		t.Errorf("%d backups remain, retention is 2", len(snapshots))
	}
}

func TestToJSON(t *testing.T) {
	e := New(WithClock(fixedClock()))

	out, err := e.ToJSON(testRecords())
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	if !strings.Contains(out, `"version": "1.0"`) {
		t.Errorf("missing version:\n%s", out)
	}
	if !strings.Contains(out, `"exportDate"`) {
		t.Errorf("missing exportDate:\n%s", out)
	}
	// Disabled records are part of the portable document
	if !strings.Contains(out, `"off"`) {
		t.Errorf("disabled record must be included:\n%s", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("document must end with a newline")
	}
}

func TestToJSON_Empty(t *testing.T) {
	e := New(WithClock(fixedClock()))

	out, err := e.ToJSON(nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `"aliases": []`) {
		t.Errorf("empty collection must serialize as [], got:\n%s", out)
	}
}

func TestToShell_BackupFailureAbortsWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".zshrc")
	original := "# hand-written setup\n"
	if err := os.WriteFile(path, []byte(original), 0o644); err != nil {
		t.Fatal(err)
	}

	// Occupy the snapshot's destination with a directory so the
	// snapshot rename cannot land.
	stamp := testTime
	if err := os.Mkdir(backup.BackupPathFor(path, stamp), 0o755); err != nil {
		t.Fatal(err)
	}

	mgr := backup.NewManager(backup.WithClock(func() time.Time { return stamp }))
	e := New(WithClock(fixedClock()), WithBackupManager(mgr))

	_, err := e.ToShell(testRecords(), zsh(t), path)
	if err == nil {
		t.Fatal("ToShell() succeeded with a failing backup")
	}
	if !errors.Is(err, backup.ErrBackupFailed) {
		t.Errorf("error = %v, want ErrBackupFailed", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != original {
		t.Errorf("target was rewritten after a failed backup:\n%s", data)
	}
}
