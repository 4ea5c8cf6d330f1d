package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"github.com/aliasforge/aliasforge/internal/backup"
	"github.com/aliasforge/aliasforge/internal/shell"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	Init()
}

func TestLoad_Defaults(t *testing.T) {
	// Keep the "." search path away from any real config file
	t.Chdir(t.TempDir())
	resetViper(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Version != 1 {
		t.Errorf("Version = %d, want 1", cfg.Version)
	}
	if cfg.DefaultShell != "" {
		t.Errorf("DefaultShell = %q, want empty", cfg.DefaultShell)
	}
	if cfg.Backup.RetentionCount != backup.DefaultRetentionCount {
		t.Errorf("RetentionCount = %d, want %d",
			cfg.Backup.RetentionCount, backup.DefaultRetentionCount)
	}
}

func TestLoad_FromFile(t *testing.T) {
	resetViper(t)

	path := writeConfigFile(t, `
version: 1
default_shell: fish
store:
  path: ~/custom/aliases.toml
backup:
  retention_count: 9
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.DefaultShell != shell.Fish {
		t.Errorf("DefaultShell = %q, want fish", cfg.DefaultShell)
	}
	if cfg.Store.Path != "~/custom/aliases.toml" {
		t.Errorf("Store.Path = %q", cfg.Store.Path)
	}
	if cfg.Backup.RetentionCount != 9 {
		t.Errorf("RetentionCount = %d, want 9", cfg.Backup.RetentionCount)
	}
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	resetViper(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() with an explicit missing path should fail")
	}
}

func TestLoad_Malformed(t *testing.T) {
	resetViper(t)

	path := writeConfigFile(t, "default_shell: [unclosed")
	if _, err := Load(path); err == nil {
		t.Fatal("Load() with malformed YAML should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		desc    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", Config{Version: 1}, false},
		{"valid shell", Config{DefaultShell: "zsh"}, false},
		{"unknown shell", Config{DefaultShell: "tcsh"}, true},
		{"negative retention", Config{Backup: BackupConfig{RetentionCount: -1}}, true},
		{"positive retention", Config{Backup: BackupConfig{RetentionCount: 10}}, false},
	}

	for _, tt := range tests {
		err := Validate(&tt.cfg)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: Validate() error = %v, wantErr %v", tt.desc, err, tt.wantErr)
		}
	}
}
