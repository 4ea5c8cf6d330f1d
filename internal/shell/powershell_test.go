package shell

import "testing"

func TestPowerShellRenderAlias(t *testing.T) {
	s := &powerShell{}

	got := s.RenderAlias("gs", "git status")
	want := "function gs { git status }"
	if got != want {
		t.Errorf("RenderAlias() = %q, want %q", got, want)
	}
}

func TestPowerShellParseAliasLine(t *testing.T) {
	s := &powerShell{}

	tests := []struct {
		line    string
		name    string
		command string
		ok      bool
	}{
		{"function gs { git status }", "gs", "git status", true},
		{"function up {cd ..}", "up", "cd ..", true},
		{"ls  Get-ChildItem", "ls", "Get-ChildItem", true},
		{"gci -> Get-ChildItem  Get-ChildItem", "gci", "Get-ChildItem", true},
		{"Name  Definition", "", "", false},
		{"----  ----------", "", "", false},
		{"CommandType  Name", "", "", false},
		{"# comment", "", "", false},
		{"", "", "", false},
		{"single-column", "", "", false},
	}

	for _, tt := range tests {
		name, command, ok := s.ParseAliasLine(tt.line)
		if ok != tt.ok {
			t.Errorf("ParseAliasLine(%q) ok = %v, want %v", tt.line, ok, tt.ok)
			continue
		}
		if ok && (name != tt.name || command != tt.command) {
			t.Errorf("ParseAliasLine(%q) = (%q, %q), want (%q, %q)",
				tt.line, name, command, tt.name, tt.command)
		}
	}
}

func TestPowerShellRoundTrip(t *testing.T) {
	s := &powerShell{}

	commands := []string{
		"git status",
		"Get-ChildItem -Force",
		`Set-Location "C:\Users"`,
	}

	for _, cmd := range commands {
		line := s.RenderAlias("x", cmd)
		name, got, ok := s.ParseAliasLine(line)
		if !ok {
			t.Fatalf("ParseAliasLine(%q) not ok", line)
		}
		if name != "x" || got != cmd {
			t.Errorf("round trip of %q = (%q, %q)", cmd, name, got)
		}
	}
}
