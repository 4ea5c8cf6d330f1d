package importer

import "testing"

func TestSanitize(t *testing.T) {
	tests := []struct {
		desc string
		in   string
		want string
	}{
		{"plain text", "alias gs='git status'", "alias gs='git status'"},
		{"csi color", "\x1b[32malias gs='git status'\x1b[0m", "alias gs='git status'"},
		{"csi cursor", "\x1b[2J\x1b[Halias up='cd ..'", "alias up='cd ..'"},
		{"osc bel title", "\x1b]0;window title\x07alias x='y'", "alias x='y'"},
		{"osc st title", "\x1b]2;title\x1b\\alias x='y'", "alias x='y'"},
		{"two byte esc", "\x1b=alias x='y'\x1b>", "alias x='y'"},
		{"crlf", "alias a='1'\r\nalias b='2'\r\n", "alias a='1'\nalias b='2'\n"},
		{"c0 controls", "ali\x08as x='y'\x00", "alias x='y'"},
		{"del", "alias\x7f x='y'", "alias x='y'"},
		{"tabs kept", "name\tdefinition", "name\tdefinition"},
		{"trailing esc", "alias x='y'\x1b", "alias x='y'"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		if got := Sanitize(tt.in); got != tt.want {
			t.Errorf("%s: Sanitize(%q) = %q, want %q", tt.desc, tt.in, got, tt.want)
		}
	}
}
