package commands

import (
	"github.com/aliasforge/aliasforge/internal/backup"
	"github.com/aliasforge/aliasforge/internal/store"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// truncate shortens a string to maxLen characters, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// openStore builds the Store from the resolved path.
func openStore() *store.Store {
	return store.New(storePath())
}

// backupManager builds the backup Manager from the configured retention.
func backupManager() *backup.Manager {
	if n := retentionCount(); n > 0 {
		return backup.NewManager(backup.WithRetentionCount(n))
	}
	return backup.NewManager()
}
