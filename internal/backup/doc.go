// Package backup provides backup and rollback capabilities for shell
// config files modified by aliasforge.
//
// # Backup Strategy
//
// Before every mutating write, the current bytes of the target file are
// copied verbatim to a timestamped sibling path:
//
//	~/.zshrc
//	~/.zshrc.backup-2026-01-26T10-00-00-000Z
//	~/.zshrc.backup-2026-01-25T18-31-07-412Z
//
// The snapshot ID is the ISO-8601 UTC creation time with colons and dots
// replaced by dashes, so IDs are filename-safe everywhere and sort
// chronologically. A missing target file is skipped silently: there is
// nothing to preserve.
//
// Backup creation failure aborts the pending write. The engine never
// writes new content it could not first preserve, which guarantees
// rollback is possible for any successful write.
//
// # Creating Snapshots
//
// Use [Manager.Create] before writing:
//
//	mgr := backup.NewManager()
//	snapshot, err := mgr.Create("/home/user/.zshrc")
//
// # Restoring
//
// [Manager.Restore] and [Manager.RestoreLatest] copy a snapshot's bytes
// back over the target path verbatim. Restore is a pure byte-level
// operation: it never re-invokes the exporter or re-parses content.
//
// # Retention
//
// At most RetentionCount snapshots are kept per target path (default 5).
// [Manager.Create] prunes oldest-first after each snapshot; [Manager.Prune]
// is also available directly.
package backup
