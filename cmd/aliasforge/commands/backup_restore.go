package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aliasforge/aliasforge/internal/backup"
	"github.com/aliasforge/aliasforge/internal/errors"
	"github.com/aliasforge/aliasforge/internal/paths"
)

func init() {
	backupCmd.AddCommand(backupRestoreCmd)
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore <path> [backup-id]",
	Short: "Restore a file from a backup",
	Long: `Copy a backup's bytes back over the target file verbatim.

If no backup ID is provided, the most recent backup is used. Restore is
a pure byte-level operation: it does not re-render aliases or touch the
collection.`,
	Example: `  # Restore from the most recent backup
  aliasforge backup restore ~/.zshrc

  # Restore from a specific backup
  aliasforge backup restore ~/.zshrc 2026-01-26T10-00-00-000Z

  # List available backups first
  aliasforge backup list ~/.zshrc

  See Also:
    aliasforge backup list   - List available backups
    aliasforge backup create - Create a new backup`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runBackupRestore,
}

func runBackupRestore(_ *cobra.Command, args []string) error {
	backupID := ""
	if len(args) > 1 {
		backupID = args[1]
	}
	return runBackupRestoreWithWriter(os.Stdout, args[0], backupID)
}

func runBackupRestoreWithWriter(w io.Writer, path, backupID string) error {
	path = paths.ExpandHome(path)
	mgr := backupManager()

	if backupID == "" {
		snapshot, err := mgr.RestoreLatest(path)
		if err != nil {
			if errors.Is(err, backup.ErrNoBackupsFound) {
				return errors.NewUserError(err,
					fmt.Sprintf("Run 'aliasforge backup list %s' to check for backups", path))
			}
			return errors.Wrap(err, "restoring backup")
		}
		fmt.Fprintf(w, "Using most recent backup: %s\n", snapshot.ID)
		fmt.Fprintf(w, "%s✓ Restored %s from backup %s%s\n",
			colorGreen, path, snapshot.ID, colorReset)
		return nil
	}

	if err := mgr.Restore(path, backupID); err != nil {
		if errors.Is(err, backup.ErrNoBackupsFound) {
			return errors.NewUserError(err,
				fmt.Sprintf("Run 'aliasforge backup list %s' to see backup IDs", path))
		}
		return errors.Wrap(err, "restoring backup")
	}

	fmt.Fprintf(w, "%s✓ Restored %s from backup %s%s\n",
		colorGreen, path, backupID, colorReset)
	return nil
}
