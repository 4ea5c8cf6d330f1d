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

var pruneKeep int

func init() {
	backupPruneCmd.Flags().IntVar(&pruneKeep, "keep", backup.DefaultRetentionCount,
		"number of most recent backups to keep")
	backupCmd.AddCommand(backupPruneCmd)
}

var backupPruneCmd = &cobra.Command{
	Use:   "prune <path>",
	Short: "Remove old backups beyond the retention count",
	Long: `Delete backups of a file beyond the retention count, oldest first.

Export already prunes automatically after each backup it takes; this
command is for reclaiming space manually or after lowering the
retention count.`,
	Example: `  # Keep the five most recent backups (the default)
  aliasforge backup prune ~/.zshrc

  # Keep only the two most recent
  aliasforge backup prune ~/.zshrc --keep 2`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runBackupPruneWithWriter(os.Stdout, args[0], pruneKeep)
	},
}

func runBackupPruneWithWriter(w io.Writer, path string, keep int) error {
	if keep < 0 {
		return errors.NewUserError(
			errors.Newf("invalid --keep value %d", keep),
			"Use a non-negative retention count")
	}

	path = paths.ExpandHome(path)
	mgr := backupManager()

	snapshots, err := mgr.List(path)
	if err != nil {
		if errors.Is(err, backup.ErrNoBackupsFound) {
			fmt.Fprintf(w, "%sNo backups found for %s%s\n", colorYellow, path, colorReset)
			return nil
		}
		return errors.Wrap(err, "listing backups")
	}

	removed := len(snapshots) - keep
	if removed <= 0 {
		fmt.Fprintf(w, "Nothing to prune: %d backup(s), keeping %d\n", len(snapshots), keep)
		return nil
	}

	if err := mgr.Prune(path, keep); err != nil {
		return errors.Wrap(err, "pruning backups")
	}

	fmt.Fprintf(w, "%s✓ Removed %d backup(s), kept %d%s\n",
		colorGreen, removed, keep, colorReset)
	return nil
}
