package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aliasforge/aliasforge/internal/errors"
	"github.com/aliasforge/aliasforge/internal/paths"
)

func init() {
	backupCmd.AddCommand(backupCreateCmd)
}

var backupCreateCmd = &cobra.Command{
	Use:   "create <path>",
	Short: "Create a manual backup",
	Long: `Take a timestamped snapshot of a file.

Backups are created automatically before aliasforge writes to a config
file. This command takes an additional snapshot on demand.`,
	Example: `  aliasforge backup create ~/.zshrc

  See Also:
    aliasforge backup list    - List available backups
    aliasforge backup restore - Restore from a backup`,
	Args: cobra.ExactArgs(1),
	RunE: runBackupCreate,
}

func runBackupCreate(_ *cobra.Command, args []string) error {
	return runBackupCreateWithWriter(os.Stdout, args[0])
}

func runBackupCreateWithWriter(w io.Writer, path string) error {
	path = paths.ExpandHome(path)

	snapshot, err := backupManager().Create(path)
	if err != nil {
		return errors.NewSystemError(err, "Check permissions on the file and its directory")
	}
	if snapshot == nil {
		fmt.Fprintf(w, "%s%s does not exist, nothing to back up%s\n",
			colorYellow, path, colorReset)
		return nil
	}

	fmt.Fprintf(w, "%s✓ Created backup %s%s\n", colorGreen, snapshot.BackupPath, colorReset)
	return nil
}
