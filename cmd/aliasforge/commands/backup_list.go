package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aliasforge/aliasforge/internal/backup"
	"github.com/aliasforge/aliasforge/internal/errors"
	"github.com/aliasforge/aliasforge/internal/paths"
)

var backupListJSON bool

func init() {
	backupListCmd.Flags().BoolVar(&backupListJSON, "json", false, "Output in JSON format")
	backupCmd.AddCommand(backupListCmd)
}

var backupListCmd = &cobra.Command{
	Use:   "list <path>",
	Short: "List available backups",
	Long: `List the backups taken for a file, most recent first.`,
	Example: `  # List backups of ~/.zshrc
  aliasforge backup list ~/.zshrc

  # Output as JSON
  aliasforge backup list ~/.zshrc --json

  See Also:
    aliasforge backup restore - Restore from a backup
    aliasforge backup create  - Create a new backup`,
	Args: cobra.ExactArgs(1),
	RunE: runBackupList,
}

func runBackupList(_ *cobra.Command, args []string) error {
	return runBackupListWithWriter(os.Stdout, args[0])
}

func runBackupListWithWriter(w io.Writer, path string) error {
	path = paths.ExpandHome(path)

	snapshots, err := backupManager().List(path)
	if err != nil && !errors.Is(err, backup.ErrNoBackupsFound) {
		return errors.Wrapf(err, "listing backups for %s", path)
	}

	if backupListJSON {
		if snapshots == nil {
			snapshots = []backup.Snapshot{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(snapshots), "encoding output")
	}

	if len(snapshots) == 0 {
		fmt.Fprintf(w, "No backups for %s\n", path)
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Backups are created automatically before aliasforge writes to a config file.")
		fmt.Fprintln(w, "You can also create one manually with: aliasforge backup create", path)
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%sID%s\t%sCREATED%s\n", colorBold, colorReset, colorBold, colorReset)
	for _, s := range snapshots {
		fmt.Fprintf(tw, "%s%s%s\t%s\n",
			colorGreen, s.ID, colorReset,
			s.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	}
	tw.Flush()

	return nil
}
