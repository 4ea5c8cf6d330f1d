package commands

import "github.com/spf13/cobra"

func init() {
	rootCmd.AddCommand(backupCmd)
}

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Manage config file backups",
	Long: `Manage the timestamped backups aliasforge takes before writing to
shell config files.

Backups are sibling files next to the original, named
{path}.backup-{timestamp}. Before every export the current file content
is preserved, so any write can be rolled back byte-for-byte.`,
	Example: `  # List backups of ~/.zshrc
  aliasforge backup list ~/.zshrc

  # Restore the most recent backup
  aliasforge backup restore ~/.zshrc

  # Restore a specific backup
  aliasforge backup restore ~/.zshrc 2026-01-26T10-00-00-000Z

  # Take a manual backup
  aliasforge backup create ~/.zshrc

  # Keep only the 3 most recent backups
  aliasforge backup prune ~/.zshrc --keep 3

  See Also:
    aliasforge backup list    - List available backups
    aliasforge backup restore - Restore from a backup
    aliasforge backup create  - Manually create a backup
    aliasforge backup prune   - Remove old backups`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}
