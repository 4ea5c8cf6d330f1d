package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aliasforge/aliasforge/internal/errors"
	"github.com/aliasforge/aliasforge/internal/exporter"
	"github.com/aliasforge/aliasforge/internal/paths"
	"github.com/aliasforge/aliasforge/pkg/fileutil"
)

var (
	exportPath   string
	exportOutput string
)

func init() {
	exportShellCmd.Flags().StringVar(&exportPath, "path", "",
		"config file to write (default: the shell's standard config file)")
	exportFileCmd.Flags().StringVarP(&exportOutput, "output", "o", "",
		"write the document to a file instead of stdout")
	exportCmd.AddCommand(exportShellCmd)
	exportCmd.AddCommand(exportFileCmd)
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the alias collection",
	Long: `Export aliases into a shell config file or a portable JSON document.

Shell exports rewrite only the AliasForge managed block; everything else
in the file is preserved byte-for-byte, and a timestamped backup is
taken before every write.`,
	Example: `  # Write the managed block into the detected shell's config
  aliasforge export shell

  # Produce a portable JSON document
  aliasforge export file -o aliases.json`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

var exportShellCmd = &cobra.Command{
	Use:   "shell [shell]",
	Short: "Export aliases into a shell config file",
	Long: `Render enabled aliases in the target shell's syntax and splice them
into the managed block of its config file.

Disabled aliases and aliases with unsafe names are excluded. Re-running
the export replaces the previous block; content outside the block is
never modified. The original file is snapshotted to a timestamped
sibling backup before the write, and a backup failure aborts the
export.`,
	Example: `  # Export to the detected shell
  aliasforge export shell

  # Export to fish
  aliasforge export shell fish

  # Export to a non-standard config location
  aliasforge export shell zsh --path ~/dotfiles/zshrc`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExportShell,
}

func runExportShell(_ *cobra.Command, args []string) error {
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}
	return runExportShellWithWriter(os.Stdout, arg)
}

func runExportShellWithWriter(w io.Writer, arg string) error {
	s, err := targetShell(arg)
	if err != nil {
		return errors.NewUserError(err, "Run 'aliasforge detect' to see the detected shell")
	}

	records, err := openStore().Load()
	if err != nil {
		return errors.Wrap(err, "loading aliases")
	}

	exp := exporter.New(
		exporter.WithBackupManager(backupManager()),
		exporter.WithLogger(slog.Default()),
	)

	result, err := exp.ToShell(records, s, paths.ExpandHome(exportPath))
	if err != nil {
		return errors.NewSystemError(err, "Check permissions on the config file and its directory")
	}

	exported := 0
	for _, r := range records {
		if r.Exportable() {
			exported++
		}
	}

	fmt.Fprintf(w, "%s✓ Exported %d alias(es) to %s%s\n",
		colorGreen, exported, result.Path, colorReset)
	if result.BackupPath != "" {
		fmt.Fprintf(w, "%sBackup: %s%s\n", colorGray, result.BackupPath, colorReset)
	}

	return nil
}

var exportFileCmd = &cobra.Command{
	Use:   "file",
	Short: "Export aliases as a JSON document",
	Long: `Serialize the full collection, including disabled aliases, into a
portable JSON document. The document can be re-imported with
'aliasforge import file'.

By default the document is written to stdout.`,
	Example: `  # Print the document
  aliasforge export file

  # Write it to a file
  aliasforge export file -o aliases.json`,
	Args: cobra.NoArgs,
	RunE: runExportFile,
}

func runExportFile(_ *cobra.Command, _ []string) error {
	return runExportFileWithWriter(os.Stdout, os.Stderr)
}

func runExportFileWithWriter(w, status io.Writer) error {
	records, err := openStore().Load()
	if err != nil {
		return errors.Wrap(err, "loading aliases")
	}

	doc, err := exporter.New().ToJSON(records)
	if err != nil {
		return err
	}

	if exportOutput == "" {
		fmt.Fprint(w, doc)
		return nil
	}

	out := paths.ExpandHome(exportOutput)
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return errors.Wrapf(err, "creating directory for %s", out)
	}
	if err := fileutil.AtomicWriteFile(out, []byte(doc), 0o644); err != nil {
		return errors.NewSystemError(err, "Check permissions on the output path")
	}

	fmt.Fprintf(status, "%s✓ Exported %d alias(es) to %s%s\n",
		colorGreen, len(records), out, colorReset)
	return nil
}
