package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aliasforge/aliasforge/internal/errors"
	"github.com/aliasforge/aliasforge/internal/importer"
	"github.com/aliasforge/aliasforge/pkg/fileutil"
)

var importDryRun bool

func init() {
	importCmd.PersistentFlags().BoolVar(&importDryRun, "dry-run", false,
		"show what would be imported without changing the collection")
	importCmd.AddCommand(importShellCmd)
	importCmd.AddCommand(importFileCmd)
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import aliases into the collection",
	Long: `Import aliases from a live shell or from an exported JSON document.

Imported records are tagged "imported" and never overwrite existing
aliases: entries whose name already exists in the collection are
reported as duplicates and skipped.`,
	Example: `  # Ask your shell to list its aliases and import them
  aliasforge import shell

  # Import a document exported earlier
  aliasforge import file aliases.json`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

var importShellCmd = &cobra.Command{
	Use:   "shell [shell]",
	Short: "Import aliases from a live shell",
	Long: `Invoke the shell's native alias listing and import the result.

The shell runs interactively so user-defined aliases from its config
files are loaded. Terminal control sequences in the output are stripped
before parsing. Lines with invalid names are skipped, not fatal.`,
	Example: `  # Import from the detected shell
  aliasforge import shell

  # Import from zsh explicitly
  aliasforge import shell zsh`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImportShell,
}

func runImportShell(cmd *cobra.Command, args []string) error {
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}
	return runImportShellWithWriter(cmd, os.Stdout, arg)
}

func runImportShellWithWriter(cmd *cobra.Command, w io.Writer, arg string) error {
	s, err := targetShell(arg)
	if err != nil {
		return errors.NewUserError(err, "Run 'aliasforge detect' to see the detected shell")
	}

	imp := importer.New(importer.WithLogger(slog.Default()))
	result := imp.FromShell(cmd.Context(), s)

	if result.Err != "" {
		fmt.Fprintf(w, "%sCould not list aliases from %s: %s%s\n",
			colorYellow, s.DisplayName(), result.Err, colorReset)
		return nil
	}

	if result.Skipped > 0 {
		fmt.Fprintf(w, "%sSkipped %d unparseable line(s)%s\n",
			colorYellow, result.Skipped, colorReset)
	}

	if len(result.Aliases) == 0 {
		fmt.Fprintf(w, "No aliases found in %s\n", s.DisplayName())
		return nil
	}

	if importDryRun {
		for _, r := range result.Aliases {
			fmt.Fprintf(w, "  %s%s%s = %s\n", colorCyan, r.Name, colorReset, truncate(r.Command, 70))
		}
		fmt.Fprintf(w, "\nWould import %d alias(es)\n", len(result.Aliases))
		return nil
	}

	added, err := openStore().AddAll(result.Aliases)
	if err != nil {
		return errors.Wrap(err, "saving imported aliases")
	}

	skippedDupes := len(result.Aliases) - added
	fmt.Fprintf(w, "%s✓ Imported %d alias(es) from %s%s\n",
		colorGreen, added, s.DisplayName(), colorReset)
	if skippedDupes > 0 {
		fmt.Fprintf(w, "%s%d duplicate(s) skipped%s\n", colorGray, skippedDupes, colorReset)
	}

	return nil
}

var importFileCmd = &cobra.Command{
	Use:   "file <path>",
	Short: "Import aliases from an exported JSON document",
	Long: `Import a JSON document previously produced by 'aliasforge export file'.

Each entry is validated structurally. Malformed entries and duplicates
of existing aliases are reported per entry; the remaining valid records
are imported. A malformed entry never aborts the import.`,
	Example: `  aliasforge import file aliases.json

  # Inspect first
  aliasforge import file aliases.json --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runImportFile,
}

func runImportFile(_ *cobra.Command, args []string) error {
	return runImportFileWithWriter(os.Stdout, args[0])
}

func runImportFileWithWriter(w io.Writer, path string) error {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}

	st := openStore()
	existing, err := st.Names()
	if err != nil {
		return errors.Wrap(err, "loading collection")
	}

	result, err := importer.FromJSON(string(data), existing)
	if err != nil {
		return errors.NewUserError(err, "The file does not look like an aliasforge export")
	}

	for _, inv := range result.Invalid {
		label := inv.Name
		if label == "" {
			label = fmt.Sprintf("entry %d", inv.Index)
		}
		fmt.Fprintf(w, "%s✗ %s: %s%s\n", colorYellow, label, inv.Reason, colorReset)
	}
	for _, dup := range result.Duplicates {
		fmt.Fprintf(w, "%s- %s: already exists, skipped%s\n", colorGray, dup.Name, colorReset)
	}

	if len(result.Valid) == 0 {
		fmt.Fprintln(w, "Nothing to import")
		return nil
	}

	if importDryRun {
		for _, r := range result.Valid {
			fmt.Fprintf(w, "  %s%s%s = %s\n", colorCyan, r.Name, colorReset, truncate(r.Command, 70))
		}
		fmt.Fprintf(w, "\nWould import %d alias(es)\n", len(result.Valid))
		return nil
	}

	added, err := st.AddAll(result.Valid)
	if err != nil {
		return errors.Wrap(err, "saving imported aliases")
	}

	fmt.Fprintf(w, "%s✓ Imported %d alias(es)%s\n", colorGreen, added, colorReset)
	return nil
}
