package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aliasforge/aliasforge/internal/alias"
	"github.com/aliasforge/aliasforge/internal/errors"
)

var (
	listJSON   bool
	listFilter string
)

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&listFilter, "filter", "", "Show only aliases matching this text")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List aliases in the collection",
	Long: `List all aliases in the collection, including disabled ones.

Disabled aliases are stored but excluded from shell exports.`,
	Example: `  # List all aliases
  aliasforge list

  # Only aliases mentioning git
  aliasforge list --filter git

  # Output as JSON
  aliasforge list --json`,
	RunE: runList,
}

func runList(_ *cobra.Command, _ []string) error {
	return runListWithWriter(os.Stdout)
}

func runListWithWriter(w io.Writer) error {
	records, err := openStore().Filter(listFilter)
	if err != nil {
		return errors.Wrap(err, "loading aliases")
	}

	if listJSON {
		if records == nil {
			records = []alias.Record{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(records), "encoding output")
	}

	if len(records) == 0 {
		fmt.Fprintln(w, "No aliases yet")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Add one with: aliasforge add <name> <command>")
		fmt.Fprintln(w, "Or pull in your shell's existing aliases with: aliasforge import shell")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%sNAME%s\t%sCOMMAND%s\t%sSTATE%s\t%sTAGS%s\n",
		colorBold, colorReset,
		colorBold, colorReset,
		colorBold, colorReset,
		colorBold, colorReset)

	for _, r := range records {
		state := colorGreen + "enabled" + colorReset
		if !r.Enabled {
			state = colorGray + "disabled" + colorReset
		}
		fmt.Fprintf(tw, "%s%s%s\t%s\t%s\t%s\n",
			colorCyan, r.Name, colorReset,
			truncate(r.Command, 60),
			state,
			strings.Join(r.Tags, ","))
	}
	tw.Flush()

	return nil
}
