package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aliasforge/aliasforge/internal/cli/prompt"
	"github.com/aliasforge/aliasforge/internal/errors"
	"github.com/aliasforge/aliasforge/internal/store"
)

func init() {
	rootCmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:   "remove [name]",
	Short: "Remove an alias from the collection",
	Long: `Remove an alias by name.

When no name is given, an interactive fuzzy finder opens over the
collection.

Removing an alias does not touch shell config files until the next
export.`,
	Example: `  # Remove by name
  aliasforge remove gs

  # Pick interactively
  aliasforge remove`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRemove,
}

func runRemove(_ *cobra.Command, args []string) error {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	return runRemoveWithWriter(os.Stdout, name)
}

func runRemoveWithWriter(w io.Writer, name string) error {
	st := openStore()

	if name == "" {
		records, err := st.Load()
		if err != nil {
			return errors.Wrap(err, "loading aliases")
		}
		picked, err := prompt.PickAlias(records)
		if err != nil {
			if errors.Is(err, prompt.ErrCancelled) {
				return nil
			}
			if errors.Is(err, prompt.ErrNoAliases) {
				fmt.Fprintln(w, "No aliases to remove")
				return nil
			}
			return err
		}
		name = picked.Name
	}

	if err := st.Remove(name); err != nil {
		if errors.Is(err, store.ErrAliasNotFound) {
			return errors.NewUserError(err, "Run 'aliasforge list' to see alias names")
		}
		return errors.Wrap(err, "removing alias")
	}

	fmt.Fprintf(w, "%s✓ Removed %s%s\n", colorGreen, name, colorReset)
	return nil
}
