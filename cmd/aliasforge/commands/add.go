package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aliasforge/aliasforge/internal/alias"
	"github.com/aliasforge/aliasforge/internal/errors"
	"github.com/aliasforge/aliasforge/internal/store"
)

var (
	addDescription string
	addTags        []string
	addDisabled    bool
)

func init() {
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "",
		"description, rendered as a comment above the alias on export")
	addCmd.Flags().StringSliceVarP(&addTags, "tags", "t", nil, "tags for the alias")
	addCmd.Flags().BoolVar(&addDisabled, "disabled", false,
		"store the alias without including it in exports")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <name> <command>",
	Short: "Add an alias to the collection",
	Long: `Add a named alias to the collection.

The name must be shell-identifier-safe: it starts with a letter or
underscore and contains only letters, digits, underscores, and hyphens.
The command text is stored verbatim; it may contain quotes, pipes, and
variables.`,
	Example: `  # Simple alias
  aliasforge add gs "git status"

  # With a description and tags
  aliasforge add gcl "git clone --depth 1" -d "Clone a repo shallow" -t git

  See Also: aliasforge export shell`,
	Args: cobra.ExactArgs(2),
	RunE: runAdd,
}

func runAdd(_ *cobra.Command, args []string) error {
	return runAddWithWriter(os.Stdout, args[0], args[1])
}

func runAddWithWriter(w io.Writer, name, command string) error {
	if !alias.ValidName(name) {
		err := errors.Wrapf(errors.ErrInvalidName, "%q", name)
		return errors.NewUserError(err,
			"Names must start with a letter or underscore and contain only letters, digits, _ and -")
	}
	if command == "" {
		return errors.NewUserError(errors.New("command must not be empty"), "")
	}

	record := alias.New(name, command)
	record.Description = addDescription
	record.Tags = addTags
	record.Enabled = !addDisabled

	if err := openStore().Add(record); err != nil {
		if errors.Is(err, store.ErrDuplicateName) {
			return errors.NewUserError(err,
				fmt.Sprintf("Remove it first with: aliasforge remove %s", name))
		}
		return errors.Wrap(err, "adding alias")
	}

	fmt.Fprintf(w, "%s✓ Added %s%s\n", colorGreen, name, colorReset)
	return nil
}
