package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aliasforge/aliasforge/internal/errors"
	"github.com/aliasforge/aliasforge/internal/store"
)

func init() {
	rootCmd.AddCommand(enableCmd)
	rootCmd.AddCommand(disableCmd)
}

var enableCmd = &cobra.Command{
	Use:   "enable <name>",
	Short: "Include an alias in exports",
	Long:  `Mark an alias as enabled so it is included in exported output.`,
	Example: `  aliasforge enable gs

  See Also: aliasforge disable, aliasforge export shell`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runSetEnabled(os.Stdout, args[0], true)
	},
}

var disableCmd = &cobra.Command{
	Use:   "disable <name>",
	Short: "Exclude an alias from exports",
	Long: `Mark an alias as disabled. Disabled aliases stay in the collection
but produce no statement line in exported output.`,
	Example: `  aliasforge disable gs

  See Also: aliasforge enable, aliasforge export shell`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runSetEnabled(os.Stdout, args[0], false)
	},
}

func runSetEnabled(w io.Writer, name string, enabled bool) error {
	if err := openStore().SetEnabled(name, enabled); err != nil {
		if errors.Is(err, store.ErrAliasNotFound) {
			return errors.NewUserError(err, "Run 'aliasforge list' to see alias names")
		}
		return errors.Wrap(err, "updating alias")
	}

	state := "enabled"
	if !enabled {
		state = "disabled"
	}
	fmt.Fprintf(w, "%s✓ %s %s%s\n", colorGreen, name, state, colorReset)
	return nil
}
