package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aliasforge/aliasforge/internal/errors"
	"github.com/aliasforge/aliasforge/internal/shell"
)

var detectJSON bool

func init() {
	detectCmd.Flags().BoolVar(&detectJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(detectCmd)
}

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect the current shell",
	Long: `Detect the user's default shell from the environment and print the
platform, shell identifier, binary path, and config file path that
exports will target.`,
	Example: `  # Show the detected shell
  aliasforge detect

  # Machine-readable output
  aliasforge detect --json`,
	RunE: runDetect,
}

// detectOutput is the JSON shape for detect --json.
type detectOutput struct {
	Platform       string `json:"platform"`
	DefaultShellID string `json:"defaultShellId"`
	BinaryPath     string `json:"shellBinaryPath,omitempty"`
	ConfigPath     string `json:"configPath"`
}

func runDetect(_ *cobra.Command, _ []string) error {
	return runDetectWithWriter(os.Stdout)
}

func runDetectWithWriter(w io.Writer) error {
	d := shell.Detect()

	if detectJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(detectOutput{
			Platform:       d.Platform,
			DefaultShellID: d.DefaultShellID,
			BinaryPath:     d.BinaryPath,
			ConfigPath:     d.ConfigPath,
		}), "encoding output")
	}

	fmt.Fprintf(w, "%sPlatform:%s %s\n", colorBold, colorReset, d.Platform)
	fmt.Fprintf(w, "%sShell:%s    %s\n", colorBold, colorReset, d.DefaultShellID)
	if d.BinaryPath != "" {
		fmt.Fprintf(w, "%sBinary:%s   %s\n", colorBold, colorReset, d.BinaryPath)
	}
	fmt.Fprintf(w, "%sConfig:%s   %s\n", colorBold, colorReset, d.ConfigPath)

	return nil
}
