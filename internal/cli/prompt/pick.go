// Package prompt provides interactive CLI prompts for user input.
package prompt

import (
	"fmt"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/aliasforge/aliasforge/internal/alias"
	"github.com/aliasforge/aliasforge/internal/errors"
)

// Sentinel errors for alias selection.
var (
	ErrNoAliases = errors.New("no aliases to select from")
	ErrCancelled = errors.New("selection cancelled")
)

// PickAlias opens a fuzzy finder over the given records and returns the
// selected one. Returns ErrCancelled when the user aborts.
func PickAlias(records []alias.Record) (*alias.Record, error) {
	if len(records) == 0 {
		return nil, ErrNoAliases
	}

	idx, err := fuzzyfinder.Find(
		records,
		func(i int) string {
			return fmt.Sprintf("%s = %s", records[i].Name, records[i].Command)
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			r := records[i]
			state := "enabled"
			if !r.Enabled {
				state = "disabled"
			}
			return fmt.Sprintf("Name: %s\nCommand: %s\nState: %s\nTags: %s\n\n%s",
				r.Name,
				r.Command,
				state,
				strings.Join(r.Tags, ", "),
				r.Description,
			)
		}),
	)

	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, ErrCancelled
		}
		return nil, errors.Wrap(err, "interactive selection failed")
	}

	return &records[idx], nil
}
