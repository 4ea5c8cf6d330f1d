package importer

import (
	"context"
	"os/exec"

	"github.com/cockroachdb/errors"
)

// Runner invokes a shell process and returns its stdout. Injected so
// tests can supply canned output without spawning real shells.
type Runner interface {
	Run(ctx context.Context, argv []string) ([]byte, error)
}

// execRunner is the default Runner backed by os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, argv []string) ([]byte, error) {
	if len(argv) == 0 {
		return nil, errors.New("empty argv")
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	out, err := cmd.Output()
	if err != nil {
		return nil, errors.Wrapf(err, "running %s", argv[0])
	}
	return out, nil
}
