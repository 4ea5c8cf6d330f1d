// Package exporter renders alias records into shell-correct syntax and
// splices the managed block into user-owned config files.
package exporter

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/aliasforge/aliasforge/internal/alias"
	"github.com/aliasforge/aliasforge/internal/backup"
	"github.com/aliasforge/aliasforge/internal/block"
	"github.com/aliasforge/aliasforge/internal/logging"
	"github.com/aliasforge/aliasforge/internal/shell"
	"github.com/aliasforge/aliasforge/pkg/fileutil"
)

// Result describes a successful export to a shell config file.
type Result struct {
	// Path is the config file that was written.
	Path string

	// BackupPath is the snapshot taken before the write. Empty when the
	// target did not exist yet (nothing to back up).
	BackupPath string
}

// Exporter writes managed alias blocks into shell config files. It holds
// no internal locks: the caller is responsible for serializing export
// operations targeting the same path.
type Exporter struct {
	backups *backup.Manager
	now     func() time.Time
	log     *slog.Logger
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithBackupManager overrides the backup manager.
func WithBackupManager(m *backup.Manager) Option {
	return func(e *Exporter) {
		e.backups = m
	}
}

// WithClock overrides the time source for the block's timestamp line.
// Used in tests.
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) {
		e.now = now
	}
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(e *Exporter) {
		e.log = log
	}
}

// New creates an Exporter with the given options.
func New(opts ...Option) *Exporter {
	e := &Exporter{
		backups: backup.NewManager(),
		now:     time.Now,
		log:     logging.NewDiscard(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ToShell exports records into the managed block of the config file at
// configPath. An empty configPath selects the shell's default location.
//
// The write is all-or-nothing: the new content lands via an atomic
// temp-file rename, and the original bytes are snapshotted first. A
// backup failure aborts the export. Failures are surfaced to the caller
// and never retried.
//
// Exporting the same enabled-alias set twice produces byte-identical
// content apart from the timestamp line.
func (e *Exporter) ToShell(records []alias.Record, s shell.Shell, configPath string) (*Result, error) {
	path := configPath
	if path == "" {
		path = shell.ConfigPath(s)
	}

	// A missing file is an empty starting text, not an error.
	var original string
	data, err := fileutil.ReadFileWithLimit(path)
	switch {
	case err == nil:
		original = string(data)
	case errors.Is(err, os.ErrNotExist):
		original = ""
	default:
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	markers := block.MarkersFor(s)
	rendered := block.Render(s, records, e.now())
	newText := block.Splice(original, rendered, markers)

	snapshot, err := e.backups.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "backing up before write")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating directory for %s", path)
	}

	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	if err := fileutil.AtomicWriteFile(path, []byte(newText), mode); err != nil {
		return nil, errors.Wrapf(err, "writing %s", path)
	}

	result := &Result{Path: path}
	if snapshot != nil {
		result.BackupPath = snapshot.BackupPath
	}

	e.log.Info("exported aliases", "shell", s.Name(), "path", path, "backup", result.BackupPath)
	return result, nil
}
