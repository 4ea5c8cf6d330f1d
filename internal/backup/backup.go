package backup

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/aliasforge/aliasforge/pkg/fileutil"
)

// Manager handles snapshot creation, restoration, and retention for shell
// config files. Snapshots are timestamped sibling files next to the
// original, so rollback never depends on a separate state directory.
type Manager struct {
	retentionCount int
	now            func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithRetentionCount sets the number of snapshots to retain per target path.
func WithRetentionCount(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.retentionCount = n
		}
	}
}

// WithClock overrides the time source. Used in tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// NewManager creates a new backup Manager with the given options.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		retentionCount: DefaultRetentionCount,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create snapshots the current bytes of path to a timestamped sibling
// file before a mutating write. A missing target is not an error: there
// is nothing to preserve, and (nil, nil) is returned so the caller can
// proceed with the write.
//
// Any other failure aborts the pending write: the engine must never
// overwrite content it could not first preserve.
func (m *Manager) Create(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(ErrBackupFailed, "reading %s: %v", path, err)
	}

	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	createdAt := m.now().UTC()
	id := FormatID(createdAt)
	backupPath := path + backupInfix + id

	if err := fileutil.AtomicWriteFile(backupPath, data, mode); err != nil {
		return nil, errors.Wrapf(ErrBackupFailed, "writing %s: %v", backupPath, err)
	}

	// Retention is best-effort: a failed prune never fails the snapshot
	// that was just taken.
	_ = m.Prune(path, m.retentionCount)

	return &Snapshot{
		OriginalPath: path,
		BackupPath:   backupPath,
		ID:           id,
		CreatedAt:    createdAt,
	}, nil
}

// List returns all snapshots for a target path, newest first.
// Returns ErrNoBackupsFound when none exist.
func (m *Manager) List(path string) ([]Snapshot, error) {
	// Literal prefix match over the directory listing. A glob would
	// misread target names containing [, ? or *.
	dir := filepath.Dir(path)
	prefix := filepath.Base(path) + backupInfix

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrNoBackupsFound, "for %s", path)
		}
		return nil, errors.Wrapf(err, "reading %s", dir)
	}

	snapshots := make([]Snapshot, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		id := name[len(prefix):]
		createdAt, err := ParseID(id)
		if err != nil {
			// Not one of ours; a user file that happens to share the prefix.
			continue
		}
		snapshots = append(snapshots, Snapshot{
			OriginalPath: path,
			BackupPath:   filepath.Join(dir, name),
			ID:           id,
			CreatedAt:    createdAt,
		})
	}

	if len(snapshots) == 0 {
		return nil, errors.Wrapf(ErrNoBackupsFound, "for %s", path)
	}

	slices.SortFunc(snapshots, func(a, b Snapshot) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return snapshots, nil
}

// Get returns the snapshot with the given ID for a target path.
func (m *Manager) Get(path, backupID string) (*Snapshot, error) {
	snapshots, err := m.List(path)
	if err != nil {
		return nil, err
	}
	for i := range snapshots {
		if snapshots[i].ID == backupID {
			return &snapshots[i], nil
		}
	}
	return nil, errors.Wrapf(ErrNoBackupsFound, "backup %s for %s", backupID, path)
}

// Restore copies the chosen snapshot's bytes back over the target path
// verbatim. It is a pure byte-level restore: no re-parsing, no re-export.
func (m *Manager) Restore(path, backupID string) error {
	snapshot, err := m.Get(path, backupID)
	if err != nil {
		return err
	}
	return m.restore(snapshot)
}

// RestoreLatest restores the most recent snapshot for the target path.
func (m *Manager) RestoreLatest(path string) (*Snapshot, error) {
	snapshots, err := m.List(path)
	if err != nil {
		return nil, err
	}
	latest := &snapshots[0]
	if err := m.restore(latest); err != nil {
		return nil, err
	}
	return latest, nil
}

func (m *Manager) restore(s *Snapshot) error {
	data, err := os.ReadFile(s.BackupPath)
	if err != nil {
		return errors.Wrapf(err, "reading backup %s", s.BackupPath)
	}

	mode := os.FileMode(0o644)
	if info, err := os.Stat(s.BackupPath); err == nil {
		mode = info.Mode().Perm()
	}

	if err := fileutil.AtomicWriteFile(s.OriginalPath, data, mode); err != nil {
		return errors.Wrapf(err, "restoring %s", s.OriginalPath)
	}
	return nil
}

// Prune removes snapshots beyond the retention count for a target path,
// oldest first. Keeps the most recent 'keep' snapshots.
func (m *Manager) Prune(path string, keep int) error {
	if keep < 0 {
		return errors.New("keep must be non-negative")
	}

	snapshots, err := m.List(path)
	if err != nil {
		if errors.Is(err, ErrNoBackupsFound) {
			return nil // Nothing to prune
		}
		return err
	}

	// Already sorted newest first, delete everything beyond 'keep'
	for i := keep; i < len(snapshots); i++ {
		if err := os.Remove(snapshots[i].BackupPath); err != nil {
			return errors.Wrapf(err, "removing backup %s", snapshots[i].ID)
		}
	}

	return nil
}
