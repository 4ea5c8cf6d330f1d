package backup

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// Default configuration values.
const (
	// DefaultRetentionCount is the default number of snapshots to retain
	// per target path.
	DefaultRetentionCount = 5
)

// backupInfix separates the original path from the snapshot ID.
const backupInfix = ".backup-"

// idLayout is the canonical ISO-8601 UTC timestamp with millisecond
// precision. Snapshot IDs are this layout with colons and the dot
// replaced by dashes so the ID is filename-safe on every platform.
// Lexical order of IDs equals chronological order.
const idLayout = "2006-01-02T15:04:05.000Z"

// idLen is the length of a well-formed snapshot ID.
const idLen = len(idLayout)

// Sentinel errors for backup operations.
var (
	// ErrNoBackupsFound indicates no snapshots exist for the target path.
	ErrNoBackupsFound = errors.New("no backups found")

	// ErrBackupFailed indicates a snapshot could not be created. A pending
	// write must be aborted when this is returned.
	ErrBackupFailed = errors.New("backup failed")
)

// Snapshot describes one timestamped verbatim copy of a target file,
// taken immediately before a mutating write. Snapshots are never mutated
// after creation; they are deleted only by retention pruning.
type Snapshot struct {
	// OriginalPath is the target file the snapshot was taken from.
	OriginalPath string `json:"original_path"`

	// BackupPath is the sibling file holding the preserved bytes.
	BackupPath string `json:"backup_path"`

	// ID is the snapshot identifier (timestamp with dashes).
	ID string `json:"id"`

	// CreatedAt is when the snapshot was taken.
	CreatedAt time.Time `json:"created_at"`
}

// idReplacer maps the canonical timestamp to its filename-safe form.
var idReplacer = strings.NewReplacer(":", "-", ".", "-")

// FormatID renders a snapshot ID for the given time.
func FormatID(t time.Time) string {
	return idReplacer.Replace(t.UTC().Format(idLayout))
}

// ParseID recovers the creation time from a snapshot ID.
func ParseID(id string) (time.Time, error) {
	if len(id) != idLen {
		return time.Time{}, errors.Newf("invalid backup ID %q", id)
	}
	// Undo the separator substitution: positions 13 and 16 were colons,
	// position 19 was the millisecond dot.
	canonical := id[:13] + ":" + id[14:16] + ":" + id[17:19] + "." + id[20:]
	t, err := time.Parse(idLayout, canonical)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid backup ID %q", id)
	}
	return t, nil
}

// BackupPathFor returns the sibling path a snapshot of path taken at t
// would use.
func BackupPathFor(path string, t time.Time) string {
	return path + backupInfix + FormatID(t)
}

// IsBackupPath reports whether p names a snapshot of some target file.
func IsBackupPath(p string) bool {
	idx := strings.LastIndex(p, backupInfix)
	if idx < 0 {
		return false
	}
	_, err := ParseID(p[idx+len(backupInfix):])
	return err == nil
}
