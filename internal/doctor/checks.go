package doctor

import (
	"fmt"
	"os"
	"strings"

	"github.com/aliasforge/aliasforge/internal/backup"
	"github.com/aliasforge/aliasforge/internal/block"
	"github.com/aliasforge/aliasforge/internal/shell"
	"github.com/aliasforge/aliasforge/internal/store"
)

// StoreCheck verifies the alias collection file is readable and parsable.
type StoreCheck struct {
	Store *store.Store
}

func (c *StoreCheck) Name() string     { return "store-readable" }
func (c *StoreCheck) Category() string { return "store" }

func (c *StoreCheck) Run() *CheckResult {
	result := &CheckResult{Name: c.Name(), Category: c.Category()}

	records, err := c.Store.Load()
	if err != nil {
		result.Status = SeverityError
		result.Message = fmt.Sprintf("cannot load alias collection: %v", err)
		result.FixHint = "Check the file at " + c.Store.Path()
		return result
	}

	result.Status = SeverityPass
	result.Message = fmt.Sprintf("%d aliases in %s", len(records), c.Store.Path())
	return result
}

// ShellCheck reports the detected default shell.
type ShellCheck struct{}

func (c *ShellCheck) Name() string     { return "shell-detected" }
func (c *ShellCheck) Category() string { return "shell" }

func (c *ShellCheck) Run() *CheckResult {
	result := &CheckResult{Name: c.Name(), Category: c.Category()}

	detection := shell.Detect()
	result.Status = SeverityPass
	result.Message = fmt.Sprintf("%s (%s)", detection.DefaultShellID, detection.Platform)
	if detection.BinaryPath == "" && detection.Platform != "windows" {
		result.Status = SeverityWarning
		result.Message = "SHELL environment variable not set, assuming bash"
	}
	return result
}

// BlockCheck verifies the managed block in a shell config file is intact:
// both markers present and correctly ordered, or neither present.
type BlockCheck struct {
	Shell shell.Shell
}

func (c *BlockCheck) Name() string     { return "managed-block-" + c.Shell.Name() }
func (c *BlockCheck) Category() string { return "block" }

func (c *BlockCheck) Run() *CheckResult {
	result := &CheckResult{Name: c.Name(), Category: c.Category()}

	path := shell.ConfigPath(c.Shell)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			result.Status = SeverityInfo
			result.Message = fmt.Sprintf("%s does not exist yet", path)
			return result
		}
		result.Status = SeverityError
		result.Message = fmt.Sprintf("cannot read %s: %v", path, err)
		return result
	}

	text := string(data)
	markers := block.MarkersFor(c.Shell)
	hasStart := strings.Contains(text, markers.Start)
	hasEnd := strings.Contains(text, markers.End)

	switch {
	case !hasStart && !hasEnd:
		result.Status = SeverityInfo
		result.Message = fmt.Sprintf("no managed block in %s", path)
	case hasStart != hasEnd:
		result.Status = SeverityError
		result.Message = fmt.Sprintf("unbalanced managed block markers in %s", path)
		result.FixHint = "Remove the stray marker line manually, or restore a backup"
	default:
		if _, found := block.Locate(text, markers); !found {
			result.Status = SeverityError
			result.Message = fmt.Sprintf("managed block markers out of order in %s", path)
			result.FixHint = "Remove both marker lines manually, or restore a backup"
			return result
		}
		result.Status = SeverityPass
		result.Message = fmt.Sprintf("managed block intact in %s", path)
		if strings.Count(text, markers.Start) > 1 {
			result.Status = SeverityWarning
			result.Message = fmt.Sprintf("multiple managed blocks in %s; only the first is maintained", path)
		}
	}

	return result
}

// BackupCheck reports snapshot availability for a shell config file.
type BackupCheck struct {
	Shell   shell.Shell
	Manager *backup.Manager
}

func (c *BackupCheck) Name() string     { return "backups-" + c.Shell.Name() }
func (c *BackupCheck) Category() string { return "backup" }

func (c *BackupCheck) Run() *CheckResult {
	result := &CheckResult{Name: c.Name(), Category: c.Category()}

	path := shell.ConfigPath(c.Shell)
	snapshots, err := c.Manager.List(path)
	if err != nil {
		result.Status = SeverityInfo
		result.Message = fmt.Sprintf("no backups for %s", path)
		return result
	}

	result.Status = SeverityPass
	result.Message = fmt.Sprintf("%d backup(s) for %s, newest %s",
		len(snapshots), path, snapshots[0].ID)
	return result
}
