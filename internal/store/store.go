// Package store persists the alias collection between sessions.
//
// The collection lives in a TOML file under the aliasforge config
// directory. The store is an explicit edge: the engine's render and
// parse functions are pure over their inputs, and all persistence
// happens here.
package store

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"

	"github.com/aliasforge/aliasforge/internal/alias"
	"github.com/aliasforge/aliasforge/internal/paths"
	"github.com/aliasforge/aliasforge/pkg/fileutil"
)

// Sentinel errors for store operations.
var (
	// ErrDuplicateName indicates an alias with the same name already exists.
	ErrDuplicateName = errors.New("alias already exists")

	// ErrAliasNotFound indicates no alias with the given name exists.
	ErrAliasNotFound = errors.New("alias not found")
)

// Store reads and writes the alias collection file. Name uniqueness is
// enforced here, at the collection edge, not inside the export/import
// engine.
type Store struct {
	path string
}

// collection is the TOML document shape.
type collection struct {
	Aliases []alias.Record `toml:"aliases"`
}

// New creates a Store over the given file path. An empty path selects
// the default location under the aliasforge config directory.
func New(path string) *Store {
	if path == "" {
		path = paths.DefaultStorePath()
	}
	return &Store{path: paths.ExpandHome(path)}
}

// Path returns the collection file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the collection. A missing file is an empty collection.
func (s *Store) Load() ([]alias.Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "reading %s", s.path)
	}

	var col collection
	if err := toml.Unmarshal(data, &col); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", s.path)
	}

	return col.Aliases, nil
}

// Save writes the collection atomically, creating the parent directory
// if needed.
func (s *Store) Save(records []alias.Record) error {
	if err := paths.EnsureDir(filepath.Dir(s.path), 0); err != nil {
		return errors.Wrap(err, "creating store directory")
	}

	data, err := toml.Marshal(collection{Aliases: records})
	if err != nil {
		return errors.Wrap(err, "marshaling collection")
	}

	return fileutil.AtomicWriteFile(s.path, data, 0o644)
}

// Add appends a record to the collection. Returns ErrDuplicateName when
// a record with the same name already exists.
func (s *Store) Add(record alias.Record) error {
	records, err := s.Load()
	if err != nil {
		return err
	}

	for _, r := range records {
		if r.Name == record.Name {
			return errors.Wrapf(ErrDuplicateName, "%q", record.Name)
		}
	}

	return s.Save(append(records, record))
}

// AddAll appends records, skipping any whose name already exists.
// Returns the number of records actually added.
func (s *Store) AddAll(newRecords []alias.Record) (int, error) {
	records, err := s.Load()
	if err != nil {
		return 0, err
	}

	existing := make(map[string]bool, len(records))
	for _, r := range records {
		existing[r.Name] = true
	}

	added := 0
	for _, r := range newRecords {
		if existing[r.Name] {
			continue
		}
		existing[r.Name] = true
		records = append(records, r)
		added++
	}

	if added == 0 {
		return 0, nil
	}
	return added, s.Save(records)
}

// Get returns the record with the given name.
func (s *Store) Get(name string) (*alias.Record, error) {
	records, err := s.Load()
	if err != nil {
		return nil, err
	}

	for i := range records {
		if records[i].Name == name {
			return &records[i], nil
		}
	}
	return nil, errors.Wrapf(ErrAliasNotFound, "%q", name)
}

// Remove deletes the record with the given name.
func (s *Store) Remove(name string) error {
	records, err := s.Load()
	if err != nil {
		return err
	}

	kept := records[:0]
	found := false
	for _, r := range records {
		if r.Name == name {
			found = true
			continue
		}
		kept = append(kept, r)
	}

	if !found {
		return errors.Wrapf(ErrAliasNotFound, "%q", name)
	}
	return s.Save(kept)
}

// SetEnabled flips the enabled flag on the record with the given name.
func (s *Store) SetEnabled(name string, enabled bool) error {
	records, err := s.Load()
	if err != nil {
		return err
	}

	for i := range records {
		if records[i].Name == name {
			records[i].Enabled = enabled
			return s.Save(records)
		}
	}
	return errors.Wrapf(ErrAliasNotFound, "%q", name)
}

// Names returns the set of alias names in the collection.
func (s *Store) Names() (map[string]bool, error) {
	records, err := s.Load()
	if err != nil {
		return nil, err
	}

	names := make(map[string]bool, len(records))
	for _, r := range records {
		names[r.Name] = true
	}
	return names, nil
}

// Filter returns the records whose name or command contains the query,
// case-insensitively. An empty query returns everything.
func (s *Store) Filter(query string) ([]alias.Record, error) {
	records, err := s.Load()
	if err != nil {
		return nil, err
	}
	if query == "" {
		return records, nil
	}

	query = strings.ToLower(query)
	matched := make([]alias.Record, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Name), query) ||
			strings.Contains(strings.ToLower(r.Command), query) {
			matched = append(matched, r)
		}
	}
	return matched, nil
}
