package importer

import (
	"encoding/json"

	"github.com/cockroachdb/errors"

	"github.com/aliasforge/aliasforge/internal/alias"
)

// InvalidRecord describes one rejected entry from a file-mode import.
type InvalidRecord struct {
	// Index is the entry's position in the document's aliases array.
	Index int `json:"index"`

	// Name is the entry's name when one was present.
	Name string `json:"name,omitempty"`

	// Reason is a human-readable description of the structural problem.
	Reason string `json:"reason"`
}

// FileResult partitions a file-mode import. Returning the three lists
// rather than failing wholesale is what lets the caller offer a
// "continue with valid records" choice.
type FileResult struct {
	// Valid holds structurally sound records not colliding with the
	// existing collection.
	Valid []alias.Record

	// Invalid holds per-entry structural failures. Import continues past
	// each one.
	Invalid []InvalidRecord

	// Duplicates holds records whose name already exists in the current
	// collection. They are excluded, not merged.
	Duplicates []alias.Record
}

// document is the exported JSON document shape.
type document struct {
	Version    string            `json:"version"`
	ExportDate string            `json:"exportDate"`
	Aliases    []json.RawMessage `json:"aliases"`
}

// FromJSON parses an exported document and partitions its entries into
// valid, invalid, and duplicate records. existingNames is the set of
// alias names already present in the collection.
//
// Only a document-level syntax error is returned as an error; per-entry
// structural failures are accumulated in the result.
func FromJSON(jsonText string, existingNames map[string]bool) (FileResult, error) {
	var result FileResult

	var doc document
	if err := json.Unmarshal([]byte(jsonText), &doc); err != nil {
		return result, errors.Wrap(err, "parsing export document")
	}

	// Track names seen within the document itself so a file holding the
	// same name twice only imports one copy.
	seen := make(map[string]bool, len(doc.Aliases))

	for idx, raw := range doc.Aliases {
		record, reason := parseEntry(raw)
		if reason != "" {
			result.Invalid = append(result.Invalid, InvalidRecord{
				Index:  idx,
				Name:   record.Name,
				Reason: reason,
			})
			continue
		}

		if existingNames[record.Name] || seen[record.Name] {
			result.Duplicates = append(result.Duplicates, record)
			continue
		}
		seen[record.Name] = true

		result.Valid = append(result.Valid, record)
	}

	return result, nil
}

// parseEntry validates one aliases[] entry structurally. It returns the
// best-effort record plus a non-empty reason when the entry is rejected.
func parseEntry(raw json.RawMessage) (alias.Record, string) {
	var entry map[string]any
	if err := json.Unmarshal(raw, &entry); err != nil {
		return alias.Record{}, "not an object"
	}

	record := alias.Record{
		Enabled: true,
		Source:  alias.SourceImported,
	}

	id, ok := entry["id"].(string)
	if !ok || id == "" {
		return record, "missing id field"
	}
	record.ID = id

	name, ok := entry["name"].(string)
	if !ok || name == "" {
		return record, "missing name field"
	}
	record.Name = name
	if !alias.ValidName(name) {
		return record, "invalid name"
	}

	command, ok := entry["command"].(string)
	if !ok || command == "" {
		return record, "missing command field"
	}
	record.Command = command

	if v, present := entry["description"]; present {
		s, ok := v.(string)
		if !ok {
			return record, "description must be a string"
		}
		record.Description = s
	}

	if v, present := entry["tags"]; present {
		arr, ok := v.([]any)
		if !ok {
			return record, "tags must be an array"
		}
		for _, t := range arr {
			s, ok := t.(string)
			if !ok {
				return record, "tags must be an array of strings"
			}
			record.Tags = append(record.Tags, s)
		}
	}

	if v, present := entry["enabled"]; present {
		b, ok := v.(bool)
		if !ok {
			return record, "enabled must be a boolean"
		}
		record.Enabled = b
	}

	if v, present := entry["profile"]; present {
		if s, ok := v.(string); ok {
			record.Profile = s
		}
	}

	return record, ""
}
