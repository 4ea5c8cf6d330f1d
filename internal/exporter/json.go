package exporter

import (
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/aliasforge/aliasforge/internal/alias"
)

// DocumentVersion is the exported document format version.
const DocumentVersion = "1.0"

// Document is the JSON export document shape. It is the same shape the
// file-mode importer consumes.
type Document struct {
	Version    string         `json:"version"`
	ExportDate string         `json:"exportDate"`
	Aliases    []alias.Record `json:"aliases"`
}

// ToJSON serializes records into an export document. Pure serialization,
// no file I/O: where the text ends up is the caller's concern.
//
// Unlike shell export, disabled records are included; the document is a
// full portable copy of the collection, not rendered shell syntax.
func (e *Exporter) ToJSON(records []alias.Record) (string, error) {
	doc := Document{
		Version:    DocumentVersion,
		ExportDate: e.now().UTC().Format(time.RFC3339),
		Aliases:    records,
	}
	if doc.Aliases == nil {
		doc.Aliases = []alias.Record{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "marshaling export document")
	}

	return string(data) + "\n", nil
}
