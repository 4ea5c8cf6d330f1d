package importer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleDocument = `{
  "version": "1.0",
  "exportDate": "2026-01-26T10:00:00.000Z",
  "aliases": [
    {"id": "a1", "name": "gs", "command": "git status", "description": "status", "tags": ["git"], "enabled": true},
    {"id": "a2", "name": "ll", "command": "ls -la", "enabled": false},
    {"id": "a3", "name": "dup", "command": "echo dup"}
  ]
}`

func TestFromJSON(t *testing.T) {
	result, err := FromJSON(sampleDocument, map[string]bool{"dup": true})
	require.NoError(t, err)

	require.Len(t, result.Valid, 2)
	require.Empty(t, result.Invalid)
	require.Len(t, result.Duplicates, 1)

	gs := result.Valid[0]
	require.Equal(t, "gs", gs.Name)
	require.Equal(t, "git status", gs.Command)
	require.Equal(t, "status", gs.Description)
	require.Equal(t, []string{"git"}, gs.Tags)
	require.True(t, gs.Enabled)

	// enabled:false must be honored, absent enabled defaults to true
	require.False(t, result.Valid[1].Enabled)
	require.Equal(t, "dup", result.Duplicates[0].Name)
}

func TestFromJSON_InvalidEntries(t *testing.T) {
	doc := `{
  "version": "1.0",
  "aliases": [
    {"id": "a1", "name": "ok", "command": "true"},
    {"name": "noid", "command": "true"},
    {"id": "a3", "command": "true"},
    {"id": "a4", "name": "nocmd"},
    {"id": "a5", "name": "bad name", "command": "true"},
    {"id": "a6", "name": "badtags", "command": "true", "tags": "git"},
    {"id": "a7", "name": "badenabled", "command": "true", "enabled": "yes"},
    "not an object"
  ]
}`

	result, err := FromJSON(doc, nil)
	require.NoError(t, err)

	require.Len(t, result.Valid, 1)
	require.Equal(t, "ok", result.Valid[0].Name)

	require.Len(t, result.Invalid, 7)

	reasons := make(map[int]string)
	for _, inv := range result.Invalid {
		reasons[inv.Index] = inv.Reason
	}
	require.Equal(t, "missing id field", reasons[1])
	require.Equal(t, "missing name field", reasons[2])
	require.Equal(t, "missing command field", reasons[3])
	require.Equal(t, "invalid name", reasons[4])
	require.Equal(t, "tags must be an array", reasons[5])
	require.Equal(t, "enabled must be a boolean", reasons[6])
	require.Equal(t, "not an object", reasons[7])
}

func TestFromJSON_MalformedDocument(t *testing.T) {
	_, err := FromJSON("{not json", nil)
	require.Error(t, err)
}

func TestFromJSON_DuplicateWithinDocument(t *testing.T) {
	doc := `{
  "version": "1.0",
  "aliases": [
    {"id": "a1", "name": "gs", "command": "git status"},
    {"id": "a2", "name": "gs", "command": "git status -sb"}
  ]
}`

	result, err := FromJSON(doc, nil)
	require.NoError(t, err)

	require.Len(t, result.Valid, 1)
	require.Len(t, result.Duplicates, 1)
	require.Equal(t, "a1", result.Valid[0].ID)
}

func TestFromJSON_EmptyDocument(t *testing.T) {
	result, err := FromJSON(`{"version": "1.0", "aliases": []}`, nil)
	require.NoError(t, err)
	require.Empty(t, result.Valid)
	require.Empty(t, result.Invalid)
	require.Empty(t, result.Duplicates)
}
