package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliasforge/aliasforge/internal/alias"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "aliases.toml"))
}

func TestLoad_MissingFile(t *testing.T) {
	s := testStore(t)

	records, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLoad_Malformed(t *testing.T) {
	s := testStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("not [valid toml"), 0o644))

	_, err := s.Load()
	require.Error(t, err)
}

func TestSaveAndLoad(t *testing.T) {
	s := testStore(t)

	in := []alias.Record{
		alias.New("gs", "git status"),
		{ID: "x1", Name: "ll", Command: "ls -la", Description: "list", Tags: []string{"fs"}, Enabled: false},
	}
	require.NoError(t, s.Save(in))

	out, err := s.Load()
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "gs", out[0].Name)
	assert.Equal(t, "ll", out[1].Name)
	assert.Equal(t, []string{"fs"}, out[1].Tags)
	assert.False(t, out[1].Enabled)
}

func TestAdd_Duplicate(t *testing.T) {
	s := testStore(t)

	require.NoError(t, s.Add(alias.New("gs", "git status")))

	err := s.Add(alias.New("gs", "git status -sb"))
	require.ErrorIs(t, err, ErrDuplicateName)

	records, err := s.Load()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestAddAll_SkipsDuplicates(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.Add(alias.New("gs", "git status")))

	added, err := s.AddAll([]alias.Record{
		alias.New("gs", "collides"),
		alias.New("ll", "ls -la"),
		alias.New("gp", "git push"),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	records, err := s.Load()
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestGet(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.Add(alias.New("gs", "git status")))

	r, err := s.Get("gs")
	require.NoError(t, err)
	assert.Equal(t, "git status", r.Command)

	_, err = s.Get("missing")
	require.ErrorIs(t, err, ErrAliasNotFound)
}

func TestRemove(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.Add(alias.New("gs", "git status")))
	require.NoError(t, s.Add(alias.New("ll", "ls -la")))

	require.NoError(t, s.Remove("gs"))

	records, err := s.Load()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "ll", records[0].Name)

	require.ErrorIs(t, s.Remove("gs"), ErrAliasNotFound)
}

func TestSetEnabled(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.Add(alias.New("gs", "git status")))

	require.NoError(t, s.SetEnabled("gs", false))
	r, err := s.Get("gs")
	require.NoError(t, err)
	assert.False(t, r.Enabled)

	require.NoError(t, s.SetEnabled("gs", true))
	r, err = s.Get("gs")
	require.NoError(t, err)
	assert.True(t, r.Enabled)

	require.ErrorIs(t, s.SetEnabled("missing", true), ErrAliasNotFound)
}

func TestNames(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.Add(alias.New("gs", "git status")))
	require.NoError(t, s.Add(alias.New("ll", "ls -la")))

	names, err := s.Names()
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"gs": true, "ll": true}, names)
}

func TestFilter(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.Add(alias.New("gs", "git status")))
	require.NoError(t, s.Add(alias.New("gp", "git push")))
	require.NoError(t, s.Add(alias.New("ll", "ls -la")))

	all, err := s.Filter("")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	git, err := s.Filter("GIT")
	require.NoError(t, err)
	assert.Len(t, git, 2)

	byName, err := s.Filter("ll")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "ll", byName[0].Name)

	none, err := s.Filter("zzz")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestNew_DefaultPath(t *testing.T) {
	s := New("")
	assert.NotEmpty(t, s.Path())
	assert.Equal(t, "aliases.toml", filepath.Base(s.Path()))
}
