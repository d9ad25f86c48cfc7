package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "data", "projects.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndGetProject(t *testing.T) {
	s := openTestStore(t)

	p := Project{
		ID:       "p-1",
		Name:     "Glow Bakery",
		Slug:     "glow-bakery",
		Prompt:   "a bakery website",
		SpecJSON: `{"project":{"name":"Glow Bakery"}}`,
	}
	require.NoError(t, s.SaveProject(p, []byte("zip-bytes")))

	got, err := s.GetProject("p-1")
	require.NoError(t, err)
	assert.Equal(t, "Glow Bakery", got.Name)
	assert.Equal(t, "glow-bakery", got.Slug)
	assert.Equal(t, "a bakery website", got.Prompt)
	assert.Equal(t, p.SpecJSON, got.SpecJSON)
	assert.WithinDuration(t, time.Now(), got.CreatedAt, time.Minute)
}

func TestGetArchive(t *testing.T) {
	s := openTestStore(t)

	data := []byte{0x50, 0x4b, 0x03, 0x04, 0x00}
	require.NoError(t, s.SaveProject(Project{ID: "p-2", Name: "n", Slug: "my-site", Prompt: "p", SpecJSON: "{}"}, data))

	got, slug, err := s.GetArchive("p-2")
	require.NoError(t, err)
	assert.Equal(t, data, got)
	assert.Equal(t, "my-site", slug)
}

func TestGetMissingProject(t *testing.T) {
	s := openTestStore(t)

	_, err := s.GetProject("nope")
	assert.ErrorIs(t, err, ErrNotFound)

	_, _, err = s.GetArchive("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListProjectsNewestFirst(t *testing.T) {
	s := openTestStore(t)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c"} {
		p := Project{
			ID:        id,
			Name:      "site " + id,
			Slug:      "site-" + id,
			Prompt:    "prompt " + id,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
			SpecJSON:  "{}",
		}
		require.NoError(t, s.SaveProject(p, []byte("z")))
	}

	projects, err := s.ListProjects(0)
	require.NoError(t, err)
	require.Len(t, projects, 3)
	assert.Equal(t, "c", projects[0].ID)
	assert.Equal(t, "a", projects[2].ID)

	limited, err := s.ListProjects(2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "c", limited[0].ID)
}

func TestListProjectsOmitsSpecAndArchive(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.SaveProject(Project{ID: "x", Name: "n", Slug: "s", Prompt: "p", SpecJSON: `{"big":true}`}, []byte("z")))

	projects, err := s.ListProjects(10)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Empty(t, projects[0].SpecJSON)
}
