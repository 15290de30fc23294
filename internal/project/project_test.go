package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestFile), []byte(content), 0o644))
}

func TestReadManifest(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `{
		// comments are fine
		"name": "my-app",
		"type": "module",
		"dependencies": {"ember-source": "^5.0.0"},
		"devDependencies": {"typescript": "^5.4.0",},
		"peerDependencies": {"@glimmer/component": "*"}
	}`)

	m, err := ReadManifest(dir)
	require.NoError(t, err)

	assert.Equal(t, "my-app", m.Name)
	assert.Equal(t, TypeModule, m.Type)
	assert.True(t, m.Declares("typescript"))
	assert.True(t, m.Declares("ember-source"))
	assert.True(t, m.Declares("@glimmer/component"))
	assert.False(t, m.Declares("prettier"))
}

func TestReadManifest_Missing(t *testing.T) {
	m, err := ReadManifest(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Manifest{}, m)
}

func TestReadManifest_Invalid(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `{"name": `)

	_, err := ReadManifest(dir)
	assert.Error(t, err)
}

func TestFindRoot(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `{"name":"root"}`)
	nested := filepath.Join(root, "app", "components")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	got, err := FindRoot(nested)
	require.NoError(t, err)
	assert.Equal(t, root, got)

	got, err = FindRoot(root)
	require.NoError(t, err)
	assert.Equal(t, root, got)
}

func TestFindRoot_NoManifest(t *testing.T) {
	dir := t.TempDir()

	got, err := FindRoot(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, got)
}
