//go:build !integration

package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644))
	return dir
}

func TestLoad(t *testing.T) {
	t.Run("reads name and version", func(t *testing.T) {
		dir := writeManifest(t, `{
  "name": "@acme/widgets",
  "version": "1.2.3"
}
`)
		m, err := Load(dir)
		require.NoError(t, err)
		assert.Equal(t, "@acme/widgets", m.Name)
		assert.Equal(t, "1.2.3", m.Version)
		assert.Equal(t, filepath.Join(dir, FileName), m.Path)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(t.TempDir())
		require.Error(t, err)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		dir := writeManifest(t, `{"name": "x", "version":`)
		_, err := Load(dir)
		require.Error(t, err)
	})

	t.Run("missing name", func(t *testing.T) {
		dir := writeManifest(t, `{"version": "1.0.0"}`)
		_, err := Load(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"name"`)
	})

	t.Run("missing version", func(t *testing.T) {
		dir := writeManifest(t, `{"name": "x"}`)
		_, err := Load(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"version"`)
	})
}

func TestWriteVersionPreservesEveryOtherByte(t *testing.T) {
	content := `{
  "name": "@acme/widgets",
  "version": "1.2.3",
  "description": "widgets,\twith a literal tab and trailing spaces  ",
  "scripts": {
    "build": "tsc -p .",
    "changelog": "conventional-changelog -p angular"
  },
  "dependencies": {
    "left-pad": {
      "version": "9.9.9"
    }
  },
  "zetaFirst": true,
  "alphaLast": [1, 2, 3]
}
`
	dir := writeManifest(t, content)
	m, err := Load(dir)
	require.NoError(t, err)

	require.NoError(t, m.WriteVersion("1.2.4-beta.0"))

	got, err := os.ReadFile(m.Path)
	require.NoError(t, err)

	// The only difference from the input must be the version value itself.
	expected := `{
  "name": "@acme/widgets",
  "version": "1.2.4-beta.0",
  "description": "widgets,\twith a literal tab and trailing spaces  ",
  "scripts": {
    "build": "tsc -p .",
    "changelog": "conventional-changelog -p angular"
  },
  "dependencies": {
    "left-pad": {
      "version": "9.9.9"
    }
  },
  "zetaFirst": true,
  "alphaLast": [1, 2, 3]
}
`
	assert.Equal(t, expected, string(got))
	assert.Equal(t, "1.2.4-beta.0", m.Version)
}

func TestWriteVersionSkipsNestedVersionKeys(t *testing.T) {
	// A nested "version" appearing before the top-level one must not be
	// touched.
	content := `{
  "name": "x",
  "engines": {
    "version": "18"
  },
  "version": "2.0.0"
}
`
	dir := writeManifest(t, content)
	m, err := Load(dir)
	require.NoError(t, err)

	require.NoError(t, m.WriteVersion("3.0.0"))

	got, err := os.ReadFile(m.Path)
	require.NoError(t, err)
	assert.Contains(t, string(got), `"version": "18"`)
	assert.Contains(t, string(got), `"version": "3.0.0"`)
	assert.NotContains(t, string(got), `"2.0.0"`)
}

func TestWriteVersionAddsTrailingNewline(t *testing.T) {
	dir := writeManifest(t, `{"name": "x", "version": "0.1.0"}`)
	m, err := Load(dir)
	require.NoError(t, err)

	require.NoError(t, m.WriteVersion("0.2.0"))

	got, err := os.ReadFile(m.Path)
	require.NoError(t, err)
	assert.Equal(t, `{"name": "x", "version": "0.2.0"}`+"\n", string(got))
}
