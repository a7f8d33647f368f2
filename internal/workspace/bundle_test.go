package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBundle() map[string]string {
	return map[string]string{
		"index.html": "<!DOCTYPE html>\n<html>\n<body>hello</body>\n</html>\n",
		"styles.css": ":root { --x: 1; }\n\nbody { margin: 0; }\n",
		"script.js":  "'use strict';\nvar cart = [];\n",
	}
}

func TestWriteBundle(t *testing.T) {
	dir := t.TempDir()
	files := sampleBundle()
	require.NoError(t, WriteBundle(dir, files))

	for name, want := range files {
		got, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Equal(t, want, string(got))
	}
}

func TestWriteBundleRejectsPaths(t *testing.T) {
	dir := t.TempDir()
	err := WriteBundle(dir, map[string]string{"../escape.html": "x"})
	assert.Error(t, err)
}

func TestArchiveRoundTrip(t *testing.T) {
	files := sampleBundle()
	archive := ExportArchive(files)

	restored, err := ImportArchive(archive)
	require.NoError(t, err)
	assert.Equal(t, files, restored)
}

func TestArchiveDeterministicOrder(t *testing.T) {
	files := sampleBundle()
	assert.Equal(t, ExportArchive(files), ExportArchive(files))

	// Sorted by filename: index.html before script.js before styles.css.
	archive := ExportArchive(files)
	first := archive[:len("=== index.html ===")]
	assert.Equal(t, "=== index.html ===", first)
}

func TestArchivePreservesBlankLines(t *testing.T) {
	files := map[string]string{"styles.css": "a\n\n\nb\n"}
	restored, err := ImportArchive(ExportArchive(files))
	require.NoError(t, err)
	assert.Equal(t, files, restored)
}

func TestArchiveNormalizesUnterminatedContent(t *testing.T) {
	// The archive format's invariant: content is newline-terminated text.
	// Unterminated content gains the terminator on export and round-trips
	// in that normalized form.
	files := map[string]string{"notes.txt": "no terminator"}
	archive := ExportArchive(files)
	assert.Contains(t, archive, "no terminator\n")

	restored, err := ImportArchive(archive)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"notes.txt": "no terminator\n"}, restored)
}

func TestImportArchiveRejectsLeadingJunk(t *testing.T) {
	_, err := ImportArchive("stray content\n=== a.html ===\nbody\n")
	assert.Error(t, err)
}

func TestManagerPersistent(t *testing.T) {
	base := t.TempDir()
	m := NewPersistentManager(base, "site")
	require.NoError(t, m.Create())
	assert.Equal(t, filepath.Join(base, "site"), m.GetPath())

	// Cleanup keeps persistent workspaces.
	require.NoError(t, m.Cleanup())
	_, err := os.Stat(m.GetPath())
	assert.NoError(t, err)
}

func TestManagerEphemeral(t *testing.T) {
	base := t.TempDir()
	m := NewManager(base)
	require.NoError(t, m.Create())
	require.DirExists(t, m.GetPath())

	require.NoError(t, m.Cleanup())
	_, err := os.Stat(m.GetPath())
	assert.True(t, os.IsNotExist(err))
}
