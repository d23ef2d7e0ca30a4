package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dirEntries(t *testing.T, dir string) []os.DirEntry {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	return entries
}

func TestWithTempFileCleansUp(t *testing.T) {
	dir := t.TempDir()
	storage := NewStorageService(dir)

	var seen string
	err := storage.WithTempFile([]byte("hello"), ".txt", func(filePath string) error {
		seen = filePath
		data, err := os.ReadFile(filePath)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(data))
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, ".txt", filepath.Ext(seen))
	assert.Empty(t, dirEntries(t, dir))
}

func TestWithTempFileCleansUpOnError(t *testing.T) {
	dir := t.TempDir()
	storage := NewStorageService(dir)
	boom := errors.New("boom")

	err := storage.WithTempFile([]byte("x"), ".pdf", func(string) error { return boom })

	assert.True(t, errors.Is(err, boom))
	assert.Empty(t, dirEntries(t, dir))
}

func TestWithTempFileCleansUpOnPanic(t *testing.T) {
	dir := t.TempDir()
	storage := NewStorageService(dir)

	assert.Panics(t, func() {
		_ = storage.WithTempFile([]byte("x"), ".pdf", func(string) error { panic("parser crashed") })
	})
	assert.Empty(t, dirEntries(t, dir))
}

func TestEnsureTempDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "tmp")
	storage := NewStorageService(dir)

	require.NoError(t, storage.EnsureTempDir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestDeleteFileIgnoresMissing(t *testing.T) {
	storage := NewStorageService(t.TempDir())
	assert.NoError(t, storage.DeleteFile(filepath.Join(t.TempDir(), "absent.pdf")))
}
