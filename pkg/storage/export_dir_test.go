package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportDirWrite(t *testing.T) {
	dir, err := NewExportDir(filepath.Join(t.TempDir(), "exports"))
	require.NoError(t, err)

	path, err := dir.Write("catalog.csv", []byte("a,b\n"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir.Root(), "catalog.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n", string(data))

	_, err = dir.Write("catalog.csv", []byte("c,d\n"))
	require.NoError(t, err)
	data, _ = os.ReadFile(path)
	assert.Equal(t, "c,d\n", string(data))
}

func TestExportDirRejectsEscapingNames(t *testing.T) {
	dir, err := NewExportDir(t.TempDir())
	require.NoError(t, err)

	for _, name := range []string{"../x.csv", "/tmp/x.csv", "", "."} {
		_, err := dir.Write(name, nil)
		assert.Error(t, err, name)
	}
}

func TestExportDirPrune(t *testing.T) {
	dir, err := NewExportDir(t.TempDir())
	require.NoError(t, err)

	oldPath, err := dir.Write("old.pdf", []byte("%PDF"))
	require.NoError(t, err)
	_, err = dir.Write("new.pdf", []byte("%PDF"))
	require.NoError(t, err)

	now := time.Now()
	require.NoError(t, os.Chtimes(oldPath, now.Add(-48*time.Hour), now.Add(-48*time.Hour)))

	removed, err := dir.Prune(24*time.Hour, now)
	require.NoError(t, err)
	assert.Equal(t, []string{"old.pdf"}, removed)
	_, err = os.Stat(oldPath)
	assert.True(t, os.IsNotExist(err))
}
