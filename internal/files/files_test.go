package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "psp.csv"), []byte("a\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Exchange.CSV"), []byte("ab\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.csv"), 0o755))

	found, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, found, 2)

	assert.Equal(t, "Exchange.CSV", found[0].Name)
	assert.Equal(t, int64(3), found[0].Size)
	assert.Equal(t, "psp.csv", found[1].Name)
	assert.Equal(t, filepath.Join(dir, "psp.csv"), found[1].Path)
}

func TestScan_MissingDir(t *testing.T) {
	found, err := Scan(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, found)
}
