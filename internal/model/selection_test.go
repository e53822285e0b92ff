package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileRef(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exchange.csv")
	require.NoError(t, os.WriteFile(path, []byte("app_no\nA1\n"), 0o644))

	ref, err := NewFileRef(path)
	require.NoError(t, err)
	assert.Equal(t, path, ref.Path)
	assert.Equal(t, "exchange.csv", ref.Name)
	assert.Equal(t, int64(10), ref.Size)
}

func TestNewFileRef_Missing(t *testing.T) {
	_, err := NewFileRef(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewFileRef_Directory(t *testing.T) {
	_, err := NewFileRef(t.TempDir())
	require.Error(t, err)
}

func TestUploadSelection_Complete(t *testing.T) {
	var sel UploadSelection
	assert.False(t, sel.Complete())

	sel.Exchange = &FileRef{Path: "a.csv"}
	assert.False(t, sel.Complete())

	sel.PSP = &FileRef{Path: "b.csv"}
	assert.True(t, sel.Complete())
}
