package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.API.BaseURL = "http://localhost:9000"
	cfg.UI.PageSize = 25
	cfg.Export.Dir = "exports"

	path := filepath.Join(t.TempDir(), DefaultFile)
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.API.BaseURL, got.API.BaseURL)
	assert.Equal(t, cfg.API.UploadPath, got.API.UploadPath)
	assert.Equal(t, cfg.UI.PageSize, got.UI.PageSize)
	assert.Equal(t, cfg.Export.Dir, got.Export.Dir)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.NotEmpty(t, cfg.API.BaseURL)
	assert.Equal(t, "/reconcile/upload", cfg.API.UploadPath)
	assert.Equal(t, 50, cfg.UI.PageSize)
	assert.Equal(t, ".", cfg.Export.Dir)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	partial := "api:\n  base_url: http://localhost:9000\n"
	require.NoError(t, os.WriteFile(path, []byte(partial), 0o644))

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000", got.API.BaseURL)
	assert.Equal(t, "/reconcile/upload", got.API.UploadPath)
	assert.Equal(t, 50, got.UI.PageSize)
	assert.Equal(t, ".", got.Export.Dir)

	t.Setenv(EnvAPIURL, "")
	assert.Equal(t, "http://localhost:9000/reconcile/upload", got.UploadURL())
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestYAMLFormat(t *testing.T) {
	cfg := Default()
	path := filepath.Join(t.TempDir(), DefaultFile)
	err := Save(path, cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "base_url: "+cfg.API.BaseURL)
	assert.Contains(t, contents, "upload_path: /reconcile/upload")
	assert.Contains(t, contents, "page_size: 50")
}

func TestEnvOverride(t *testing.T) {
	cfg := Default()
	t.Setenv(EnvAPIURL, "http://localhost:1234")

	assert.Equal(t, "http://localhost:1234", cfg.BaseURL())
	assert.Equal(t, "http://localhost:1234/reconcile/upload", cfg.UploadURL())
}

func TestUploadURL_TrimsTrailingSlash(t *testing.T) {
	t.Setenv(EnvAPIURL, "")
	cfg := Default()
	cfg.API.BaseURL = "http://localhost:9000/"

	assert.Equal(t, "http://localhost:9000/reconcile/upload", cfg.UploadURL())
}
