package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.ini"))
	require.NoError(t, err)

	assert.Equal(t, "localhost:4723", cfg.RemoteAddress)
	assert.Equal(t, "android", cfg.Platform)
}

func TestLoadConfig_ReadsValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".poium.ini")
	content := "[remote]\naddress = grid.example.com:4444\nplatform = ios\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "grid.example.com:4444", cfg.RemoteAddress)
	assert.Equal(t, "ios", cfg.Platform)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".poium.ini")
	content := "[remote]\naddress = 10.0.0.5:4723\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "10.0.0.5:4723", cfg.RemoteAddress)
	assert.Equal(t, "android", cfg.Platform)
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".poium.ini")
	require.NoError(t, os.WriteFile(path, []byte("not an ini {{{"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
