/*
File    : prose/internal/config/config_test.go
Package : config
*/

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".prose.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prompt: \"lang> \"\nno_color: true\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "lang> ", cfg.Prompt)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, Default().Banner, cfg.Banner)
}
