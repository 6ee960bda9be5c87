package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hubastard/glcanvas/engine/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "SMEdit3", cfg.Title)
	assert.Equal(t, 800, cfg.DefaultWidth)
	assert.Equal(t, 600, cfg.DefaultHeight)
	assert.True(t, cfg.VSync)
	assert.False(t, cfg.Visible)
	assert.Equal(t, colors.White, cfg.ClearColor)
	assert.Equal(t, 50*time.Millisecond, cfg.HostPollInterval())
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "canvas.toml")
	data := `
title = "Viewer"
default_width = 1024
visible = true
clear_color = [0.5, 0.25, 0.0, 1.0]
host_poll_millis = 5
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Viewer", cfg.Title)
	assert.Equal(t, 1024, cfg.DefaultWidth)
	assert.Equal(t, 600, cfg.DefaultHeight)
	assert.True(t, cfg.Visible)
	assert.Equal(t, colors.Color{0.5, 0.25, 0, 1}, cfg.ClearColor)
	assert.Equal(t, 5*time.Millisecond, cfg.HostPollInterval())
}

func TestLoadConfigRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("title = = ="), 0o644))
	_, err := LoadConfig(path)
	assert.Error(t, err)
}
