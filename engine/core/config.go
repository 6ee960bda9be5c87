package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"time"

	"github.com/hubastard/glcanvas/engine/colors"
	"github.com/pelletier/go-toml/v2"
)

// Config for the canvas and its render loop.
type Config struct {
	Title         string       `toml:"title"`
	DefaultWidth  int          `toml:"default_width"`  // used when the host has no size yet
	DefaultHeight int          `toml:"default_height"` // used when the host has no size yet
	VSync         bool         `toml:"vsync"`
	Visible       bool         `toml:"visible"` // show the window after bring-up
	ClearColor    colors.Color `toml:"clear_color"`
	LineWidth     float32      `toml:"line_width"`

	// HostPollMillis is the sleep between displayability checks.
	HostPollMillis int `toml:"host_poll_millis"`

	// NativeMouseEvents routes mouse-family listeners to the host widget,
	// which already delivers mouse events on this platform.
	NativeMouseEvents bool `toml:"native_mouse_events"`
}

func DefaultConfig() Config {
	return Config{
		Title:             "SMEdit3",
		DefaultWidth:      800,
		DefaultHeight:     600,
		VSync:             true,
		Visible:           false,
		ClearColor:        colors.White,
		LineWidth:         2,
		HostPollMillis:    50,
		NativeMouseEvents: runtime.GOOS == "darwin",
	}
}

func (c Config) HostPollInterval() time.Duration {
	if c.HostPollMillis <= 0 {
		return 50 * time.Millisecond
	}
	return time.Duration(c.HostPollMillis) * time.Millisecond
}

// LoadConfig reads a TOML file over DefaultConfig. A missing file yields
// the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse config %q: %w", path, err)
	}
	return cfg, nil
}
