// Package config loads the gldemo configuration from TOML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gogpu/gputypes"
)

// FileName is the configuration file looked up by Find.
const FileName = "gldemo.toml"

var (
	// ErrInvalid is wrapped by every validation failure.
	ErrInvalid = errors.New("config: invalid")
	// ErrUnknownKey is returned when the file sets keys no field matches.
	ErrUnknownKey = errors.New("config: unknown key")
)

// Config is the whole file.
type Config struct {
	Window Window
	Render Render
	Output Output
	Assets Assets
}

// Window describes the on-screen window.
type Window struct {
	Width  int
	Height int
	Title  string
	VSync  bool
}

// Render holds glkit context settings.
type Render struct {
	// ClearColor is RGBA in [0, 1].
	ClearColor [4]float64
	Debug      bool
	Mipmap     bool
}

// Output selects where frames go.
type Output struct {
	// Headless renders one frame offscreen and writes it to Path.
	Headless bool
	Path     string
	// Backend names a backend.Backend for headless runs. Empty picks the
	// best available.
	Backend string
	// Size is the offscreen framebuffer edge, a power of two.
	Size int
}

// Assets configures the resource loader.
type Assets struct {
	Dir   string
	Watch bool
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: Window{Width: 800, Height: 600, Title: "gldemo", VSync: true},
		Render: Render{ClearColor: [4]float64{0.1, 0.1, 0.12, 1}, Debug: true, Mipmap: true},
		Output: Output{Path: "gldemo.png", Size: 256},
		Assets: Assets{Dir: "assets"},
	}
}

// Load decodes path over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w in %s: %s", ErrUnknownKey, path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Find returns FileName in dir if it exists, or "" when it does not.
func Find(dir string) (string, error) {
	path := filepath.Join(dir, FileName)
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return path, nil
	case errors.Is(err, os.ErrNotExist):
		return "", nil
	default:
		return "", fmt.Errorf("config: %w", err)
	}
}

// Save writes cfg to path as TOML.
func Save(path string, cfg Config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// Validate checks ranges.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	for i, v := range c.Render.ClearColor {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: clear color component %d = %g", ErrInvalid, i, v)
		}
	}
	if s := c.Output.Size; s <= 0 || s&(s-1) != 0 {
		return fmt.Errorf("%w: output size %d is not a power of two", ErrInvalid, s)
	}
	if c.Output.Headless && c.Output.Path == "" {
		return fmt.Errorf("%w: headless output needs a path", ErrInvalid)
	}
	return nil
}

// Clear returns the clear color.
func (r Render) Clear() gputypes.Color {
	return gputypes.Color{R: r.ClearColor[0], G: r.ClearColor[1], B: r.ClearColor[2], A: r.ClearColor[3]}
}
