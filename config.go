package gfx

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds everything the demo program reads at startup.
type Config struct {
	Window  WindowConfig  `toml:"window"`
	Shaders ShaderConfig  `toml:"shaders"`
	Texture TextureConfig `toml:"texture"`
	Render  RenderConfig  `toml:"render"`
	Debug   bool          `toml:"debug"`
}

// WindowConfig describes the window and its context.
type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	VSync  bool   `toml:"vsync"`
}

// ShaderConfig names the two shader stage sources.
type ShaderConfig struct {
	Vertex   string `toml:"vertex"`
	Fragment string `toml:"fragment"`
	Watch    bool   `toml:"watch"` // relink when either file changes
}

// TextureConfig names the texture image and its sampler state.
type TextureConfig struct {
	Path   string `toml:"path"`
	Filter Filter `toml:"filter"`
	Wrap   Wrap   `toml:"wrap"`
}

// Options returns the texture options the config selects.
func (c TextureConfig) Options() []TextureOption {
	return []TextureOption{WithFilter(c.Filter), WithWrap(c.Wrap)}
}

// RenderConfig controls the per-frame renderer.
type RenderConfig struct {
	Topology   Topology   `toml:"topology"`
	ClearColor [4]float32 `toml:"clear_color"`
}

// Options returns the renderer options the config selects.
func (c RenderConfig) Options() []RendererOption {
	return []RendererOption{
		WithTopology(c.Topology),
		WithClearColor(c.ClearColor[0], c.ClearColor[1], c.ClearColor[2], c.ClearColor[3]),
	}
}

// DefaultConfig returns the settings the demo uses when no config file is
// present.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:  "Warnengine",
			Width:  800,
			Height: 600,
			VSync:  true,
		},
		Shaders: ShaderConfig{
			Vertex:   "assets/basic.vs.glsl",
			Fragment: "assets/basic.fs.glsl",
		},
		Texture: TextureConfig{
			Path:   "assets/oui.png",
			Filter: FilterLinear,
			Wrap:   WrapRepeat,
		},
		Render: RenderConfig{
			Topology:   TopologyTriangles,
			ClearColor: DefaultClearColor,
		},
	}
}

// LoadConfig decodes the TOML file at path over the defaults. A missing
// file is not an error. Unknown keys are.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values the decoder cannot.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Shaders.Vertex == "" || c.Shaders.Fragment == "" {
		return errors.New("both shader paths are required")
	}
	if c.Texture.Path == "" {
		return errors.New("texture path is required")
	}
	for _, v := range c.Render.ClearColor {
		if v < 0 || v > 1 {
			return fmt.Errorf("clear colour %v out of range [0, 1]", c.Render.ClearColor)
		}
	}
	return nil
}

// Write encodes the config as TOML to path.
func (c Config) Write(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		f.Close()
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return f.Close()
}
