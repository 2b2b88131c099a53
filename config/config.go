// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/gridview/colour"
	"github.com/lixenwraith/gridview/decorator"
	"github.com/lixenwraith/gridview/render"
	"github.com/lixenwraith/gridview/text"
)

// Config holds the application configuration.
type Config struct {
	Colour ColourConfig `toml:"colour"`
	Border BorderConfig `toml:"border"`
	Text   TextConfig   `toml:"text"`
	Scroll ScrollConfig `toml:"scroll"`
}

// ColourConfig selects the colour transform.
type ColourConfig struct {
	Mode string `toml:"mode"` // "auto", "truecolour", "ansi256", "ansi16", "greyscale", "identity"
}

// BorderConfig holds border appearance.
type BorderConfig struct {
	Line      string   `toml:"line"`       // "single", "double", "rounded", "heavy", "ascii", "none"
	Fg        string   `toml:"fg"`         // hex, empty leaves the terminal default
	Bg        string   `toml:"bg"`         // hex, empty leaves the terminal default
	TitleFg   string   `toml:"title_fg"`   // hex
	TitleBold bool     `toml:"title_bold"` //
	Padding   []uint32 `toml:"padding"`    // left, top, right, bottom
}

// TextConfig holds body text settings.
type TextConfig struct {
	Wrap string `toml:"wrap"` // "word", "none", "char"
	Fg   string `toml:"fg"`
	Bg   string `toml:"bg"`
}

// ScrollConfig holds scrolling settings.
type ScrollConfig struct {
	Scrollbar bool `toml:"scrollbar"`
	Bell      bool `toml:"bell"` // tone when scrolling against either end
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Colour: ColourConfig{
			Mode: "auto",
		},
		Border: BorderConfig{
			Line:      "single",
			Fg:        "#3c5064",
			TitleFg:   "#ffffff",
			TitleBold: true,
			Padding:   []uint32{0, 0, 0, 0},
		},
		Text: TextConfig{
			Wrap: "word",
			Fg:   "#c8c8c8",
			Bg:   "#14141e",
		},
		Scroll: ScrollConfig{
			Scrollbar: true,
		},
	}
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "gridview.toml"
	}
	return filepath.Join(dir, "gridview", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("GRIDVIEW_COLOUR"); v != "" {
		cfg.Colour.Mode = v
	}
	if v := os.Getenv("GRIDVIEW_BORDER"); v != "" {
		cfg.Border.Line = v
	}
	if v := os.Getenv("GRIDVIEW_WRAP"); v != "" {
		cfg.Text.Wrap = v
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := colour.ParseMode(c.Colour.Mode); err != nil {
		return err
	}
	if _, err := decorator.ParseLineType(c.Border.Line); err != nil {
		return err
	}
	if _, err := text.ParsePolicy(c.Text.Wrap); err != nil {
		return err
	}
	if len(c.Border.Padding) != 0 && len(c.Border.Padding) != 4 {
		return fmt.Errorf("padding must have 4 values (left, top, right, bottom), got %d", len(c.Border.Padding))
	}

	colours := []struct{ field, value string }{
		{"border.fg", c.Border.Fg},
		{"border.bg", c.Border.Bg},
		{"border.title_fg", c.Border.TitleFg},
		{"text.fg", c.Text.Fg},
		{"text.bg", c.Text.Bg},
	}
	for _, col := range colours {
		if col.value == "" {
			continue
		}
		if _, err := colour.ParseHex(col.value); err != nil {
			return fmt.Errorf("%s: %w", col.field, err)
		}
	}
	return nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Transform returns the colour transform for the configured mode
func (c *Config) Transform() colour.Transform {
	mode, _ := colour.ParseMode(c.Colour.Mode) // validated
	return mode.Transform()
}

// BorderChars returns the glyphs for the configured line type
func (c *Config) BorderChars() decorator.BorderChars {
	line, _ := decorator.ParseLineType(c.Border.Line) // validated
	return line.Chars()
}

// BorderPadding returns the configured padding inside the border
func (c *Config) BorderPadding() decorator.Padding {
	p := c.Border.Padding
	if len(p) != 4 {
		return decorator.Padding{}
	}
	return decorator.NewPadding(p[0], p[1], p[2], p[3])
}

// BorderStyles returns the frame style and the title style
func (c *Config) BorderStyles() (frame, title render.Style) {
	frame = styleOf(c.Border.Fg, c.Border.Bg)
	title = styleOf(c.Border.TitleFg, "")
	if c.Border.TitleBold {
		title = title.WithBold(true)
	}
	return frame, title
}

// TextStyle returns the body text style
func (c *Config) TextStyle() render.Style {
	return styleOf(c.Text.Fg, c.Text.Bg)
}

// WrapPolicy returns the configured wrap policy
func (c *Config) WrapPolicy() text.Policy {
	p, _ := text.ParsePolicy(c.Text.Wrap) // validated
	return p
}

// Wrap returns a fresh wrap for the configured policy
func (c *Config) Wrap() text.Wrap {
	return c.WrapPolicy().New()
}

// styleOf builds a style from optional hex colours; invalid or empty values stay unset
func styleOf(fg, bg string) render.Style {
	st := render.NewStyle()
	if rgb, err := colour.ParseHex(fg); fg != "" && err == nil {
		st = st.WithFg(rgb)
	}
	if rgb, err := colour.ParseHex(bg); bg != "" && err == nil {
		st = st.WithBg(rgb)
	}
	return st
}
