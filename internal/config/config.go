package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/blissart/internal/paint"
)

const (
	DefaultStyle = "textured"
	DefaultTheme = "meadow"
)

type Config struct {
	Style  string `yaml:"style"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Seed   int64  `yaml:"seed"`
	Output string `yaml:"output"`
	Theme  string `yaml:"theme"`
	Color  bool   `yaml:"color"`
}

// DefaultConfig returns the settings a style is painted with when nothing
// overrides them. Unknown styles fall back to DefaultStyle.
func DefaultConfig(style string) *Config {
	s, err := paint.Lookup(style)
	if err != nil {
		s, _ = paint.Lookup(DefaultStyle)
	}
	w, h := s.DefaultSize()
	return &Config{
		Style:  s.Name(),
		Width:  w,
		Height: h,
		Seed:   paint.DefaultSeed,
		Output: s.Output(),
		Theme:  DefaultTheme,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var probe struct {
		Style string `yaml:"style"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return nil, err
	}
	if probe.Style == "" {
		probe.Style = DefaultStyle
	}

	cfg := DefaultConfig(probe.Style)
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports settings the painter would reject.
func (c *Config) Validate() error {
	if _, err := paint.Lookup(c.Style); err != nil {
		return err
	}
	if c.Width <= 0 || c.Height <= 0 {
		return &paint.DimensionError{Width: c.Width, Height: c.Height}
	}
	if c.Output == "" {
		return fmt.Errorf("%w: empty output path", paint.ErrInvalidArgument)
	}
	return nil
}
