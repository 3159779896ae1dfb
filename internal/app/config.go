package app

import (
	"flag"
	"fmt"
	"os"

	"lifeview/internal/core"

	"gopkg.in/yaml.v3"
)

// Config represents the startup parameters for the viewer.
type Config struct {
	Sim      string  `yaml:"sim"`
	Scale    int     `yaml:"scale"`
	Seed     int64   `yaml:"seed"`
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	Speed    float64 `yaml:"speed"`
	Paused   bool    `yaml:"paused"`
	HUDWidth int     `yaml:"hud_width"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:      "life",
		Scale:    4,
		Seed:     42,
		Width:    128,
		Height:   128,
		Speed:    25,
		HUDWidth: 220,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "automaton to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for automaton reset")
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.Float64Var(&c.Speed, "speed", c.Speed, "speed control position (0-100)")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start paused")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
}

// LoadFile overlays values from a YAML file onto the config.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// Validate checks ranges and clamps the speed control position.
func (c *Config) Validate() error {
	if c.Sim == "" {
		return fmt.Errorf("sim must not be empty")
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("grid dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.HUDWidth < 0 {
		return fmt.Errorf("hud width must not be negative, got %d", c.HUDWidth)
	}
	if c.Speed < core.RawMin {
		c.Speed = core.RawMin
	}
	if c.Speed > core.RawMax {
		c.Speed = core.RawMax
	}
	return nil
}
