package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth    = 200
	DefaultHeight   = 100
	DefaultTickRate = 10
	DefaultSpeed    = 5
	MaxTickRate     = 120
)

// Fill modes for the initial board.
const (
	FillNone   = "none"
	FillRandom = "random"
	FillNoise  = "noise"
)

var (
	ErrInvalidSize   = errors.New("config: grid width and height must be positive")
	ErrInvalidRate   = errors.New("config: tick rate out of range")
	ErrInvalidFill   = errors.New("config: unknown fill mode")
	ErrUnknownPreset = errors.New("config: unknown preset")
)

// Config holds the startup parameters. There is no config file; values come
// from flags, optionally seeded from a built-in preset.
type Config struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	TickRate int    `yaml:"tick_rate"`
	Speed    int    `yaml:"speed"`
	Seed     int64  `yaml:"seed"`
	Pattern  string `yaml:"pattern"`
	Fill     string `yaml:"fill"`
	Theme    string `yaml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		TickRate: DefaultTickRate,
		Speed:    DefaultSpeed,
		Fill:     FillNone,
		Theme:    "classic",
	}
}

func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	if c.TickRate < 1 || c.TickRate > MaxTickRate {
		return fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidRate, c.TickRate, MaxTickRate)
	}
	switch c.Fill {
	case FillNone, FillRandom, FillNoise, "":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFill, c.Fill)
	}
	return nil
}

// String renders the config as YAML, used by `lifesim presets -v`.
func (c *Config) String() string {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Sprintf("%+v", *c)
	}
	return string(data)
}
