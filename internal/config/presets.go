package config

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var presetData []byte

var loadPresets = sync.OnceValues(func() (map[string]*Config, error) {
	raw := make(map[string]*Config)
	if err := yaml.Unmarshal(presetData, &raw); err != nil {
		return nil, fmt.Errorf("config: parse presets: %w", err)
	}
	presets := make(map[string]*Config, len(raw))
	for name, p := range raw {
		cfg := DefaultConfig()
		cfg.merge(p)
		presets[name] = cfg
	}
	return presets, nil
})

// merge copies the non-zero fields of p onto c.
func (c *Config) merge(p *Config) {
	if p == nil {
		return
	}
	if p.Width != 0 {
		c.Width = p.Width
	}
	if p.Height != 0 {
		c.Height = p.Height
	}
	if p.TickRate != 0 {
		c.TickRate = p.TickRate
	}
	if p.Speed != 0 {
		c.Speed = p.Speed
	}
	if p.Seed != 0 {
		c.Seed = p.Seed
	}
	if p.Pattern != "" {
		c.Pattern = p.Pattern
	}
	if p.Fill != "" {
		c.Fill = p.Fill
	}
	if p.Theme != "" {
		c.Theme = p.Theme
	}
}

// GetPreset returns a copy of the named preset.
func GetPreset(name string) (*Config, error) {
	presets, err := loadPresets()
	if err != nil {
		return nil, err
	}
	p, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	cfg := *p
	return &cfg, nil
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	presets, err := loadPresets()
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
