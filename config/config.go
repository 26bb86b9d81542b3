// Package config loads and validates effect options. Validation happens
// here, before a simulation starts; the simulation core itself never sees
// malformed configuration.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/flurry/parameter"
)

// Options holds the user-tunable appearance and speed settings shared by
// all effects. Colors are hex strings, with or without a leading '#'.
type Options struct {
	SnowColors    []string `yaml:"snow_colors"`
	SnowSymbols   []string `yaml:"snow_symbols"`
	MovementSpeed float64  `yaml:"movement_speed"`
}

// Default returns the built-in options.
func Default() Options {
	return Options{
		SnowColors:    []string{"ffffff", "e0ffff", "b0e0e6"},
		SnowSymbols:   []string{"*", ".", "o", "+"},
		MovementSpeed: parameter.DefaultMovementSpeed,
	}
}

// Load reads a YAML options file layered over the defaults.
func Load(path string) (Options, error) {
	opts := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := opts.Validate(); err != nil {
		return opts, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return opts, nil
}

// Validate rejects empty symbol or color sets, non-positive speeds, and
// colors that do not parse as hex.
func (o Options) Validate() error {
	if len(o.SnowColors) == 0 {
		return fmt.Errorf("snow_colors must not be empty")
	}
	if len(o.SnowSymbols) == 0 {
		return fmt.Errorf("snow_symbols must not be empty")
	}
	if o.MovementSpeed <= 0 {
		return fmt.Errorf("movement_speed must be positive, got %v", o.MovementSpeed)
	}
	for _, s := range o.SnowSymbols {
		if len([]rune(s)) != 1 {
			return fmt.Errorf("snow symbol %q must be a single rune", s)
		}
	}
	for _, c := range o.SnowColors {
		if _, err := parseHex(c); err != nil {
			return err
		}
	}
	return nil
}

// Symbols returns the snowflake symbols as runes.
func (o Options) Symbols() []rune {
	out := make([]rune, 0, len(o.SnowSymbols))
	for _, s := range o.SnowSymbols {
		out = append(out, []rune(s)[0])
	}
	return out
}

// Colors returns the snow colors as terminal colors. Options must have
// been validated first; unparseable entries are skipped here.
func (o Options) Colors() []tcell.Color {
	out := make([]tcell.Color, 0, len(o.SnowColors))
	for _, s := range o.SnowColors {
		c, err := parseHex(s)
		if err != nil {
			continue
		}
		out = append(out, c)
	}
	return out
}

func parseHex(s string) (tcell.Color, error) {
	hex := s
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
}
