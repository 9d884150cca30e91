// Package config loads session defaults for the command line tool from an
// optional YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"honnef.co/go/circlepoints"
	"honnef.co/go/circlepoints/render"
	"honnef.co/go/circlepoints/report"
)

// Center is the circle center as written in the config file.
type Center struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Config holds every parameter of a session. Keys absent from the file keep
// their default values.
type Config struct {
	Center Center `yaml:"center"`
	Radius float64 `yaml:"radius"`
	Count  int     `yaml:"count"`
	Color  string  `yaml:"color"`
	Unit   string  `yaml:"unit"`
	Image  string  `yaml:"image"`
	Output string  `yaml:"output"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	spec := circlepoints.DefaultSpec()
	style := circlepoints.DefaultStyle()
	return Config{
		Center: Center{X: spec.Center.X, Y: spec.Center.Y},
		Radius: spec.Radius,
		Count:  spec.Count,
		Color:  string(style.Color),
		Unit:   style.AxisUnit,
		Image:  render.DefaultImage,
		Output: report.DefaultOutput,
	}
}

// Load reads the YAML file at path on top of the defaults. Unknown keys are
// rejected. An empty path returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads a YAML document from r on top of the defaults.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	return cfg, nil
}

// Spec returns the circle parameters of cfg.
func (cfg Config) Spec() circlepoints.CircleSpec {
	return circlepoints.CircleSpec{
		Center: circlepoints.Pt(cfg.Center.X, cfg.Center.Y),
		Radius: cfg.Radius,
		Count:  cfg.Count,
	}
}

// Style returns the render style of cfg.
func (cfg Config) Style() circlepoints.RenderStyle {
	return circlepoints.RenderStyle{
		Color:    circlepoints.HexColor(cfg.Color),
		AxisUnit: cfg.Unit,
	}
}

// SetSpec stores spec in cfg.
func (cfg *Config) SetSpec(spec circlepoints.CircleSpec) {
	cfg.Center = Center{X: spec.Center.X, Y: spec.Center.Y}
	cfg.Radius = spec.Radius
	cfg.Count = spec.Count
}

// SetStyle stores style in cfg.
func (cfg *Config) SetStyle(style circlepoints.RenderStyle) {
	cfg.Color = string(style.Color)
	cfg.Unit = style.AxisUnit
}

// Validate checks the circle parameters and the style.
func (cfg Config) Validate() error {
	if err := cfg.Spec().Validate(); err != nil {
		return err
	}
	return cfg.Style().Validate()
}
