// config.go - YAML configuration for the placement daemon.
package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/glyphkit/pictograph/grid"
)

// Config is the daemon's file configuration. Every field has a working
// default so the daemon runs with no config file at all.
type Config struct {
	// Server settings
	Server ServerConfig `yaml:"server"`

	// Placements points at the reference-data tree; empty runs the engine
	// with no overrides (pure geometry).
	Placements PlacementsConfig `yaml:"placements"`

	// Canvas overrides the default geometry.
	Canvas CanvasConfig `yaml:"canvas"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Listen         string `yaml:"listen"`
	RequestLogging bool   `yaml:"request_logging"`
}

// PlacementsConfig contains reference-data settings.
type PlacementsConfig struct {
	Root string `yaml:"root"`
}

// CanvasConfig contains geometry overrides; zero values keep the defaults.
type CanvasConfig struct {
	CenterX    float64 `yaml:"center_x"`
	CenterY    float64 `yaml:"center_y"`
	HandRadius float64 `yaml:"hand_radius"`
	PropRadius float64 `yaml:"prop_radius"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Listen:         ":8484",
			RequestLogging: true,
		},
	}
}

// LoadConfig reads path over the defaults. A missing file is legal and
// yields the defaults unchanged.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Geometry resolves the canvas geometry: defaults with per-field overrides.
func (c *Config) Geometry() grid.Geometry {
	g := grid.DefaultGeometry()
	if c.Canvas.CenterX != 0 {
		g.CenterX = c.Canvas.CenterX
	}
	if c.Canvas.CenterY != 0 {
		g.CenterY = c.Canvas.CenterY
	}
	if c.Canvas.HandRadius != 0 {
		g.HandRadius = c.Canvas.HandRadius
	}
	if c.Canvas.PropRadius != 0 {
		g.PropRadius = c.Canvas.PropRadius
	}
	return g
}
