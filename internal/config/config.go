package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// MaxFPS bounds the tick rate so TickDuration stays well above zero
const MaxFPS = 1000

type Config struct {
	Playfield  PlayfieldConfig  `toml:"playfield" yaml:"playfield"`
	Simulation SimulationConfig `toml:"simulation" yaml:"simulation"`
	Logging    LoggingConfig    `toml:"logging" yaml:"logging"`
	Audio      AudioConfig      `toml:"audio" yaml:"audio"`
}

type PlayfieldConfig struct {
	Width      float64 `toml:"width" yaml:"width"`
	Height     float64 `toml:"height" yaml:"height"`
	Background string  `toml:"background" yaml:"background"` // "#RRGGBB"
}

type SimulationConfig struct {
	FPS       int     `toml:"fps" yaml:"fps"`
	Asteroids int     `toml:"asteroids" yaml:"asteroids"`
	Seed      uint64  `toml:"seed" yaml:"seed"`             // 0 = random
	BulletTTL float64 `toml:"bullet_ttl" yaml:"bullet_ttl"` // seconds
}

type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // "json" or "console"
	File   string `toml:"file" yaml:"file"`     // empty = stderr
}

type AudioConfig struct {
	Enabled bool `toml:"enabled" yaml:"enabled"`
}

// TickDuration is the wall-clock length of one simulation tick
func (s SimulationConfig) TickDuration() time.Duration {
	return time.Second / time.Duration(s.FPS)
}

// Load reads a TOML file, or YAML when the extension is .yaml/.yml, over
// the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		err = toml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the simulation cannot run with
func (c *Config) Validate() error {
	var errs []error
	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		errs = append(errs, fmt.Errorf("playfield must be positive, got %gx%g",
			c.Playfield.Width, c.Playfield.Height))
	}
	if c.Simulation.FPS <= 0 || c.Simulation.FPS > MaxFPS {
		errs = append(errs, fmt.Errorf("fps must be in 1..%d, got %d", MaxFPS, c.Simulation.FPS))
	}
	if c.Simulation.Asteroids < 0 {
		errs = append(errs, fmt.Errorf("asteroids must not be negative, got %d", c.Simulation.Asteroids))
	}
	if c.Simulation.BulletTTL <= 0 {
		errs = append(errs, fmt.Errorf("bullet_ttl must be positive, got %g", c.Simulation.BulletTTL))
	}
	return errors.Join(errs...)
}

// Default returns the reference settings: a 400x400 field, 10 asteroids, 32 ticks/s
func Default() *Config {
	return &Config{
		Playfield: PlayfieldConfig{
			Width:      400,
			Height:     400,
			Background: "#DFE6FF",
		},
		Simulation: SimulationConfig{
			FPS:       32,
			Asteroids: 10,
			BulletTTL: 1.5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Audio: AudioConfig{
			Enabled: false,
		},
	}
}
