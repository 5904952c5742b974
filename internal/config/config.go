package config

import (
	"fmt"
	"os"

	"github.com/Versifine/strafe/internal/arena"
	"github.com/Versifine/strafe/internal/hud"
	"github.com/Versifine/strafe/internal/motion"
	"github.com/Versifine/strafe/internal/movement"
	"github.com/Versifine/strafe/internal/sim"
	"github.com/Versifine/strafe/internal/weapon"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Logging  LoggingConfig   `yaml:"logging"`
	Sim      sim.Config      `yaml:"sim"`
	Movement movement.Params `yaml:"movement"`
	Weapon   weapon.Params   `yaml:"weapon"`
	Feedback motion.Params   `yaml:"feedback"`
	Arena    arena.Config    `yaml:"arena"`
	HUD      hud.Config      `yaml:"hud"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
	// Precision is the float precision of the console format.
	Precision int `yaml:"precision"`
}

func Default() *Config {
	return &Config{
		Logging:  LoggingConfig{Level: "info", Format: "console", Precision: 3},
		Sim:      sim.DefaultConfig(),
		Movement: movement.DefaultParams(),
		Weapon:   weapon.DefaultParams(),
		Feedback: motion.DefaultParams(),
		Arena:    arena.DefaultConfig(),
		HUD:      hud.DefaultConfig(),
	}
}

// Load decodes the file at path over the defaults, so a partial file only
// overrides what it names.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Arena.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: arena: %w", path, err)
	}
	cfg.Normalize()
	return cfg, nil
}

// Normalize clamps every tunable into its valid range.
func (c *Config) Normalize() {
	c.Sim = c.Sim.Normalized()
	c.Movement = c.Movement.Normalized()
	c.Weapon = c.Weapon.Normalized()
	c.Feedback = c.Feedback.Normalized()
	c.HUD = c.HUD.Normalized()
}

// SimOptions is the slice of the config a simulation is built from.
func (c *Config) SimOptions() sim.Options {
	return sim.Options{
		Sim:      c.Sim,
		Movement: c.Movement,
		Weapon:   c.Weapon,
		Feedback: c.Feedback,
		Arena:    c.Arena,
	}
}
