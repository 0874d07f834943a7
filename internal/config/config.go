package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/spacesim/internal/physics"
	"github.com/san-kum/spacesim/internal/population"
	"github.com/san-kum/spacesim/internal/sim"
)

const (
	DefaultDt          = 10.0 / 3.0
	DefaultDuration    = 1000.0
	DefaultSampleEvery = 10
	DefaultCount       = 50
	DefaultMinRadius   = 0.001
	DefaultMaxRadius   = 0.01
	DefaultMassScale   = 1000.0
	DefaultFPS         = 30
	DefaultTheme       = "cyberpunk"
)

var ErrInvalidConfig = errors.New("config: invalid")

type Config struct {
	Name        string           `yaml:"name"`
	Dt          float64          `yaml:"dt"`
	Duration    float64          `yaml:"duration"`
	Seed        int64            `yaml:"seed"`
	SampleEvery int              `yaml:"sample_every"`
	Population  PopulationConfig `yaml:"population"`
	Physics     PhysicsConfig    `yaml:"physics"`
	Live        LiveConfig       `yaml:"live"`
}

type PopulationConfig struct {
	Layout    string  `yaml:"layout"`
	Count     int     `yaml:"count"`
	MinRadius float64 `yaml:"min_radius"`
	MaxRadius float64 `yaml:"max_radius"`
	MassScale float64 `yaml:"mass_scale"`
	Speed     float64 `yaml:"speed"`
}

type PhysicsConfig struct {
	G          float64 `yaml:"g"`
	Gravity    bool    `yaml:"gravity"`
	Collisions bool    `yaml:"collisions"`
	Walls      bool    `yaml:"walls"`
}

type LiveConfig struct {
	FPS   int    `yaml:"fps"`
	Theme string `yaml:"theme"`
}

// DefaultConfig is fifty resting planets stepped at 10/3 time units per
// frame, with every interaction enabled.
func DefaultConfig() *Config {
	return &Config{
		Name:        "planets",
		Dt:          DefaultDt,
		Duration:    DefaultDuration,
		SampleEvery: DefaultSampleEvery,
		Population: PopulationConfig{
			Layout:    string(population.Scatter),
			Count:     DefaultCount,
			MinRadius: DefaultMinRadius,
			MaxRadius: DefaultMaxRadius,
			MassScale: DefaultMassScale,
		},
		Physics: PhysicsConfig{
			G:          physics.G,
			Gravity:    true,
			Collisions: true,
			Walls:      true,
		},
		Live: LiveConfig{
			FPS:   DefaultFPS,
			Theme: DefaultTheme,
		},
	}
}

// Load reads a YAML file on top of DefaultConfig, so omitted keys keep
// their defaults.
func Load(path string) (*Config, error) {
	return Merge(path, DefaultConfig())
}

// Merge reads a YAML file on top of a copy of base.
func Merge(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if err := c.SimConfig().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.PopulationSpec().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Physics.G < 0 {
		return fmt.Errorf("%w: g must not be negative, got %g", ErrInvalidConfig, c.Physics.G)
	}
	if c.Live.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, c.Live.FPS)
	}
	return nil
}

func (c *Config) PhysicsOptions() physics.Options {
	return physics.Options{
		G:          c.Physics.G,
		Gravity:    c.Physics.Gravity,
		Collisions: c.Physics.Collisions,
		Walls:      c.Physics.Walls,
	}
}

func (c *Config) PopulationSpec() population.Spec {
	return population.Spec{
		Layout:    population.Layout(c.Population.Layout),
		Count:     c.Population.Count,
		MinRadius: c.Population.MinRadius,
		MaxRadius: c.Population.MaxRadius,
		MassScale: c.Population.MassScale,
		Speed:     c.Population.Speed,
	}
}

func (c *Config) SimConfig() sim.Config {
	return sim.Config{
		Dt:            c.Dt,
		Duration:      c.Duration,
		SampleEvery:   c.SampleEvery,
		Seed:          c.Seed,
		ValidateState: true,
		Physics:       c.PhysicsOptions(),
	}
}
