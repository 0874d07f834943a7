package main

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"github.com/san-kum/spacesim/internal/config"
)

var (
	dataDir     string
	configFile  string
	dt          float64
	duration    float64
	seed        int64
	sampleEvery int
	layout      string
	count       int
	minRadius   float64
	maxRadius   float64
	massScale   float64
	speed       float64
	gConst      float64
	gravity     bool
	collisions  bool
	walls       bool
	frameRate   int
	theme       string
)

// addSimFlags registers the flags shared by every command that builds a
// population. Their defaults are only placeholders: a flag is applied on
// top of the preset and config file when it was set explicitly.
func addSimFlags(fs *pflag.FlagSet) {
	def := config.DefaultConfig()
	fs.StringVar(&configFile, "config", "", "config file path (yaml)")
	fs.Float64Var(&dt, "dt", def.Dt, "timestep")
	fs.Float64Var(&duration, "time", def.Duration, "duration")
	fs.Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	fs.IntVar(&sampleEvery, "sample", def.SampleEvery, "record a frame every n steps")
	fs.StringVar(&layout, "layout", def.Population.Layout, "population layout (scatter, ring, grid, pair)")
	fs.IntVar(&count, "count", def.Population.Count, "number of planets")
	fs.Float64Var(&minRadius, "min-radius", def.Population.MinRadius, "smallest planet radius")
	fs.Float64Var(&maxRadius, "max-radius", def.Population.MaxRadius, "largest planet radius")
	fs.Float64Var(&massScale, "mass-scale", def.Population.MassScale, "mass is (radius*scale)^2")
	fs.Float64Var(&speed, "speed", def.Population.Speed, "initial speed")
	fs.Float64Var(&gConst, "g", def.Physics.G, "gravitational constant")
	fs.BoolVar(&gravity, "gravity", def.Physics.Gravity, "apply gravity")
	fs.BoolVar(&collisions, "collisions", def.Physics.Collisions, "resolve collisions")
	fs.BoolVar(&walls, "walls", def.Physics.Walls, "reflect off the unit square")
}

func addLiveFlags(fs *pflag.FlagSet) {
	def := config.DefaultConfig()
	fs.IntVar(&frameRate, "fps", def.Live.FPS, "frame rate")
	fs.StringVar(&theme, "theme", def.Live.Theme, "color theme")
}

// resolveConfig layers, from weakest to strongest: defaults, the named
// preset, the config file, then explicitly set flags. A zero seed is
// replaced by one from the clock.
func resolveConfig(fs *pflag.FlagSet, presetName string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if presetName != "" {
		cfg = config.GetPreset(presetName)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", presetName, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Merge(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	applyFlags(fs, cfg)

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, cfg.Validate()
}

func applyFlags(fs *pflag.FlagSet, cfg *config.Config) {
	changed := func(name string) bool {
		f := fs.Lookup(name)
		return f != nil && f.Changed
	}

	if changed("dt") {
		cfg.Dt = dt
	}
	if changed("time") {
		cfg.Duration = duration
	}
	if changed("seed") {
		cfg.Seed = seed
	}
	if changed("sample") {
		cfg.SampleEvery = sampleEvery
	}
	if changed("layout") {
		cfg.Population.Layout = layout
	}
	if changed("count") {
		cfg.Population.Count = count
	}
	if changed("min-radius") {
		cfg.Population.MinRadius = minRadius
	}
	if changed("max-radius") {
		cfg.Population.MaxRadius = maxRadius
	}
	if changed("mass-scale") {
		cfg.Population.MassScale = massScale
	}
	if changed("speed") {
		cfg.Population.Speed = speed
	}
	if changed("g") {
		cfg.Physics.G = gConst
	}
	if changed("gravity") {
		cfg.Physics.Gravity = gravity
	}
	if changed("collisions") {
		cfg.Physics.Collisions = collisions
	}
	if changed("walls") {
		cfg.Physics.Walls = walls
	}
	if changed("fps") {
		cfg.Live.FPS = frameRate
	}
	if changed("theme") {
		cfg.Live.Theme = theme
	}
}
