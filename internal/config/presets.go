package config

import (
	"maps"
	"slices"

	"github.com/san-kum/spacesim/internal/physics"
)

var Presets = map[string]*Config{
	"planets": DefaultConfig(),
	"bench": {
		Name: "bench", Dt: 0.01, Duration: 1.0, SampleEvery: 100,
		Population: PopulationConfig{Layout: "scatter", Count: 1000, MinRadius: 0.001, MaxRadius: 0.01, MassScale: 1000},
		Physics:    PhysicsConfig{G: physics.G, Gravity: true, Collisions: true, Walls: true},
		Live:       LiveConfig{FPS: DefaultFPS, Theme: DefaultTheme},
	},
	"pair": {
		Name: "pair", Dt: 0.01, Duration: 2.0, SampleEvery: 1,
		Population: PopulationConfig{Layout: "pair", Count: 2, MinRadius: 0.02, MaxRadius: 0.02, MassScale: 1000, Speed: 0.1},
		Physics:    PhysicsConfig{G: physics.G, Gravity: false, Collisions: true, Walls: true},
		Live:       LiveConfig{FPS: DefaultFPS, Theme: DefaultTheme},
	},
	"ring": {
		Name: "ring", Dt: 0.05, Duration: 50.0, SampleEvery: 5,
		Population: PopulationConfig{Layout: "ring", Count: 24, MinRadius: 0.005, MaxRadius: 0.01, MassScale: 1000, Speed: 0.02},
		Physics:    PhysicsConfig{G: physics.G, Gravity: true, Collisions: true, Walls: true},
		Live:       LiveConfig{FPS: DefaultFPS, Theme: "ocean"},
	},
	"grid": {
		Name: "grid", Dt: 0.05, Duration: 50.0, SampleEvery: 5,
		Population: PopulationConfig{Layout: "grid", Count: 64, MinRadius: 0.005, MaxRadius: 0.015, MassScale: 1000, Speed: 0.05},
		Physics:    PhysicsConfig{G: physics.G, Gravity: false, Collisions: true, Walls: true},
		Live:       LiveConfig{FPS: DefaultFPS, Theme: "retro"},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	return slices.Sorted(maps.Keys(Presets))
}
