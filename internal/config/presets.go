package config

import "sort"

func elasticity(e float64) *float64 { return &e }

// particleGroups mirrors the classic four-colour particle scene.
var particleGroups = []GroupConfig{
	{Name: "blue", Color: "blue", Radius: 3, Count: 200},
	{Name: "red", Color: "red", Radius: 3, Count: 200},
	{Name: "green", Color: "green", Radius: 3, Count: 200},
	{Name: "yellow", Color: "yellow", Radius: 3, Count: 200},
}

var Presets = map[string]map[string]*Config{
	"earth": {
		"drop": {
			Mode: "earth", Dt: DefaultDt, Duration: 10, Seed: 1, Width: 800, Height: 600,
			Bodies: []BodyConfig{
				{Shape: ShapeCircle, Position: Vector{X: 200, Y: 100}, Radius: 20},
				{Shape: ShapeRectangle, Position: Vector{X: 400, Y: 50}, Width: 60, Height: 40},
				{Shape: ShapeTriangle, Position: Vector{X: 600, Y: 150}, Width: 50, Height: 50, Elasticity: elasticity(0.8)},
			},
		},
		"throw": {
			Mode: "earth", Dt: DefaultDt, Duration: 10, Seed: 1, Width: 800, Height: 600,
			Bodies: []BodyConfig{
				{Shape: ShapeCircle, Position: Vector{X: 50, Y: 500}, Velocity: Vector{X: 300, Y: -900}, Radius: 15, Elasticity: elasticity(0.9)},
			},
		},
	},
	"space": {
		"binary": {
			Mode: "space", Dt: DefaultDt, Duration: 20, Seed: 1, Width: 800, Height: 600,
			Bodies: []BodyConfig{
				{Shape: ShapeCircle, Position: Vector{X: 300, Y: 300}, Velocity: Vector{X: 0, Y: -40}, Radius: 20, Mass: 1e15},
				{Shape: ShapeCircle, Position: Vector{X: 500, Y: 300}, Velocity: Vector{X: 0, Y: 40}, Radius: 20, Mass: 1e15},
			},
		},
		"cluster": {
			Mode: "space", Dt: DefaultDt, Duration: 20, Seed: 7, Width: 800, Height: 600,
			Physics: PhysicsConfig{G: 1000},
			Groups:  []GroupConfig{{Name: "dust", Color: "white", Radius: 3, Count: 150}},
		},
	},
	"particle": {
		"life": {
			Mode: "particle", Dt: DefaultDt, Duration: 30, Seed: 42, Width: 800, Height: 600,
			Groups:     particleGroups,
			Attraction: AttractionConfig{Min: -1000, Max: 1000, Randomize: true},
		},
		"chase": {
			Mode: "particle", Dt: DefaultDt, Duration: 30, Seed: 3, Width: 800, Height: 600,
			Groups: []GroupConfig{
				{Name: "red", Color: "red", Radius: 3, Count: 150},
				{Name: "blue", Color: "blue", Radius: 3, Count: 150},
			},
			Attraction: AttractionConfig{
				Min: -1000, Max: 1000,
				Rules: []RuleConfig{
					{From: "red", To: "blue", Value: 800},
					{From: "blue", To: "red", Value: -600},
					{From: "red", To: "red", Value: -200},
					{From: "blue", To: "blue", Value: 300},
				},
			},
		},
	},
	"space-bh": {
		"galaxy": {
			Mode: "space-bh", Dt: DefaultDt, Duration: 20, Seed: 11, Width: 800, Height: 600,
			Physics: PhysicsConfig{G: 1000, Theta: 0.5},
			Groups:  []GroupConfig{{Name: "stars", Color: "yellow", Radius: 2, Count: 1000}},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(mode, preset string) *Config {
	modePresets, ok := Presets[mode]
	if !ok {
		return nil
	}
	cfg, ok := modePresets[preset]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

// ListPresets returns the preset names for mode in sorted order.
func ListPresets(mode string) []string {
	modePresets, ok := Presets[mode]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modePresets))
	for name := range modePresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FindPreset looks a preset up by name across every mode.
func FindPreset(name string) *Config {
	modes := make([]string, 0, len(Presets))
	for mode := range Presets {
		modes = append(modes, mode)
	}
	sort.Strings(modes)
	for _, mode := range modes {
		if cfg := GetPreset(mode, name); cfg != nil {
			return cfg
		}
	}
	return nil
}
