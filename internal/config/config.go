package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/sandbox2d/internal/physics"
	"github.com/san-kum/sandbox2d/internal/vec"
	"gopkg.in/yaml.v3"
)

const (
	DefaultMode     = "space"
	DefaultDt       = 1.0 / 60
	DefaultDuration = 10.0
	DefaultWidth    = 800.0
	DefaultHeight   = 600.0
	DefaultRadius   = 20.0
	DefaultSeed     = 1
)

// Shape names accepted in a body entry.
const (
	ShapeCircle    = "circle"
	ShapeRectangle = "rectangle"
	ShapeTriangle  = "triangle"
	ShapePoint     = "point"
)

type Config struct {
	Mode       string           `yaml:"mode"`
	Dt         float64          `yaml:"dt"`
	Duration   float64          `yaml:"duration"`
	Seed       int64            `yaml:"seed"`
	Width      float64          `yaml:"width"`
	Height     float64          `yaml:"height"`
	Debug      bool             `yaml:"debug"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Bodies     []BodyConfig     `yaml:"bodies,omitempty"`
	Groups     []GroupConfig    `yaml:"groups,omitempty"`
	Attraction AttractionConfig `yaml:"attraction"`
}

// PhysicsConfig overrides model constants. Zero keeps the model default.
type PhysicsConfig struct {
	Gravity   float64 `yaml:"gravity,omitempty"`
	G         float64 `yaml:"g,omitempty"`
	Softening float64 `yaml:"softening,omitempty"`
	Theta     float64 `yaml:"theta,omitempty"`
}

type BodyConfig struct {
	Shape      string   `yaml:"shape"`
	Position   Vector   `yaml:"position"`
	Velocity   Vector   `yaml:"velocity,omitempty"`
	Radius     float64  `yaml:"radius,omitempty"`
	Width      float64  `yaml:"width,omitempty"`
	Height     float64  `yaml:"height,omitempty"`
	Mass       float64  `yaml:"mass,omitempty"`
	Elasticity *float64 `yaml:"elasticity,omitempty"`
	Group      string   `yaml:"group,omitempty"`
	Color      string   `yaml:"color,omitempty"`
}

type GroupConfig struct {
	Name   string  `yaml:"name"`
	Color  string  `yaml:"color,omitempty"`
	Radius float64 `yaml:"radius,omitempty"`
	Count  int     `yaml:"count"`
}

type RuleConfig struct {
	From  string  `yaml:"from"`
	To    string  `yaml:"to"`
	Value float64 `yaml:"value"`
}

type AttractionConfig struct {
	Min       float64      `yaml:"min"`
	Max       float64      `yaml:"max"`
	Randomize bool         `yaml:"randomize"`
	Rules     []RuleConfig `yaml:"rules,omitempty"`
}

// Vector decodes either [x, y] or {x: .., y: ..}.
type Vector vec.Vec2

func (v Vector) Vec() vec.Vec2 { return vec.Vec2(v) }

func (v *Vector) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := vec.Parse(raw)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*v = Vector(parsed)
	return nil
}

func (v Vector) MarshalYAML() (any, error) {
	return []float64{v.X, v.Y}, nil
}

func (v Vector) IsZero() bool { return v.X == 0 && v.Y == 0 }

func DefaultConfig() *Config {
	return &Config{
		Mode:     DefaultMode,
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		Seed:     DefaultSeed,
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Attraction: AttractionConfig{
			Min: -physics.DefaultAttraction,
			Max: physics.DefaultAttraction,
		},
	}
}

// Load reads a YAML file over DefaultConfig and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) ParsedMode() (physics.Mode, error) {
	return physics.ParseMode(c.Mode)
}

func (c *Config) Validate() error {
	if _, err := c.ParsedMode(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %f", ErrInvalidConfig, c.Dt)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %f", ErrInvalidConfig, c.Duration)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: scene must have positive size, got %gx%g", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Physics.Softening < 0 || c.Physics.Theta < 0 {
		return fmt.Errorf("%w: softening and theta must not be negative", ErrInvalidConfig)
	}
	for i, b := range c.Bodies {
		if err := b.validate(); err != nil {
			return fmt.Errorf("%w: body %d: %v", ErrInvalidConfig, i, err)
		}
	}
	seen := make(map[string]bool, len(c.Groups))
	for _, g := range c.Groups {
		if g.Name == "" {
			return fmt.Errorf("%w: group without a name", ErrInvalidConfig)
		}
		if seen[g.Name] {
			return fmt.Errorf("%w: duplicate group %q", ErrInvalidConfig, g.Name)
		}
		seen[g.Name] = true
		if g.Count < 0 || g.Radius < 0 {
			return fmt.Errorf("%w: group %q has negative count or radius", ErrInvalidConfig, g.Name)
		}
	}
	if c.Attraction.Min > c.Attraction.Max {
		return fmt.Errorf("%w: attraction min %g above max %g", ErrInvalidConfig, c.Attraction.Min, c.Attraction.Max)
	}
	return nil
}

func (b BodyConfig) validate() error {
	switch b.ShapeName() {
	case ShapeCircle, ShapeRectangle, ShapeTriangle, ShapePoint:
	default:
		return fmt.Errorf("unknown shape %q", b.Shape)
	}
	if b.Radius < 0 || b.Width < 0 || b.Height < 0 {
		return fmt.Errorf("negative size")
	}
	if b.Mass < 0 {
		return fmt.Errorf("negative mass %g", b.Mass)
	}
	if b.Elasticity != nil && (*b.Elasticity < 0 || *b.Elasticity > 1) {
		return fmt.Errorf("elasticity %g outside [0,1]", *b.Elasticity)
	}
	return nil
}

// ShapeName normalizes the shape field. An empty shape is a circle.
func (b BodyConfig) ShapeName() string {
	s := strings.ToLower(strings.TrimSpace(b.Shape))
	switch s {
	case "":
		return ShapeCircle
	case "rect", "box":
		return ShapeRectangle
	}
	return s
}

// Clone returns a deep copy, so callers may apply overrides safely.
func (c *Config) Clone() *Config {
	out := *c
	out.Bodies = append([]BodyConfig(nil), c.Bodies...)
	for i, b := range out.Bodies {
		if b.Elasticity != nil {
			e := *b.Elasticity
			out.Bodies[i].Elasticity = &e
		}
	}
	out.Groups = append([]GroupConfig(nil), c.Groups...)
	out.Attraction.Rules = append([]RuleConfig(nil), c.Attraction.Rules...)
	return &out
}
