package arena

import (
	"errors"
	"fmt"

	"github.com/Versifine/strafe/internal/physics"
)

// Floor is a flat slab whose walkable top sits at y = Top.
type Floor struct {
	HalfSize int `yaml:"half_size"`
	Top      int `yaml:"top"`
}

// Box is an inclusive range of solid voxels.
type Box struct {
	Min Cell `yaml:"min"`
	Max Cell `yaml:"max"`
}

// TargetSpec places one damageable pillar standing at Position.
type TargetSpec struct {
	Name      string       `yaml:"name"`
	Position  physics.Vec3 `yaml:"position"`
	HalfWidth float64      `yaml:"half_width"`
	Height    float64      `yaml:"height"`
	Health    float64      `yaml:"health"`
}

type Config struct {
	Floor   Floor        `yaml:"floor"`
	Boxes   []Box        `yaml:"boxes"`
	Targets []TargetSpec `yaml:"targets"`
	Spawn   physics.Vec3 `yaml:"spawn"`
}

func DefaultConfig() Config {
	return Config{
		Floor: Floor{HalfSize: 64, Top: 0},
		Boxes: []Box{
			{Min: Cell{X: 8, Y: 0, Z: 20}, Max: Cell{X: 10, Y: 0, Z: 22}},
			{Min: Cell{X: -12, Y: 0, Z: 30}, Max: Cell{X: -10, Y: 1, Z: 32}},
		},
		Targets: []TargetSpec{
			{Name: "pillar-north", Position: physics.Vec3{Z: 16}, HalfWidth: 0.4, Height: 2, Health: 100},
			{Name: "pillar-east", Position: physics.Vec3{X: 12, Z: 4}, HalfWidth: 0.4, Height: 2, Health: 100},
			{Name: "pillar-west", Position: physics.Vec3{X: -12, Z: 4}, HalfWidth: 0.4, Height: 2, Health: 100},
		},
	}
}

var ErrOutOfBounds = errors.New("outside the floor")

// Validate reports the first malformed entry.
func (c Config) Validate() error {
	if c.Floor.HalfSize <= 0 {
		return fmt.Errorf("floor half_size %d must be positive", c.Floor.HalfSize)
	}
	for i, b := range c.Boxes {
		if b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z {
			return fmt.Errorf("box %d: min %+v exceeds max %+v", i, b.Min, b.Max)
		}
	}
	seen := make(map[string]bool, len(c.Targets))
	for i, t := range c.Targets {
		switch {
		case t.Name == "":
			return fmt.Errorf("target %d: name is empty", i)
		case seen[t.Name]:
			return fmt.Errorf("target %q: duplicate name", t.Name)
		case !(t.HalfWidth > 0) || !(t.Height > 0) || !(t.Health > 0):
			return fmt.Errorf("target %q: half_width, height and health must be positive", t.Name)
		case !c.inside(t.Position.X, t.HalfWidth) || !c.inside(t.Position.Z, t.HalfWidth):
			return fmt.Errorf("target %q: %w", t.Name, ErrOutOfBounds)
		}
		seen[t.Name] = true
	}
	if !c.inside(c.Spawn.X, 0) || !c.inside(c.Spawn.Z, 0) {
		return fmt.Errorf("spawn: %w", ErrOutOfBounds)
	}
	return nil
}

func (c Config) inside(v, margin float64) bool {
	extent := float64(c.Floor.HalfSize)
	return v-margin >= -extent && v+margin <= extent
}
