// Package arena is the voxel test course the sandbox characters run on. It
// provides the rigid body, ground probe and hit-scan the core controllers
// are written against.
package arena

import (
	"fmt"

	"github.com/Versifine/strafe/internal/physics"
)

type Arena struct {
	cfg     Config
	Grid    *Grid
	Targets *Targets
	Decals  *Decals
	Probe   *GroundProbe
	Scanner *Scanner
}

// New builds the course described by cfg.
func New(cfg Config, onDamage DamageFunc) (*Arena, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid arena: %w", err)
	}

	grid := NewGrid()
	n := cfg.Floor.HalfSize
	grid.Fill(
		Cell{X: -n, Y: cfg.Floor.Top - 1, Z: -n},
		Cell{X: n - 1, Y: cfg.Floor.Top - 1, Z: n - 1},
	)
	for _, b := range cfg.Boxes {
		grid.Fill(b.Min, b.Max)
	}

	targets := NewTargets(cfg.Targets, n, onDamage)
	return &Arena{
		cfg:     cfg,
		Grid:    grid,
		Targets: targets,
		Decals:  NewDecals(),
		Probe:   NewGroundProbe(grid, targets),
		Scanner: NewScanner(grid, targets),
	}, nil
}

// Spawn returns the spawn point offset sideways by slot so characters do
// not start inside each other.
func (a *Arena) Spawn(slot int) physics.Vec3 {
	return a.cfg.Spawn.Add(physics.Vec3{X: float64(slot) * 2 * physics.CharacterWidth})
}

// NewBody places a character body at the given spawn slot.
func (a *Arena) NewBody(slot int) *Body {
	return NewBody(a.Grid, a.Spawn(slot))
}

func (a *Arena) Config() Config {
	return a.cfg
}
