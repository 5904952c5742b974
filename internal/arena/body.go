package arena

import (
	"sync"

	"github.com/Versifine/strafe/internal/physics"
)

// Body is a gravity-driven character box on the voxel course. Position is
// the centre of the feet.
type Body struct {
	mu        sync.Mutex
	pos       physics.Vec3
	vel       physics.Vec3
	mass      float64
	halfWidth float64
	height    float64
	gravity   float64
	grid      physics.BlockStore
}

func NewBody(grid physics.BlockStore, spawn physics.Vec3) *Body {
	return &Body{
		pos:       spawn,
		mass:      1,
		halfWidth: physics.CharacterHalfWidth,
		height:    physics.CharacterHeight,
		gravity:   physics.GravityAcceleration,
		grid:      grid,
	}
}

func (b *Body) Position() physics.Vec3 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pos
}

func (b *Body) Velocity() physics.Vec3 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.vel
}

func (b *Body) SetVelocity(v physics.Vec3) {
	if !v.IsFinite() {
		return
	}
	b.mu.Lock()
	b.vel = v
	b.mu.Unlock()
}

// AddImpulse changes velocity by impulse / mass.
func (b *Body) AddImpulse(impulse physics.Vec3) {
	if !impulse.IsFinite() {
		return
	}
	b.mu.Lock()
	b.vel = b.vel.Add(impulse.Scale(1 / b.mass))
	b.mu.Unlock()
}

// Teleport moves the body and stops it.
func (b *Body) Teleport(pos physics.Vec3) {
	b.mu.Lock()
	b.pos = pos
	b.vel = physics.Vec3{}
	b.mu.Unlock()
}

func (b *Body) Box() physics.AABB {
	b.mu.Lock()
	defer b.mu.Unlock()
	return physics.BoxAt(b.pos, b.halfWidth, b.height)
}

// Integrate applies gravity, moves the box through the grid and cancels
// velocity on every blocked axis, then pushes it out of neighbours.
func (b *Body) Integrate(dt float64, neighbors []physics.Neighbor) {
	if !(dt > 0) {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	b.vel.Y -= b.gravity * dt
	delta := b.vel.Scale(dt)
	pos, applied := physics.ResolveMovement(b.pos, delta, b.halfWidth, b.height, b.grid)
	if applied.X == 0 && delta.X != 0 {
		b.vel.X = 0
	}
	if applied.Y == 0 && delta.Y != 0 {
		b.vel.Y = 0
	}
	if applied.Z == 0 && delta.Z != 0 {
		b.vel.Z = 0
	}
	b.pos = physics.Separate(pos, b.halfWidth, b.height, b.grid, neighbors)
}

func (b *Body) Neighbor() physics.Neighbor {
	b.mu.Lock()
	defer b.mu.Unlock()
	return physics.Neighbor{Position: b.pos, HalfWidth: b.halfWidth, Height: b.height}
}
