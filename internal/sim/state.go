package sim

import (
	"fmt"

	"github.com/Versifine/strafe/internal/motion"
	"github.com/Versifine/strafe/internal/movement"
	"github.com/Versifine/strafe/internal/physics"
	"github.com/Versifine/strafe/internal/weapon"
	"github.com/yohamta/donburi"
)

// CharacterState is a read-only snapshot of one character.
type CharacterState struct {
	Name       string
	Position   physics.Vec3
	Velocity   physics.Vec3
	Speed      float64
	Grounded   bool
	WindowOpen bool
	Momentum   movement.MomentumState
	MaxBonus   float64
	Yaw        float64
	Pitch      float64
	Pose       motion.Pose
	Weapon     weapon.Pose
	Stats      Stats
}

func (s *Sim) snapshot(e *donburi.Entry) CharacterState {
	loco := Locomotion.Get(e)
	view := ViewModel.Get(e)
	vel := loco.Body.Velocity()
	return CharacterState{
		Name:       Character.Get(e).Name,
		Position:   loco.Body.Position(),
		Velocity:   vel,
		Speed:      vel.Horizontal().Len(),
		Grounded:   loco.Controller.Grounded(),
		WindowOpen: loco.Controller.BhopWindowOpen(s.physicsNow),
		Momentum:   loco.Controller.Momentum(),
		MaxBonus:   loco.Controller.Params().MaxBonus,
		Yaw:        view.Camera.Yaw,
		Pitch:      view.Camera.Pitch,
		Pose:       view.Composer.Pose(),
		Weapon:     Armament.Get(e).Weapon.Pose(),
		Stats:      *Counters.Get(e),
	}
}

// State returns the snapshot of the named character.
func (s *Sim) State(name string) (CharacterState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ent, ok := s.byName[name]
	if !ok || !s.world.Valid(ent) {
		return CharacterState{}, fmt.Errorf("state %q: %w", name, ErrUnknownCharacter)
	}
	return s.snapshot(s.world.Entry(ent)), nil
}

// Characters returns every character in spawn order.
func (s *Sim) Characters() []CharacterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []CharacterState
	characters.Each(s.world, func(e *donburi.Entry) {
		out = append(out, s.snapshot(e))
	})
	return out
}

type TargetSummary struct {
	Name      string
	Health    float64
	Hits      int
	Knockback physics.Vec3
}

// Summary is the end-of-run report.
type Summary struct {
	Frames       int
	Steps        int
	DroppedSteps int
	SimTime      float64
	Characters   []CharacterState
	Targets      []TargetSummary
	Decals       int
}

func (s *Sim) Summary() Summary {
	chars := s.Characters()

	s.mu.Lock()
	defer s.mu.Unlock()
	sum := Summary{
		Frames:       s.frames,
		Steps:        s.steps,
		DroppedSteps: s.dropped,
		SimTime:      s.now,
		Characters:   chars,
		Decals:       s.arena.Decals.Total(),
	}
	for _, t := range s.arena.Targets.All() {
		sum.Targets = append(sum.Targets, TargetSummary{
			Name:      t.Name,
			Health:    t.Health,
			Hits:      t.Hits,
			Knockback: t.Knockback,
		})
	}
	return sum
}
