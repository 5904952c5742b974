// Package sim runs characters on the arena with the three cadences of a game
// frame: input sampling, fixed-step physics and render-rate feedback.
package sim

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"sync"

	"github.com/Versifine/strafe/internal/arena"
	"github.com/Versifine/strafe/internal/event"
	"github.com/Versifine/strafe/internal/motion"
	"github.com/Versifine/strafe/internal/movement"
	"github.com/Versifine/strafe/internal/physics"
	"github.com/Versifine/strafe/internal/weapon"
	"github.com/yohamta/donburi"
)

var ErrUnknownCharacter = errors.New("unknown character")

// Options are the tunables shared by every character.
type Options struct {
	Sim      Config
	Movement movement.Params
	Weapon   weapon.Params
	Feedback motion.Params
	Arena    arena.Config
}

type Sim struct {
	mu sync.Mutex

	opts  Options
	world donburi.World
	arena *arena.Arena
	bus   *event.Bus
	rng   *rand.Rand

	byName map[string]donburi.Entity

	now         float64
	physicsNow  float64
	accumulator float64
	frames      int
	steps       int
	dropped     int
}

// New builds the arena and an empty world. Characters are added with
// AddCharacter or AddBots.
func New(opts Options) (*Sim, error) {
	opts.Sim = opts.Sim.Normalized()
	s := &Sim{
		opts:   opts,
		world:  donburi.NewWorld(),
		bus:    event.NewBus(),
		rng:    rand.New(rand.NewPCG(opts.Sim.Seed, 0)),
		byName: make(map[string]donburi.Entity),
	}

	a, err := arena.New(opts.Arena, s.onDamage)
	if err != nil {
		return nil, fmt.Errorf("build arena: %w", err)
	}
	s.arena = a
	s.subscribe()
	return s, nil
}

func (s *Sim) subscribe() {
	s.bus.Subscribe(event.EventLanded, func(raw any) {
		evt, ok := raw.(event.LandedEvent)
		if !ok {
			return
		}
		s.withCharacter(evt.Character, func(e *donburi.Entry) {
			Counters.Get(e).Landings++
			if ViewModel.Get(e).Composer.OnLanding(evt.FallSpeed) {
				slog.Debug("landing impact", "character", evt.Character, "fall_speed", evt.FallSpeed)
			}
		})
	})
	s.bus.Subscribe(event.EventHop, func(raw any) {
		evt, ok := raw.(event.HopEvent)
		if !ok {
			return
		}
		s.withCharacter(evt.Character, func(e *donburi.Entry) {
			st := Counters.Get(e)
			st.Hops++
			if evt.Qualified {
				st.QualifiedHops++
			} else {
				st.ResetHops++
			}
		})
	})
	s.bus.Subscribe(event.EventShot, func(raw any) {
		evt, ok := raw.(event.ShotEvent)
		if !ok {
			return
		}
		s.withCharacter(evt.Character, func(e *donburi.Entry) {
			st := Counters.Get(e)
			st.Shots++
			if evt.Hit {
				st.Hits++
			}
		})
	})
}

func (s *Sim) withCharacter(name string, fn func(e *donburi.Entry)) {
	ent, ok := s.byName[name]
	if !ok || !s.world.Valid(ent) {
		return
	}
	fn(s.world.Entry(ent))
}

func (s *Sim) onDamage(t *arena.Target, amount float64, hit weapon.HitContext) {
	s.bus.Publish(event.EventDamage, event.DamageEvent{
		Target: t.Name,
		Amount: amount,
		NewHP:  t.Health,
		Point:  hit.Point,
	})
}

// AddCharacter spawns a character at the next free slot.
func (s *Sim) AddCharacter(name string, policy Policy) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byName[name]; exists {
		return fmt.Errorf("add character %q: already exists", name)
	}
	slot := len(s.byName)
	body := s.arena.NewBody(slot)
	cam := &Camera{body: body, eyeHeight: s.opts.Sim.EyeHeight}
	gun := weapon.NewController(s.opts.Weapon, weapon.Collaborators{
		Scanner: s.arena.Scanner,
		Camera:  cam,
		Decals:  s.arena.Decals,
	}, rand.New(rand.NewPCG(s.opts.Sim.Seed, uint64(slot)+1)))

	ent := s.world.Create(Character, Locomotion, Armament, ViewModel, Driver, Counters)
	e := s.world.Entry(ent)
	Character.Set(e, &CharacterData{Name: name, Slot: slot})
	Locomotion.Set(e, &LocomotionData{
		Controller: movement.NewController(s.opts.Movement, body, s.arena.Probe),
		Body:       body,
	})
	Armament.Set(e, &ArmamentData{Weapon: gun})
	ViewModel.Set(e, &ViewData{Composer: motion.NewComposer(s.opts.Feedback), Camera: cam})
	Driver.Set(e, &DriverData{Policy: policy})
	Counters.Set(e, &Stats{})

	s.byName[name] = ent
	slog.Debug("character spawned", "character", name, "slot", slot, "position", body.Position())
	return nil
}

// AddBots spawns the configured number of scripted characters.
func (s *Sim) AddBots() error {
	for i := 0; i < s.opts.Sim.Bots; i++ {
		policy := Script{
			Hopper:  NewHopper(s.opts.Sim.Hopper),
			Shooter: NewShooter(s.opts.Sim.Shooter),
		}
		if err := s.AddCharacter(fmt.Sprintf("bot-%d", i), policy); err != nil {
			return err
		}
	}
	return nil
}

// Frame advances the world by one rendered frame of length frameDt.
func (s *Sim) Frame(frameDt float64) {
	if !physics.IsFinite(frameDt) || frameDt < 0 {
		frameDt = 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.now += frameDt
	s.sampleInputs()
	s.stepPhysics(frameDt)
	s.render(frameDt)
	s.arena.Decals.Advance(s.now)
	s.frames++
}

func (s *Sim) sampleInputs() {
	characters.Each(s.world, func(e *donburi.Entry) {
		loco := Locomotion.Get(e)
		arm := Armament.Get(e)
		cam := ViewModel.Get(e).Camera
		ctrl := loco.Controller

		var cmd Command
		if p := Driver.Get(e).Policy; p != nil {
			cmd = p.Decide(s.now, View{
				Grounded:      ctrl.Grounded(),
				GroundedSince: ctrl.GroundedSince(),
				Speed:         loco.Body.Velocity().Horizontal().Len(),
				Bonus:         ctrl.BonusSpeed(),
				Yaw:           cam.Yaw,
				Pitch:         cam.Pitch,
			})
		}

		ctrl.SampleInput(movement.FrameInputs{
			Move:        cmd.Move,
			JumpPressed: cmd.Jump,
			JumpHeld:    cmd.JumpHeld,
			Time:        s.now,
		})
		cam.Turn(cmd.YawDelta, cmd.PitchDelta)
		ctrl.FinalizeDirection(cam.Yaw)
		arm.Trigger = cmd.Trigger
		arm.Aim = cmd.Aim
	})
}

func (s *Sim) stepPhysics(frameDt float64) {
	fixed := s.opts.Sim.FixedStep
	s.accumulator += frameDt

	steps := 0
	for s.accumulator >= fixed && steps < s.opts.Sim.MaxSubSteps {
		s.physicsNow += fixed
		s.physicsStep(s.physicsNow, fixed)
		s.accumulator -= fixed
		steps++
	}
	// Dropped steps still pass on the physics clock; jump intents are stamped
	// with the render clock and the two must stay within one fixed step.
	if s.accumulator >= fixed {
		backlog := int(s.accumulator / fixed)
		s.dropped += backlog
		s.accumulator -= float64(backlog) * fixed
		s.physicsNow += float64(backlog) * fixed
		slog.Warn("physics backlog dropped", "steps", backlog, "frame_dt", frameDt)
	}
	s.steps += steps
}

func (s *Sim) physicsStep(now, dt float64) {
	var neighbors []physics.Neighbor
	characters.Each(s.world, func(e *donburi.Entry) {
		neighbors = append(neighbors, Locomotion.Get(e).Body.Neighbor())
	})

	i := 0
	characters.Each(s.world, func(e *donburi.Entry) {
		name := Character.Get(e).Name
		loco := Locomotion.Get(e)
		st := Counters.Get(e)

		res := loco.Controller.Step(now, dt)
		before := loco.Body.Position()
		loco.Body.Integrate(dt, others(neighbors, i))
		i++

		after := loco.Body.Position()
		st.Distance += after.Sub(before).Horizontal().Len()
		st.MaxSpeed = math.Max(st.MaxSpeed, res.HorizontalSpeed)
		st.MaxBonus = math.Max(st.MaxBonus, res.BonusSpeed)
		if res.GraceExpired {
			st.GraceExpiries++
		}

		if res.Landing.Occurred {
			s.bus.Publish(event.EventLanded, event.LandedEvent{
				Character: name,
				Time:      now,
				FallSpeed: res.Landing.FallSpeed,
			})
		}
		if res.Hop != movement.HopNone {
			s.bus.Publish(event.EventHop, event.HopEvent{
				Character: name,
				Time:      now,
				Qualified: res.Hop == movement.HopQualified,
				Bonus:     res.BonusSpeed,
				Speed:     res.HorizontalSpeed,
			})
		}

		if after.Y < s.opts.Sim.KillY {
			loco.Body.Teleport(s.arena.Spawn(Character.Get(e).Slot))
			st.Respawns++
			slog.Info("character respawned", "character", name, "fell_to", after.Y)
		}
	})
}

// others drops the i-th entry, the character itself.
func others(all []physics.Neighbor, i int) []physics.Neighbor {
	out := make([]physics.Neighbor, 0, len(all))
	out = append(out, all[:i]...)
	return append(out, all[i+1:]...)
}

func (s *Sim) render(frameDt float64) {
	characters.Each(s.world, func(e *donburi.Entry) {
		arm := Armament.Get(e)
		view := ViewModel.Get(e)
		body := Locomotion.Get(e).Body

		arm.Weapon.SetAimWeight(arm.Aim)
		shot := arm.Weapon.Update(s.now, frameDt, arm.Trigger)
		view.Camera.Kick = arm.Weapon.Pose().CameraPitch
		if shot.Fired {
			evt := event.ShotEvent{Character: Character.Get(e).Name, Time: s.now, Hit: shot.Hit != nil}
			if shot.Hit != nil {
				evt.Point = shot.Hit.Point
			}
			s.bus.Publish(event.EventShot, evt)
		}

		view.Composer.SetAimWeight(arm.Aim)
		view.Composer.Update(motion.FrameState{
			Now:       s.now,
			Dt:        frameDt,
			LookDelta: view.Camera.LookDelta,
			Velocity:  body.Velocity(),
			CameraYaw: view.Camera.Yaw,
		})
	})
}

// FrameTime returns the next scripted frame length: 1/FrameRate varied by up
// to FrameJitter.
func (s *Sim) FrameTime() float64 {
	base := 1 / s.opts.Sim.FrameRate
	j := s.opts.Sim.FrameJitter
	return base * (1 + j*(2*s.rng.Float64()-1))
}

// Run plays frames scripted frames, stopping early when ctx is done.
func (s *Sim) Run(ctx context.Context, frames int) error {
	for i := 0; i < frames; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.Frame(s.FrameTime())
	}
	return nil
}

func (s *Sim) Bus() *event.Bus {
	return s.bus
}

func (s *Sim) Arena() *arena.Arena {
	return s.arena
}

func (s *Sim) Config() Config {
	return s.opts.Sim
}

func (s *Sim) Now() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Teleport moves a character and stops it.
func (s *Sim) Teleport(name string, pos physics.Vec3) error {
	if !pos.IsFinite() {
		return fmt.Errorf("teleport %q: position %+v is not finite", name, pos)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	ent, ok := s.byName[name]
	if !ok {
		return fmt.Errorf("teleport %q: %w", name, ErrUnknownCharacter)
	}
	Locomotion.Get(s.world.Entry(ent)).Body.Teleport(pos)
	return nil
}
