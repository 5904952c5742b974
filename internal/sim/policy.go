package sim

import (
	"math"
	"sync"

	"github.com/Versifine/strafe/internal/physics"
	"github.com/Versifine/strafe/internal/weapon"
)

// View is what a policy sees of its character when the frame starts.
type View struct {
	Grounded      bool
	GroundedSince float64
	Speed         float64
	Bonus         float64
	Yaw           float64
	Pitch         float64
}

// Command is one frame of input.
type Command struct {
	Move     physics.Vec2
	Jump     bool
	JumpHeld bool
	// YawDelta and PitchDelta turn the camera, in degrees.
	YawDelta   float64
	PitchDelta float64
	Trigger    weapon.TriggerInput
	Aim        float64
}

// Policy produces the input of one character each rendered frame.
type Policy interface {
	Decide(now float64, v View) Command
}

// Hopper holds forward, swings the yaw and presses jump JumpDelay after every
// touchdown.
type Hopper struct {
	cfg        HopperConfig
	yaw        float64
	lastLanded float64
	jumped     bool
}

func NewHopper(cfg HopperConfig) *Hopper {
	return &Hopper{cfg: cfg, lastLanded: math.NaN()}
}

func (h *Hopper) Decide(now float64, v View) Command {
	cmd := Command{Move: physics.Vec2{Y: 1}}

	target := h.cfg.SweepAmplitude * math.Sin(2*math.Pi*now/h.cfg.SweepPeriod)
	cmd.YawDelta = target - h.yaw
	h.yaw = target

	if !v.Grounded {
		return cmd
	}
	if v.GroundedSince != h.lastLanded {
		h.lastLanded = v.GroundedSince
		h.jumped = false
	}
	if !h.jumped && now-v.GroundedSince >= h.cfg.JumpDelay {
		cmd.Jump = true
		h.jumped = true
	}
	return cmd
}

// Shooter holds the trigger for Burst seconds every Burst+Gap.
type Shooter struct {
	cfg  ShooterConfig
	held bool
}

func NewShooter(cfg ShooterConfig) *Shooter {
	return &Shooter{cfg: cfg}
}

func (s *Shooter) Trigger(now float64) weapon.TriggerInput {
	held := false
	if period := s.cfg.Burst + s.cfg.Gap; period > 0 && s.cfg.Burst > 0 {
		held = math.Mod(now, period) < s.cfg.Burst
	}
	in := weapon.TriggerInput{Held: held, Pressed: held && !s.held, Released: !held && s.held}
	s.held = held
	return in
}

// Script is the bot policy: a Hopper for the legs and a Shooter for the
// trigger finger. Either may be nil.
type Script struct {
	Hopper  *Hopper
	Shooter *Shooter
}

func (s Script) Decide(now float64, v View) Command {
	var cmd Command
	if s.Hopper != nil {
		cmd = s.Hopper.Decide(now, v)
	}
	if s.Shooter != nil {
		cmd.Trigger = s.Shooter.Trigger(now)
		cmd.Aim = s.Shooter.cfg.Aim
	}
	return cmd
}

// ManualPulseFrames is how many frames a movement key stays down.
const ManualPulseFrames = 12

// Manual is a policy fed by the interactive console. Terminals report key
// presses, not releases, so a movement key is held for ManualPulseFrames.
type Manual struct {
	mu        sync.Mutex
	move      physics.Vec2
	moveLeft  int
	jump      bool
	yaw       float64
	pitch     float64
	fire      bool
	triggered bool
	aim       float64
}

func NewManual() *Manual {
	return &Manual{}
}

// Move holds the stick in dir for the next pulse.
func (m *Manual) Move(dir physics.Vec2) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.move = dir
	m.moveLeft = ManualPulseFrames
}

func (m *Manual) Jump() {
	m.mu.Lock()
	m.jump = true
	m.mu.Unlock()
}

func (m *Manual) Turn(yaw, pitch float64) {
	m.mu.Lock()
	m.yaw += yaw
	m.pitch += pitch
	m.mu.Unlock()
}

// Fire pulls the trigger for one frame.
func (m *Manual) Fire() {
	m.mu.Lock()
	m.fire = true
	m.mu.Unlock()
}

func (m *Manual) ToggleAim() {
	m.mu.Lock()
	m.aim = 1 - m.aim
	m.mu.Unlock()
}

func (m *Manual) Decide(_ float64, _ View) Command {
	m.mu.Lock()
	defer m.mu.Unlock()

	cmd := Command{
		Jump:       m.jump,
		YawDelta:   m.yaw,
		PitchDelta: m.pitch,
		Aim:        m.aim,
	}
	if m.moveLeft > 0 {
		cmd.Move = m.move
		m.moveLeft--
	}
	switch {
	case m.fire:
		cmd.Trigger = weapon.TriggerInput{Held: true, Pressed: true}
		m.triggered = true
	case m.triggered:
		cmd.Trigger = weapon.TriggerInput{Released: true}
		m.triggered = false
	}
	m.jump, m.fire = false, false
	m.yaw, m.pitch = 0, 0
	return cmd
}
