package sim

import "github.com/Versifine/strafe/internal/physics"

// Config drives the frame loop and the scripted bots.
type Config struct {
	// FixedStep is the physics tick length in seconds.
	FixedStep float64 `yaml:"fixed_step"`
	// MaxSubSteps bounds the physics ticks one frame may run; the rest of
	// the backlog is dropped.
	MaxSubSteps int     `yaml:"max_sub_steps"`
	Frames      int     `yaml:"frames"`
	FrameRate   float64 `yaml:"frame_rate"`
	// FrameJitter varies each scripted frame time by up to this fraction.
	FrameJitter float64 `yaml:"frame_jitter"`
	Seed        uint64  `yaml:"seed"`
	Bots        int     `yaml:"bots"`
	// EyeHeight is the camera height above the feet.
	EyeHeight float64 `yaml:"eye_height"`
	// KillY respawns a character that falls below it.
	KillY float64 `yaml:"kill_y"`

	Hopper  HopperConfig  `yaml:"hopper"`
	Shooter ShooterConfig `yaml:"shooter"`
}

type HopperConfig struct {
	// JumpDelay is how long after touchdown the bot presses jump.
	JumpDelay float64 `yaml:"jump_delay"`
	// SweepAmplitude and SweepPeriod swing the yaw (degrees, seconds).
	SweepAmplitude float64 `yaml:"sweep_amplitude"`
	SweepPeriod    float64 `yaml:"sweep_period"`
}

type ShooterConfig struct {
	Burst float64 `yaml:"burst"`
	Gap   float64 `yaml:"gap"`
	Aim   float64 `yaml:"aim"`
}

func DefaultConfig() Config {
	return Config{
		FixedStep:   0.02,
		MaxSubSteps: 8,
		Frames:      600,
		FrameRate:   60,
		FrameJitter: 0.25,
		Seed:        1,
		Bots:        2,
		EyeHeight:   1.6,
		KillY:       -20,
		Hopper: HopperConfig{
			JumpDelay:      0.05,
			SweepAmplitude: 25,
			SweepPeriod:    2,
		},
		Shooter: ShooterConfig{
			Burst: 0.4,
			Gap:   1.2,
			Aim:   0,
		},
	}
}

// Normalized falls back to the defaults for tunables that cannot drive a
// loop and clamps the rest.
func (c Config) Normalized() Config {
	d := DefaultConfig()
	if !(c.FixedStep > 0) || !physics.IsFinite(c.FixedStep) {
		c.FixedStep = d.FixedStep
	}
	if c.MaxSubSteps < 1 {
		c.MaxSubSteps = 1
	}
	if c.Frames < 0 {
		c.Frames = 0
	}
	if !(c.FrameRate > 0) || !physics.IsFinite(c.FrameRate) {
		c.FrameRate = d.FrameRate
	}
	c.FrameJitter = physics.Clamp(physics.NonNegative(c.FrameJitter), 0, 0.9)
	if c.Bots < 0 {
		c.Bots = 0
	}
	c.EyeHeight = physics.NonNegative(c.EyeHeight)
	if !physics.IsFinite(c.KillY) {
		c.KillY = d.KillY
	}

	c.Hopper.JumpDelay = physics.NonNegative(c.Hopper.JumpDelay)
	c.Hopper.SweepAmplitude = physics.NonNegative(c.Hopper.SweepAmplitude)
	if !(c.Hopper.SweepPeriod > 0) || !physics.IsFinite(c.Hopper.SweepPeriod) {
		c.Hopper.SweepPeriod = d.Hopper.SweepPeriod
	}
	c.Shooter.Burst = physics.NonNegative(c.Shooter.Burst)
	c.Shooter.Gap = physics.NonNegative(c.Shooter.Gap)
	c.Shooter.Aim = physics.Clamp01(physics.NonNegative(c.Shooter.Aim))
	return c
}
