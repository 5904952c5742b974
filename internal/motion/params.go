package motion

import (
	"github.com/Versifine/strafe/internal/physics"
	"github.com/Versifine/strafe/internal/spring"
)

type LandingParams struct {
	// VelocityThreshold is the slowest fall speed that kicks the model.
	VelocityThreshold float64       `yaml:"velocity_threshold"`
	PitchAtThreshold  float64       `yaml:"pitch_at_threshold"`
	BobAtThreshold    float64       `yaml:"bob_at_threshold"`
	SpeedScale        float64       `yaml:"speed_scale"`
	MaxPitch          float64       `yaml:"max_pitch"`
	MaxBob            float64       `yaml:"max_bob"`
	Spring            spring.Params `yaml:"spring"`
}

type TiltParams struct {
	LookAmount      physics.Vec3 `yaml:"look_amount"`
	LookClamp       physics.Vec3 `yaml:"look_clamp"`
	LookSensitivity float64      `yaml:"look_sensitivity"`
	InvertLookRoll  bool         `yaml:"invert_look_roll"`

	MovePitchPerSpeed float64      `yaml:"move_pitch_per_speed"`
	MoveRollPerSpeed  float64      `yaml:"move_roll_per_speed"`
	MoveYawPerSpeed   float64      `yaml:"move_yaw_per_speed"`
	MoveClamp         physics.Vec3 `yaml:"move_clamp"`

	// DampWhenSlow fades the move tilt in between SlowSpeedThreshold and
	// twice that.
	DampWhenSlow       bool    `yaml:"damp_when_slow"`
	SlowSpeedThreshold float64 `yaml:"slow_speed_threshold"`
}

type IdleParams struct {
	Amplitude         float64 `yaml:"amplitude"`
	Frequency         float64 `yaml:"frequency"`
	LerpSpeed         float64 `yaml:"lerp_speed"`
	MovementThreshold float64 `yaml:"movement_threshold"`
}

type Params struct {
	Landing        LandingParams `yaml:"landing"`
	Tilt           TiltParams    `yaml:"tilt"`
	Idle           IdleParams    `yaml:"idle"`
	RotationSmooth float64       `yaml:"rotation_smooth"`
}

func DefaultParams() Params {
	return Params{
		Landing: LandingParams{
			VelocityThreshold: 6,
			PitchAtThreshold:  8,
			BobAtThreshold:    0.05,
			SpeedScale:        0.12,
			MaxPitch:          30,
			MaxBob:            0.15,
			Spring:            spring.Params{Frequency: 8, DampingRatio: 1},
		},
		Tilt: TiltParams{
			LookAmount:         physics.Vec3{X: 1, Y: 1.2, Z: 1.5},
			LookClamp:          physics.Vec3{X: 6, Y: 6, Z: 8},
			LookSensitivity:    1,
			InvertLookRoll:     true,
			MovePitchPerSpeed:  3.5,
			MoveRollPerSpeed:   6,
			MoveYawPerSpeed:    1,
			MoveClamp:          physics.Vec3{X: 8, Y: 6, Z: 12},
			DampWhenSlow:       true,
			SlowSpeedThreshold: 0.4,
		},
		Idle: IdleParams{
			Amplitude:         0.02,
			Frequency:         1.5,
			LerpSpeed:         3,
			MovementThreshold: 0.1,
		},
		RotationSmooth: 12,
	}
}

func (p Params) Normalized() Params {
	p.Landing.Spring = p.Landing.Spring.Normalized()
	p.Tilt.LookAmount = finiteVec(p.Tilt.LookAmount)
	p.Tilt.LookClamp = nonNegativeVec(p.Tilt.LookClamp)
	p.Tilt.MoveClamp = nonNegativeVec(p.Tilt.MoveClamp)
	for _, f := range []*float64{
		&p.Landing.VelocityThreshold, &p.Landing.PitchAtThreshold, &p.Landing.BobAtThreshold,
		&p.Landing.SpeedScale, &p.Landing.MaxPitch, &p.Landing.MaxBob,
		&p.Tilt.LookSensitivity, &p.Tilt.SlowSpeedThreshold,
		&p.Idle.Amplitude, &p.Idle.Frequency, &p.Idle.LerpSpeed, &p.Idle.MovementThreshold,
		&p.RotationSmooth,
	} {
		*f = physics.NonNegative(*f)
	}
	for _, f := range []*float64{&p.Tilt.MovePitchPerSpeed, &p.Tilt.MoveRollPerSpeed, &p.Tilt.MoveYawPerSpeed} {
		if !physics.IsFinite(*f) {
			*f = 0
		}
	}
	return p
}

func finiteVec(v physics.Vec3) physics.Vec3 {
	if v.IsFinite() {
		return v
	}
	return physics.Vec3{}
}

func nonNegativeVec(v physics.Vec3) physics.Vec3 {
	return physics.Vec3{X: physics.NonNegative(v.X), Y: physics.NonNegative(v.Y), Z: physics.NonNegative(v.Z)}
}
