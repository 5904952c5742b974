package movement

import "github.com/Versifine/strafe/internal/physics"

// airStartFraction caps the kick given when input starts from rest mid-air.
const airStartFraction = 0.2

// Params are the static locomotion tunables. Speeds are m/s, times seconds,
// AirTurnRate radians per second.
type Params struct {
	MoveSpeed   float64 `yaml:"move_speed"`
	JumpImpulse float64 `yaml:"jump_impulse"`
	// HoldToJump registers a fresh jump intent every frame the button is held.
	HoldToJump bool `yaml:"hold_to_jump"`

	GroundCheckRadius float64           `yaml:"ground_check_radius"`
	FootOffset        float64           `yaml:"foot_offset"`
	GroundLayers      physics.LayerMask `yaml:"ground_layers"`

	BhopWindow  float64 `yaml:"bhop_window"`
	BhopMinMove float64 `yaml:"bhop_min_move"`
	BonusPerHop float64 `yaml:"bonus_per_hop"`
	MaxBonus    float64 `yaml:"max_bonus"`

	BaseDecay        float64 `yaml:"base_decay"`
	SpeedDecayFactor float64 `yaml:"speed_decay_factor"`
	ConstantDecay    float64 `yaml:"constant_decay"`

	AirTurnRate      float64 `yaml:"air_turn_rate"`
	PreserveAirSpeed bool    `yaml:"preserve_air_speed"`
}

func DefaultParams() Params {
	return Params{
		MoveSpeed:         6,
		JumpImpulse:       5,
		GroundCheckRadius: 0.2,
		GroundLayers:      physics.LayerWorld,
		BhopWindow:        0.12,
		BhopMinMove:       0.25,
		BonusPerHop:       0.75,
		MaxBonus:          3,
		BaseDecay:         1.5,
		SpeedDecayFactor:  0.3,
		ConstantDecay:     0.5,
		AirTurnRate:       12,
		PreserveAirSpeed:  true,
	}
}

// Normalized clamps every tunable into a non-negative, finite range.
func (p Params) Normalized() Params {
	for _, f := range []*float64{
		&p.MoveSpeed, &p.JumpImpulse, &p.GroundCheckRadius, &p.FootOffset,
		&p.BhopWindow, &p.BhopMinMove, &p.BonusPerHop, &p.MaxBonus,
		&p.BaseDecay, &p.SpeedDecayFactor, &p.ConstantDecay, &p.AirTurnRate,
	} {
		*f = physics.NonNegative(*f)
	}
	return p
}
