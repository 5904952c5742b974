package motion

import (
	"log/slog"

	"github.com/Versifine/strafe/internal/physics"
	"github.com/Versifine/strafe/internal/spring"
)

// LandingImpact dips the model's pitch and bumps it up on a hard landing,
// then springs both back to rest.
type LandingImpact struct {
	params LandingParams
	pitch  spring.Scalar
	bob    spring.Scalar
}

func NewLandingImpact(params LandingParams) *LandingImpact {
	return &LandingImpact{params: params}
}

// Trigger kicks the springs for a touchdown at fallSpeed and reports whether
// the fall was hard enough to count.
func (l *LandingImpact) Trigger(fallSpeed float64) bool {
	p := l.params
	if !physics.IsFinite(fallSpeed) || fallSpeed < p.VelocityThreshold {
		return false
	}
	scale := 1 + (fallSpeed-p.VelocityThreshold)*p.SpeedScale

	l.pitch.Value = physics.Clamp(l.pitch.Value-p.PitchAtThreshold*scale, -p.MaxPitch, p.MaxPitch)
	l.bob.Value = physics.Clamp(l.bob.Value+p.BobAtThreshold*scale, -p.MaxBob, p.MaxBob)

	slog.Debug("landing impact", "fall_speed", fallSpeed, "scale", scale)
	return true
}

func (l *LandingImpact) Update(dt float64) {
	l.pitch.Step(l.params.Spring, dt)
	l.bob.Step(l.params.Spring, dt)
}

// Pitch is the current dip in degrees.
func (l *LandingImpact) Pitch() float64 {
	return l.pitch.Value
}

// Bob is the current vertical offset in metres.
func (l *LandingImpact) Bob() float64 {
	return l.bob.Value
}
