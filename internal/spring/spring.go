// Package spring integrates damped oscillators that rest at zero.
//
// Every secondary-motion layer (recoil, weapon-local recoil, landing dip and
// bob) owns its own State and steps it with the layer's Params. Impulses are
// applied by adding to Value or Velocity before the next Step.
package spring

import (
	"math"

	"github.com/Versifine/strafe/internal/physics"
)

const (
	// MinFrequency keeps the angular frequency away from zero.
	MinFrequency = 0.01
	MaxFrequency = 1e4
)

// Params tunes one oscillator. Frequency is in Hz; DampingRatio 1 is
// critical damping, below 1 rings, above 1 settles slowly.
type Params struct {
	Frequency    float64 `yaml:"frequency"`
	DampingRatio float64 `yaml:"damping_ratio"`
}

// Normalized clamps the parameters into the range Step accepts.
func (p Params) Normalized() Params {
	if !(p.Frequency >= MinFrequency) {
		p.Frequency = MinFrequency
	}
	if p.Frequency > MaxFrequency {
		p.Frequency = MaxFrequency
	}
	if !(p.DampingRatio >= 0) || math.IsInf(p.DampingRatio, 1) {
		p.DampingRatio = 0
	}
	return p
}

// Step advances x, v toward zero by dt using backward Euler on
// x'' = -2ζωx' - ω²x, which stays bounded for any dt.
func Step(x, v, frequency, dampingRatio, dt float64) (float64, float64) {
	if !(dt > 0) || math.IsInf(dt, 1) {
		return x, v
	}
	p := Params{Frequency: frequency, DampingRatio: dampingRatio}.Normalized()

	w := 2 * math.Pi * p.Frequency
	ww := w * w
	f := 1 + 2*dt*p.DampingRatio*w
	dtww := dt * ww
	detInv := 1 / (f + dtww*dt)

	return (f*x + dt*v) * detInv, (v - dtww*x) * detInv
}

// Scalar is a one-dimensional oscillator.
type Scalar struct {
	Value    float64
	Velocity float64
}

func (s *Scalar) Step(p Params, dt float64) {
	s.Value, s.Velocity = Step(s.Value, s.Velocity, p.Frequency, p.DampingRatio, dt)
}

// Settled reports whether both value and velocity are within eps of zero.
func (s Scalar) Settled(eps float64) bool {
	return math.Abs(s.Value) <= eps && math.Abs(s.Velocity) <= eps
}

// Vector is three independent oscillators sharing Params.
type Vector struct {
	Value    physics.Vec3
	Velocity physics.Vec3
}

func (s *Vector) Step(p Params, dt float64) {
	s.Value.X, s.Velocity.X = Step(s.Value.X, s.Velocity.X, p.Frequency, p.DampingRatio, dt)
	s.Value.Y, s.Velocity.Y = Step(s.Value.Y, s.Velocity.Y, p.Frequency, p.DampingRatio, dt)
	s.Value.Z, s.Velocity.Z = Step(s.Value.Z, s.Velocity.Z, p.Frequency, p.DampingRatio, dt)
}

func (s Vector) Settled(eps float64) bool {
	return s.Value.Len() <= eps && s.Velocity.Len() <= eps
}
