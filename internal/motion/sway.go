package motion

import (
	"math"

	"github.com/Versifine/strafe/internal/physics"
)

// TiltSample is one frame of sway angles.
type TiltSample struct {
	Move physics.Vec3
	Look physics.Vec3
}

// Tilt leans the model with camera-local velocity and lags it behind look
// input.
func Tilt(p TiltParams, lookDelta physics.Vec2, localVel physics.Vec3) TiltSample {
	mx := lookDelta.X * p.LookSensitivity
	my := lookDelta.Y * p.LookSensitivity
	rollIn := mx
	if p.InvertLookRoll {
		rollIn = -mx
	}
	look := physics.Vec3{
		X: clampSym(-my*p.LookAmount.X, p.LookClamp.X),
		Y: clampSym(mx*p.LookAmount.Y, p.LookClamp.Y),
		Z: clampSym(rollIn*p.LookAmount.Z, p.LookClamp.Z),
	}

	move := physics.Vec3{
		X: clampSym(-localVel.Z*p.MovePitchPerSpeed, p.MoveClamp.X),
		Y: clampSym(localVel.X*p.MoveYawPerSpeed, p.MoveClamp.Y),
		Z: clampSym(localVel.X*p.MoveRollPerSpeed, p.MoveClamp.Z),
	}
	if p.DampWhenSlow {
		speed := math.Hypot(localVel.X, localVel.Z)
		move = move.Scale(physics.InverseLerp(p.SlowSpeedThreshold, 2*p.SlowSpeedThreshold, speed))
	}
	return TiltSample{Move: move, Look: look}
}

func clampSym(v, limit float64) float64 {
	return physics.Clamp(v, -limit, limit)
}

// IdleSway drifts the model in a slow figure-eight while the character
// stands still and is not aiming.
type IdleSway struct {
	params IdleParams
	weight float64
}

// aimGate is the aim weight above which idle sway fades out.
const aimGate = 0.01

func NewIdleSway(params IdleParams) *IdleSway {
	return &IdleSway{params: params}
}

// Update fades the sway weight and returns the offset at time now.
func (s *IdleSway) Update(now, dt, horizontalSpeed, aimWeight float64) physics.Vec3 {
	p := s.params
	target := 0.0
	if horizontalSpeed <= p.MovementThreshold && aimWeight < aimGate {
		target = 1
	}
	s.weight = physics.Lerp(s.weight, target, physics.Clamp01(dt*p.LerpSpeed))
	if s.weight <= 0.001 {
		return physics.Vec3{}
	}

	t := now * p.Frequency
	return physics.Vec3{
		X: math.Sin(t) * p.Amplitude,
		Y: math.Cos(t*0.5) * p.Amplitude * 0.5,
	}.Scale(s.weight)
}

func (s *IdleSway) Weight() float64 {
	return s.weight
}
