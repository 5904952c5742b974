package physics

const (
	GravityAcceleration = 9.81

	// NormalizeEpsilon is the shortest vector Normalized still scales.
	NormalizeEpsilon = 1e-9
	// SpeedEpsilon is the horizontal speed below which a body counts as at rest
	// for air control.
	SpeedEpsilon = 1e-6
	// InputEpsilonSq is the squared stick length below which there is no input.
	InputEpsilonSq = 1e-6
	// LandingVelocityEpsilon is the downward speed a touchdown needs to emit a
	// landing.
	LandingVelocityEpsilon = 0.01

	MinimumResidualSpeed   = 1e-4
	CollisionAxisTolerance = 1e-9

	CharacterWidth     = 0.6
	CharacterHeight    = 1.8
	CharacterHalfWidth = CharacterWidth / 2.0
)

// LayerMask selects collision layers for contact and ray queries.
type LayerMask uint32

const (
	LayerWorld LayerMask = 1 << iota
	LayerTargets

	LayerAll LayerMask = ^LayerMask(0)
)

func (m LayerMask) Has(layer LayerMask) bool {
	return m&layer != 0
}
