package movement

import "github.com/Versifine/strafe/internal/physics"

// MomentumState is the bhop chain carried across steps. BonusSpeed only grows
// on a qualifying hop and only shrinks by decay or a hard reset to zero.
type MomentumState struct {
	BonusSpeed          float64
	GroundedSince       float64
	LastJumpIntent      float64
	PunishedThisLanding bool
}

// FrameInputs is one input sample, taken once per rendered frame.
// Move.X strafes right, Move.Y moves forward; both are clamped to [-1, 1].
// Time stamps the jump intent.
type FrameInputs struct {
	Move        physics.Vec2
	JumpPressed bool
	JumpHeld    bool
	Time        float64
}

type HopOutcome int

const (
	HopNone HopOutcome = iota
	// HopQualified stacked the bonus.
	HopQualified
	// HopReset jumped but broke the chain.
	HopReset
)

func (h HopOutcome) String() string {
	switch h {
	case HopQualified:
		return "qualified"
	case HopReset:
		return "reset"
	default:
		return "none"
	}
}

// Landing is emitted on the step a falling character touches down.
type Landing struct {
	Occurred  bool
	FallSpeed float64
}

type StepResult struct {
	Grounded bool
	Landing  Landing
	Hop      HopOutcome
	// GraceExpired is set on the step a landing outlived the bhop window
	// without a jump.
	GraceExpired    bool
	BonusSpeed      float64
	HorizontalSpeed float64
}

type jumpIntent struct {
	pending bool
	fresh   bool
	at      float64
}
