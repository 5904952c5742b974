package movement

import (
	"log/slog"
	"math"

	"github.com/Versifine/strafe/internal/physics"
)

const noJumpYet = -999.0

// Controller is the fixed-step locomotion model of one character: ground/air
// movement, jump issuance and the bhop momentum chain.
//
// SampleInput and FinalizeDirection run once per rendered frame, after the
// camera has settled; Step runs once per physics tick.
type Controller struct {
	params Params
	body   Body
	ground GroundProbe

	momentum MomentumState
	move     physics.Vec2
	desired  physics.Vec3
	jump     jumpIntent

	grounded        bool
	wasGrounded     bool
	lastVerticalVel float64
}

func NewController(params Params, body Body, ground GroundProbe) *Controller {
	return &Controller{
		params: params.Normalized(),
		body:   body,
		ground: ground,
		momentum: MomentumState{
			LastJumpIntent: noJumpYet,
		},
	}
}

func (c *Controller) Params() Params {
	return c.params
}

// SampleInput records the raw stick and jump button for this frame.
func (c *Controller) SampleInput(in FrameInputs) {
	c.move = physics.Vec2{
		X: physics.Clamp(finiteOr(in.Move.X, 0), -1, 1),
		Y: physics.Clamp(finiteOr(in.Move.Y, 0), -1, 1),
	}

	registered := in.JumpPressed
	if c.params.HoldToJump {
		registered = in.JumpHeld || in.JumpPressed
	}
	if registered {
		c.jump = jumpIntent{pending: true, fresh: true, at: in.Time}
		c.momentum.LastJumpIntent = in.Time
	}
}

// FinalizeDirection turns the sampled stick into a camera-relative horizontal
// direction using the camera yaw (degrees) of the finished frame.
func (c *Controller) FinalizeDirection(cameraYaw float64) {
	fwd, right := physics.YawBasis(finiteOr(cameraYaw, 0))
	c.desired = fwd.Scale(c.move.Y).Add(right.Scale(c.move.X)).Normalized()
}

// Step advances one physics tick of length dt at simulation time now.
func (c *Controller) Step(now, dt float64) StepResult {
	if c.body == nil || !(dt > 0) {
		return c.result(StepResult{})
	}
	p := c.params

	vel := c.body.Velocity()
	previousVerticalVel := c.lastVerticalVel
	c.lastVerticalVel = vel.Y

	var res StepResult
	c.grounded = c.probeGround()
	switch {
	case c.grounded && !c.wasGrounded:
		c.momentum.GroundedSince = now
		c.momentum.PunishedThisLanding = false
		if previousVerticalVel < -physics.LandingVelocityEpsilon {
			res.Landing = Landing{Occurred: true, FallSpeed: -previousVerticalVel}
		}
	case !c.grounded && c.wasGrounded:
		c.momentum.PunishedThisLanding = false
	}

	effectiveSpeed := p.MoveSpeed + c.momentum.BonusSpeed
	if c.grounded {
		vel = c.groundMove(vel, effectiveSpeed)
	} else {
		vel = c.airMove(vel, effectiveSpeed, dt)
	}
	c.body.SetVelocity(vel)

	res.Hop = c.resolveJump(now)
	c.jump.fresh = false
	if c.jump.pending && now-c.jump.at > p.BhopWindow {
		c.jump.pending = false
	}

	if c.grounded && !c.momentum.PunishedThisLanding && now-c.momentum.GroundedSince > p.BhopWindow {
		if c.momentum.BonusSpeed > 0 {
			c.hardReset()
			slog.Debug("bhop window missed", "grounded_for", now-c.momentum.GroundedSince)
		}
		c.momentum.PunishedThisLanding = true
		res.GraceExpired = true
	}

	c.decay(dt)
	c.wasGrounded = c.grounded
	return c.result(res)
}

func (c *Controller) probeGround() bool {
	if c.ground == nil {
		return false
	}
	foot := c.body.Position().Add(physics.Down.Scale(c.params.FootOffset))
	return c.ground.Contact(foot, c.params.GroundCheckRadius, c.params.GroundLayers)
}

// groundMove snaps horizontal velocity to the wish direction; traction is
// infinite on the ground.
func (c *Controller) groundMove(vel physics.Vec3, effectiveSpeed float64) physics.Vec3 {
	target := c.desired.Scale(effectiveSpeed)
	vel.X = target.X
	vel.Z = target.Z
	return vel
}

// airMove turns the current horizontal velocity toward the wish direction at
// no more than AirTurnRate. Releasing input mid-air keeps momentum.
func (c *Controller) airMove(vel physics.Vec3, effectiveSpeed, dt float64) physics.Vec3 {
	if c.desired.LenSq() <= physics.InputEpsilonSq {
		return vel
	}

	horiz := vel.Horizontal()
	curSpeed := horiz.Len()
	if curSpeed <= physics.SpeedEpsilon {
		kick := c.desired.Scale(math.Min(effectiveSpeed, airStartFraction*effectiveSpeed))
		vel.X = kick.X
		vel.Z = kick.Z
		return vel
	}

	dir := physics.RotateTowardsXZ(horiz.Scale(1/curSpeed), c.desired, c.params.AirTurnRate*dt)
	mag := curSpeed
	if !c.params.PreserveAirSpeed {
		mag = math.Max(curSpeed, effectiveSpeed)
	}
	next := dir.Scale(mag)
	vel.X = next.X
	vel.Z = next.Z
	return vel
}

// resolveJump issues a jump while grounded with a pending intent that was
// registered this step or is still inside the bhop window. One intent buys at
// most one jump.
func (c *Controller) resolveJump(now float64) HopOutcome {
	p := c.params
	if !c.grounded || !c.jump.pending {
		return HopNone
	}
	age := math.Max(0, now-c.jump.at)
	withinWindow := age <= p.BhopWindow
	if !c.jump.fresh && !withinWindow {
		return HopNone
	}

	movingEnough := c.desired.LenSq() >= p.BhopMinMove*p.BhopMinMove
	outcome := HopReset
	if withinWindow && movingEnough {
		c.momentum.BonusSpeed = math.Min(c.momentum.BonusSpeed+p.BonusPerHop, p.MaxBonus)
		outcome = HopQualified
		slog.Debug("bhop qualified", "bonus", c.momentum.BonusSpeed, "age", age)
	} else {
		c.hardReset()
		slog.Debug("bhop chain broken", "age", age, "moving", movingEnough)
	}
	c.momentum.PunishedThisLanding = true

	vel := c.body.Velocity()
	vel.Y = 0
	c.body.SetVelocity(vel)
	c.body.AddImpulse(physics.Up.Scale(p.JumpImpulse))

	c.jump = jumpIntent{}
	return outcome
}

// hardReset drops the bonus and clamps horizontal speed to MoveSpeed.
func (c *Controller) hardReset() {
	c.momentum.BonusSpeed = 0
	vel := c.body.Velocity()
	horiz := vel.Horizontal()
	if horiz.Len() > c.params.MoveSpeed {
		horiz = horiz.Normalized().Scale(c.params.MoveSpeed)
		c.body.SetVelocity(physics.Vec3{X: horiz.X, Y: vel.Y, Z: horiz.Z})
	}
}

func (c *Controller) decay(dt float64) {
	p := c.params
	if c.momentum.BonusSpeed <= 0 {
		return
	}
	if c.grounded {
		horizSpeed := c.body.Velocity().Horizontal().Len()
		c.momentum.BonusSpeed = math.Max(0, c.momentum.BonusSpeed-(p.BaseDecay+horizSpeed*p.SpeedDecayFactor)*dt)
	}
	c.momentum.BonusSpeed = math.Max(0, c.momentum.BonusSpeed-p.ConstantDecay*dt)
}

func (c *Controller) result(res StepResult) StepResult {
	res.Grounded = c.grounded
	res.BonusSpeed = c.momentum.BonusSpeed
	if c.body != nil {
		res.HorizontalSpeed = c.body.Velocity().Horizontal().Len()
	}
	return res
}

func (c *Controller) DesiredMoveDir() physics.Vec3 {
	return c.desired
}

func (c *Controller) Grounded() bool {
	return c.grounded
}

func (c *Controller) GroundedSince() float64 {
	return c.momentum.GroundedSince
}

func (c *Controller) LastJumpIntent() float64 {
	return c.momentum.LastJumpIntent
}

func (c *Controller) BonusSpeed() float64 {
	return c.momentum.BonusSpeed
}

func (c *Controller) Momentum() MomentumState {
	return c.momentum
}

// BhopWindowOpen reports whether a jump now would still land inside the
// window that opened at touchdown.
func (c *Controller) BhopWindowOpen(now float64) bool {
	return c.grounded && now-c.momentum.GroundedSince <= c.params.BhopWindow
}

func finiteOr(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}
