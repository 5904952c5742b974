// Package motion turns locomotion and aim state into the cosmetic pose
// offset of the first-person model. Angles are Euler degrees packed in a
// Vec3: X pitch, Y yaw, Z roll.
package motion

import "github.com/Versifine/strafe/internal/physics"

// Pose is an offset from the model's rest transform.
type Pose struct {
	Rotation physics.Vec3
	Position physics.Vec3
}

// FrameState is what the composer reads each rendered frame.
type FrameState struct {
	Now       float64
	Dt        float64
	LookDelta physics.Vec2
	Velocity  physics.Vec3
	CameraYaw float64
}

// Composer owns the landing springs and sway state of one character and
// blends them into a smoothed Pose.
type Composer struct {
	params  Params
	landing *LandingImpact
	idle    *IdleSway

	aimWeight float64
	target    Pose
	current   Pose
}

func NewComposer(params Params) *Composer {
	params = params.Normalized()
	return &Composer{
		params:  params,
		landing: NewLandingImpact(params.Landing),
		idle:    NewIdleSway(params.Idle),
	}
}

// SetAimWeight sets the aim blend in [0,1].
func (c *Composer) SetAimWeight(w float64) {
	if !physics.IsFinite(w) {
		w = 0
	}
	c.aimWeight = physics.Clamp01(w)
}

// OnLanding feeds a touchdown from the locomotion step.
func (c *Composer) OnLanding(fallSpeed float64) bool {
	return c.landing.Trigger(fallSpeed)
}

// Update advances the springs and sway by one frame and returns the pose.
func (c *Composer) Update(f FrameState) Pose {
	localVel := physics.ToLocal(f.Velocity, f.CameraYaw)
	tilt := Tilt(c.params.Tilt, f.LookDelta, localVel)

	c.landing.Update(f.Dt)
	idle := c.idle.Update(f.Now, f.Dt, f.Velocity.Horizontal().Len(), c.aimWeight)

	c.target = Pose{
		Rotation: tilt.Move.Add(physics.Vec3{X: c.landing.Pitch()}).Add(tilt.Look),
		Position: physics.Vec3{Y: c.landing.Bob()}.Add(idle),
	}

	k := physics.SmoothFactor(c.params.RotationSmooth, f.Dt)
	c.current = Pose{
		Rotation: physics.Lerp3(c.current.Rotation, c.target.Rotation, k),
		Position: physics.Lerp3(c.current.Position, c.target.Position, k),
	}
	return c.current
}

func (c *Composer) Pose() Pose {
	return c.current
}

// Target is the unsmoothed pose of the last Update.
func (c *Composer) Target() Pose {
	return c.target
}

func (c *Composer) Landing() *LandingImpact {
	return c.landing
}
