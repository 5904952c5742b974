package weapon

import (
	"log/slog"
	"math/rand/v2"

	"github.com/Versifine/strafe/internal/physics"
)

// Collaborators are the optional scene services a weapon talks to. Any of
// them may be nil; the matching part of a shot is skipped.
type Collaborators struct {
	Scanner HitScanner
	Muzzle  Muzzle
	Camera  ViewCamera
	Decals  DecalSpawner
}

// Shot reports what one fired round did.
type Shot struct {
	Fired bool
	// Traced is false when no ray source or scanner was available.
	Traced bool
	Ray    Ray
	Hit    *Hit
}

// Pose is the weapon's contribution to the view for this frame.
type Pose struct {
	Recoil      RecoilPose
	Local       RecoilPose
	Slide       physics.Vec3
	CameraPitch float64
}

// Controller is the fire control and recoil of one weapon. Update runs at
// render cadence with the frame dt.
type Controller struct {
	params Params
	collab Collaborators
	rng    *rand.Rand

	gate   *FireGate
	recoil *RecoilLayer
	local  *RecoilLayer
	slide  *Slide

	aimWeight   float64
	cameraPitch float64
	shots       int
}

// NewController builds a weapon. rng feeds cosmetic randomness; nil seeds a
// fixed source so runs replay.
func NewController(params Params, collab Collaborators, rng *rand.Rand) *Controller {
	params = params.Normalized()
	if rng == nil {
		rng = rand.New(rand.NewPCG(1, 2))
	}
	return &Controller{
		params: params,
		collab: collab,
		rng:    rng,
		gate:   NewFireGate(params.Fire),
		recoil: NewRecoilLayer(params.Recoil),
		local:  NewRecoilLayer(params.Local),
		slide:  NewSlide(params.Slide),
	}
}

// SetAimWeight sets the aim blend in [0,1] that scales recoil.
func (c *Controller) SetAimWeight(w float64) {
	if !physics.IsFinite(w) {
		w = 0
	}
	c.aimWeight = physics.Clamp01(w)
}

func (c *Controller) AimWeight() float64 {
	return c.aimWeight
}

// Update gates the trigger, fires at most one shot and advances the recoil
// springs, slide and camera kick by dt.
func (c *Controller) Update(now, dt float64, trig TriggerInput) Shot {
	var shot Shot
	if c.gate.Update(now, trig) {
		shot = c.Fire()
	}

	c.recoil.Update(dt)
	c.local.Update(dt)
	c.slide.Update(dt)
	c.cameraPitch = physics.Lerp(c.cameraPitch, 0, physics.Clamp01(dt*c.params.CameraReturn))
	return shot
}

// Fire shoots one round immediately, bypassing the gate.
func (c *Controller) Fire() Shot {
	c.shots++
	c.slide.Trigger()

	k := physics.Lerp(1, c.params.AimRecoilMultiplier, c.aimWeight)
	c.recoil.Kick(k)
	c.cameraPitch -= c.params.CameraKick

	shot := Shot{Fired: true}
	shot.Ray, shot.Traced, shot.Hit = c.hitScan()

	c.local.Kick(k)

	slog.Debug("shot fired", "count", c.shots, "recoil_scale", k, "hit", shot.Hit != nil)
	return shot
}

func (c *Controller) raySource() (Ray, bool) {
	switch {
	case c.collab.Muzzle != nil:
		return c.collab.Muzzle.MuzzleRay(), true
	case c.collab.Camera != nil:
		return c.collab.Camera.CenterRay(), true
	default:
		return Ray{}, false
	}
}

func (c *Controller) hitScan() (Ray, bool, *Hit) {
	ray, ok := c.raySource()
	if !ok || c.collab.Scanner == nil {
		return ray, false, nil
	}
	dir := ray.Direction.Normalized()
	if dir == (physics.Vec3{}) {
		return ray, false, nil
	}
	ray.Direction = dir

	hs := c.params.HitScan
	hit, ok := c.collab.Scanner.Raycast(ray.Origin, dir, hs.Range, hs.Layers)
	if !ok {
		return ray, true, nil
	}

	if hit.Body != nil {
		hit.Body.AddImpulseAtPoint(dir.Scale(hs.ImpactImpulse), hit.Point)
	}
	if hit.Target != nil {
		hit.Target.ApplyDamage(hs.Damage, HitContext{
			Point:     hit.Point,
			Normal:    hit.Normal,
			Direction: dir,
			Distance:  hit.Distance,
		})
	}
	if c.collab.Decals != nil {
		c.collab.Decals.SpawnDecal(Decal{
			Position: hit.Point.Add(hit.Normal.Scale(hs.DecalOffset)),
			Normal:   hit.Normal,
			Roll:     c.rng.Float64() * 360,
			Scale:    hs.DecalScale,
			Lifetime: hs.DecalLifetime,
		})
	}
	return ray, true, &hit
}

func (c *Controller) Pose() Pose {
	return Pose{
		Recoil:      c.recoil.Pose(),
		Local:       c.local.Pose(),
		Slide:       c.slide.Offset(),
		CameraPitch: c.cameraPitch,
	}
}

func (c *Controller) Gate() GateState {
	return c.gate.State()
}

func (c *Controller) Shots() int {
	return c.shots
}

func (c *Controller) Params() Params {
	return c.params
}
