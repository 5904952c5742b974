package weapon

import (
	"github.com/Versifine/strafe/internal/physics"
	"github.com/Versifine/strafe/internal/spring"
)

// RecoilPose is the offset one recoil layer adds to its transform. Yaw and
// Pitch are degrees.
type RecoilPose struct {
	Position physics.Vec3
	Yaw      float64
	Pitch    float64
}

// RecoilLayer is a positional spring and two angular springs resting at
// zero. Each layer owns its state.
type RecoilLayer struct {
	params   RecoilParams
	position spring.Vector
	yaw      spring.Scalar
	pitch    spring.Scalar
}

func NewRecoilLayer(params RecoilParams) *RecoilLayer {
	return &RecoilLayer{params: params.normalized()}
}

// Kick adds one shot, scaled by k, to the layer's displacement.
func (r *RecoilLayer) Kick(k float64) {
	r.position.Value = r.position.Value.Add(physics.Back.Scale(r.params.Kick * k))
	r.yaw.Value += r.params.YawPitch.X * k
	r.pitch.Value += r.params.YawPitch.Y * k
	r.clampPitch()
}

func (r *RecoilLayer) Update(dt float64) {
	r.position.Step(r.params.Spring, dt)
	r.yaw.Step(r.params.Spring, dt)
	r.pitch.Step(r.params.Spring, dt)
	r.clampPitch()
}

// clampPitch holds the pitch within MaxPitch; 0 leaves it unbounded.
func (r *RecoilLayer) clampPitch() {
	if r.params.MaxPitch <= 0 {
		return
	}
	r.pitch.Value = physics.Clamp(r.pitch.Value, -r.params.MaxPitch, r.params.MaxPitch)
}

func (r *RecoilLayer) Pose() RecoilPose {
	return RecoilPose{
		Position: r.position.Value,
		Yaw:      r.yaw.Value,
		Pitch:    r.pitch.Value,
	}
}

func (r *RecoilLayer) Settled(eps float64) bool {
	return r.position.Settled(eps) && r.yaw.Settled(eps) && r.pitch.Settled(eps)
}
