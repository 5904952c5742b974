package weapon

import (
	"github.com/Versifine/strafe/internal/physics"
	"github.com/Versifine/strafe/internal/spring"
)

// MinFireRate floors the rate before its reciprocal is taken.
const MinFireRate = 1e-4

type FireParams struct {
	Automatic bool `yaml:"automatic"`
	// FireRate is shots per second.
	FireRate             float64 `yaml:"fire_rate"`
	RequireReleaseInSemi bool    `yaml:"require_release_in_semi"`
}

// RecoilParams shape one recoil layer. YawPitch is in degrees per shot;
// negative pitch raises the muzzle.
type RecoilParams struct {
	Kick     float64       `yaml:"kick"`
	YawPitch physics.Vec2  `yaml:"yaw_pitch"`
	MaxPitch float64       `yaml:"max_pitch"`
	Spring   spring.Params `yaml:"spring"`
}

type SlideParams struct {
	Enabled    bool         `yaml:"enabled"`
	Travel     float64      `yaml:"travel"`
	Axis       physics.Vec3 `yaml:"axis"`
	BackTime   float64      `yaml:"back_time"`
	ReturnTime float64      `yaml:"return_time"`
	RelaxRate  float64      `yaml:"relax_rate"`
}

type HitScanParams struct {
	Range         float64           `yaml:"range"`
	Damage        float64           `yaml:"damage"`
	ImpactImpulse float64           `yaml:"impact_impulse"`
	Layers        physics.LayerMask `yaml:"layers"`
	DecalOffset   float64           `yaml:"decal_offset"`
	// DecalLifetime <= 0 keeps decals forever.
	DecalLifetime float64 `yaml:"decal_lifetime"`
	DecalScale    float64 `yaml:"decal_scale"`
}

type Params struct {
	Fire FireParams `yaml:"fire"`
	// AimRecoilMultiplier is the share of recoil left when fully aimed.
	AimRecoilMultiplier float64 `yaml:"aim_recoil_multiplier"`

	Recoil RecoilParams `yaml:"recoil"`
	Local  RecoilParams `yaml:"local"`
	Slide  SlideParams  `yaml:"slide"`

	// CameraKick is degrees of camera pitch per shot, relaxing at
	// CameraReturn per second.
	CameraKick   float64 `yaml:"camera_kick"`
	CameraReturn float64 `yaml:"camera_return"`

	HitScan HitScanParams `yaml:"hitscan"`
}

func DefaultParams() Params {
	return Params{
		Fire: FireParams{
			FireRate:             8,
			RequireReleaseInSemi: true,
		},
		AimRecoilMultiplier: 0.6,
		Recoil: RecoilParams{
			Kick:     0.045,
			YawPitch: physics.Vec2{X: 0, Y: -2},
			MaxPitch: 12,
			Spring:   spring.Params{Frequency: 4.5, DampingRatio: 1},
		},
		Local: RecoilParams{
			Kick:     0.012,
			YawPitch: physics.Vec2{X: 0.35, Y: -0.9},
			Spring:   spring.Params{Frequency: 5.5, DampingRatio: 1},
		},
		Slide: SlideParams{
			Enabled:    true,
			Travel:     0.035,
			Axis:       physics.Back,
			BackTime:   0.04,
			ReturnTime: 0.07,
			RelaxRate:  20,
		},
		CameraKick:   0.6,
		CameraReturn: 12,
		HitScan: HitScanParams{
			Range:         200,
			Damage:        10,
			ImpactImpulse: 4,
			Layers:        physics.LayerAll,
			DecalOffset:   0.002,
			DecalLifetime: 20,
			DecalScale:    1,
		},
	}
}

// Normalized clamps every tunable into its valid range. The fire rate keeps
// its configured value; MinDelay floors it.
func (p Params) Normalized() Params {
	p.Fire.FireRate = physics.NonNegative(p.Fire.FireRate)
	p.AimRecoilMultiplier = physics.Clamp01(physics.NonNegative(p.AimRecoilMultiplier))
	p.Recoil = p.Recoil.normalized()
	p.Local = p.Local.normalized()

	for _, f := range []*float64{
		&p.Slide.Travel, &p.Slide.BackTime, &p.Slide.ReturnTime, &p.Slide.RelaxRate,
		&p.CameraKick, &p.CameraReturn,
		&p.HitScan.Range, &p.HitScan.Damage, &p.HitScan.ImpactImpulse,
		&p.HitScan.DecalOffset, &p.HitScan.DecalScale,
	} {
		*f = physics.NonNegative(*f)
	}
	if !p.Slide.Axis.IsFinite() {
		p.Slide.Axis = physics.Back
	}
	return p
}

func (r RecoilParams) normalized() RecoilParams {
	r.Kick = physics.NonNegative(r.Kick)
	r.MaxPitch = physics.NonNegative(r.MaxPitch)
	if !physics.IsFinite(r.YawPitch.X) {
		r.YawPitch.X = 0
	}
	if !physics.IsFinite(r.YawPitch.Y) {
		r.YawPitch.Y = 0
	}
	r.Spring = r.Spring.Normalized()
	return r
}

// MinDelay is the shortest interval between two shots.
func (p FireParams) MinDelay() float64 {
	rate := p.FireRate
	if !(rate >= MinFireRate) {
		rate = MinFireRate
	}
	return 1 / rate
}
