package weapon

import "github.com/Versifine/strafe/internal/physics"

//go:generate go tool mockgen -destination=./mocks/hitscan_mock.go -package=mocks . HitScanner,Damageable,ImpulseReceiver,DecalSpawner

type Ray struct {
	Origin    physics.Vec3
	Direction physics.Vec3
}

// Hit is the first surface a ray reached. Body and Target are nil when the
// surface has no such capability.
type Hit struct {
	Point    physics.Vec3
	Normal   physics.Vec3
	Distance float64
	Body     ImpulseReceiver
	Target   Damageable
}

type HitScanner interface {
	Raycast(origin, dir physics.Vec3, maxRange float64, layers physics.LayerMask) (Hit, bool)
}

// HitContext describes the shot that damaged a target.
type HitContext struct {
	Point     physics.Vec3
	Normal    physics.Vec3
	Direction physics.Vec3
	Distance  float64
}

type Damageable interface {
	ApplyDamage(amount float64, hit HitContext)
}

type ImpulseReceiver interface {
	AddImpulseAtPoint(impulse, point physics.Vec3)
}

// Decal is a bullet hole placed just off the hit surface.
type Decal struct {
	Position physics.Vec3
	Normal   physics.Vec3
	// Roll is degrees around the normal, in [0, 360).
	Roll     float64
	Scale    float64
	Lifetime float64
}

type DecalSpawner interface {
	SpawnDecal(d Decal)
}

// Muzzle is a fixed barrel transform; when present its forward axis wins over
// the camera.
type Muzzle interface {
	MuzzleRay() Ray
}

// ViewCamera supplies the screen-centre ray.
type ViewCamera interface {
	CenterRay() Ray
}
