package movement

import "github.com/Versifine/strafe/internal/physics"

//go:generate go tool mockgen -destination=./mocks/collaborators_mock.go -package=mocks . Body,GroundProbe

// Body is the rigid body the controller steers. Its integrator owns position
// and gravity; the controller is the only writer of horizontal velocity and
// writes vertical velocity only when it jumps.
type Body interface {
	Position() physics.Vec3
	Velocity() physics.Vec3
	SetVelocity(v physics.Vec3)
	AddImpulse(impulse physics.Vec3)
}

// GroundProbe answers whether solid geometry on the given layers touches a
// sphere.
type GroundProbe interface {
	Contact(point physics.Vec3, radius float64, layers physics.LayerMask) bool
}
