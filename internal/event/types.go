package event

import "github.com/Versifine/strafe/internal/physics"

const (
	EventLanded = "landed"
	EventHop    = "hop"
	EventShot   = "shot"
	EventDamage = "damage"
)

// LandedEvent is published on the physics step a falling character touches
// down.
type LandedEvent struct {
	Character string
	Time      float64
	FallSpeed float64
}

type HopEvent struct {
	Character string
	Time      float64
	Qualified bool
	Bonus     float64
	Speed     float64
}

type ShotEvent struct {
	Character string
	Time      float64
	Hit       bool
	Point     physics.Vec3
}

type DamageEvent struct {
	Target string
	Amount float64
	NewHP  float64
	Point  physics.Vec3
}
