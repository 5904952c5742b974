package sim

import (
	"math"

	"github.com/Versifine/strafe/internal/arena"
	"github.com/Versifine/strafe/internal/motion"
	"github.com/Versifine/strafe/internal/movement"
	"github.com/Versifine/strafe/internal/physics"
	"github.com/Versifine/strafe/internal/weapon"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

type CharacterData struct {
	Name string
	Slot int
}

type LocomotionData struct {
	Controller *movement.Controller
	Body       *arena.Body
}

type ArmamentData struct {
	Weapon  *weapon.Controller
	Trigger weapon.TriggerInput
	Aim     float64
}

type ViewData struct {
	Composer *motion.Composer
	Camera   *Camera
}

type DriverData struct {
	Policy Policy
}

// Stats are the per-character run counters.
type Stats struct {
	Landings      int
	Hops          int
	QualifiedHops int
	ResetHops     int
	GraceExpiries int
	Shots         int
	Hits          int
	Respawns      int
	MaxSpeed      float64
	MaxBonus      float64
	Distance      float64
}

var (
	Character  = donburi.NewComponentType[CharacterData]()
	Locomotion = donburi.NewComponentType[LocomotionData]()
	Armament   = donburi.NewComponentType[ArmamentData]()
	ViewModel  = donburi.NewComponentType[ViewData]()
	Driver     = donburi.NewComponentType[DriverData]()
	Counters   = donburi.NewComponentType[Stats]()

	characters = donburi.NewQuery(filter.Contains(Character, Locomotion, Armament, ViewModel, Driver, Counters))
)

// Camera is the first-person view of one character. Yaw 0 faces +Z,
// positive pitch looks down; both are degrees.
type Camera struct {
	body      *arena.Body
	eyeHeight float64

	Yaw       float64
	Pitch     float64
	LookDelta physics.Vec2
	// Kick is the weapon's transient pitch offset.
	Kick float64
}

// maxPitch keeps the view short of straight up or down.
const maxPitch = 89

func (c *Camera) Turn(yaw, pitch float64) {
	yaw, pitch = finiteOrZero(yaw), finiteOrZero(pitch)
	c.Yaw = math.Mod(c.Yaw+yaw, 360)
	c.Pitch = physics.Clamp(c.Pitch+pitch, -maxPitch, maxPitch)
	c.LookDelta = physics.Vec2{X: yaw, Y: pitch}
}

// Forward is the unit view direction including the weapon kick.
func (c *Camera) Forward() physics.Vec3 {
	yaw := c.Yaw * math.Pi / 180
	pitch := physics.Clamp(c.Pitch+c.Kick, -maxPitch, maxPitch) * math.Pi / 180
	return physics.Vec3{
		X: math.Sin(yaw) * math.Cos(pitch),
		Y: -math.Sin(pitch),
		Z: math.Cos(yaw) * math.Cos(pitch),
	}
}

func (c *Camera) Eye() physics.Vec3 {
	return c.body.Position().Add(physics.Vec3{Y: c.eyeHeight})
}

// CenterRay implements weapon.ViewCamera.
func (c *Camera) CenterRay() weapon.Ray {
	return weapon.Ray{Origin: c.Eye(), Direction: c.Forward()}
}

func finiteOrZero(v float64) float64 {
	if !physics.IsFinite(v) {
		return 0
	}
	return v
}
