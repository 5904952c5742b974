package arena

import (
	"errors"
	"math"
	"testing"

	"github.com/Versifine/strafe/internal/physics"
	"github.com/Versifine/strafe/internal/weapon"
)

func approxEqual(t *testing.T, got, want, tol float64, field string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("%s = %.8f, want %.8f (tol=%.8f)", field, got, want, tol)
	}
}

func newTestArena(t *testing.T, onDamage DamageFunc) *Arena {
	t.Helper()
	a, err := New(DefaultConfig(), onDamage)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return a
}

func TestNew_BuildsFloorAndBoxes(t *testing.T) {
	a := newTestArena(t, nil)
	if !a.Grid.IsSolid(0, -1, 0) || !a.Grid.IsSolid(-64, -1, 63) {
		t.Fatalf("floor cells missing")
	}
	if a.Grid.IsSolid(0, 0, 0) || a.Grid.IsSolid(64, -1, 0) {
		t.Fatalf("unexpected solid cell")
	}
	if !a.Grid.IsSolid(9, 0, 21) || !a.Grid.IsSolid(-11, 1, 31) {
		t.Fatalf("box cells missing")
	}
	if len(a.Targets.All()) != 3 {
		t.Fatalf("targets = %d, want 3", len(a.Targets.All()))
	}
}

func TestBody_FallsAndRestsOnFloor(t *testing.T) {
	a := newTestArena(t, nil)
	b := NewBody(a.Grid, physics.Vec3{Y: 3})

	for i := 0; i < 200; i++ {
		b.Integrate(1.0/50, nil)
	}
	approxEqual(t, b.Position().Y, 0, 1e-6, "feet y")
	approxEqual(t, b.Velocity().Y, 0, 0, "resting vy")
	if !a.Probe.Contact(b.Position(), 0.2, physics.LayerWorld) {
		t.Fatalf("probe does not see the floor under a resting body")
	}
}

func TestBody_WallStopsHorizontalVelocity(t *testing.T) {
	a := newTestArena(t, nil)
	b := NewBody(a.Grid, physics.Vec3{X: 9.5, Z: 19})
	b.SetVelocity(physics.Vec3{Z: 8})

	for i := 0; i < 50; i++ {
		b.Integrate(1.0/50, nil)
	}
	if z := b.Position().Z; z > 20-physics.CharacterHalfWidth+1e-9 {
		t.Fatalf("body z = %v, walked into the box", z)
	}
	approxEqual(t, b.Velocity().Z, 0, 0, "vz after wall")
}

func TestBody_ImpulseAndNonFiniteWrites(t *testing.T) {
	b := NewBody(NewGrid(), physics.Vec3{})
	b.AddImpulse(physics.Vec3{Y: 5})
	b.SetVelocity(physics.Vec3{X: math.NaN()})
	b.AddImpulse(physics.Vec3{Z: math.Inf(1)})
	if b.Velocity() != (physics.Vec3{Y: 5}) {
		t.Fatalf("velocity = %+v, want {0 5 0}", b.Velocity())
	}
}

func TestBody_SeparatesFromNeighbor(t *testing.T) {
	a := newTestArena(t, nil)
	b := NewBody(a.Grid, physics.Vec3{})
	other := physics.Neighbor{Position: physics.Vec3{X: 0.2}}

	b.Integrate(1.0/50, []physics.Neighbor{other})
	if b.Position().X >= 0 {
		t.Fatalf("body x = %v, want pushed away from neighbour", b.Position().X)
	}
}

func TestGroundProbe_Layers(t *testing.T) {
	a := newTestArena(t, nil)
	tests := []struct {
		name   string
		point  physics.Vec3
		layers physics.LayerMask
		want   bool
	}{
		{"on floor", physics.Vec3{Y: 0.1}, physics.LayerWorld, true},
		{"above floor", physics.Vec3{Y: 0.5}, physics.LayerWorld, false},
		{"floor ignored on target layer", physics.Vec3{Y: 0.1}, physics.LayerTargets, false},
		{"on pillar top", physics.Vec3{Z: 16, Y: 2.1}, physics.LayerTargets, true},
		{"pillar ignored on world layer", physics.Vec3{Z: 16, Y: 2.1}, physics.LayerWorld, false},
		{"non-finite point", physics.Vec3{Y: math.NaN()}, physics.LayerAll, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Probe.Contact(tt.point, 0.2, tt.layers); got != tt.want {
				t.Fatalf("Contact(%+v) = %t, want %t", tt.point, got, tt.want)
			}
		})
	}
}

func TestScanner_Raycast(t *testing.T) {
	a := newTestArena(t, nil)
	north, _ := a.Targets.Get("pillar-north")

	tests := []struct {
		name       string
		origin     physics.Vec3
		dir        physics.Vec3
		layers     physics.LayerMask
		wantHit    bool
		wantDist   float64
		wantNormal physics.Vec3
		wantTarget *Target
	}{
		{"pillar ahead", physics.Vec3{Y: 1}, physics.Forward, physics.LayerAll, true, 15.6, physics.Vec3{Z: -1}, north},
		{"pillar skipped on world layer", physics.Vec3{Y: 1}, physics.Forward, physics.LayerWorld, false, 0, physics.Vec3{}, nil},
		{"box face", physics.Vec3{X: 9, Y: 0.5}, physics.Forward, physics.LayerAll, true, 20, physics.Vec3{Z: -1}, nil},
		{"floor below", physics.Vec3{X: 3, Y: 1.5, Z: 3}, physics.Down, physics.LayerAll, true, 1.5, physics.Vec3{Y: 1}, nil},
		{"open sky", physics.Vec3{Y: 1}, physics.Up, physics.LayerAll, false, 0, physics.Vec3{}, nil},
		{"nothing behind", physics.Vec3{Y: 1}, physics.Back, physics.LayerAll, false, 0, physics.Vec3{}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := a.Scanner.Raycast(tt.origin, tt.dir, 200, tt.layers)
			if ok != tt.wantHit {
				t.Fatalf("hit = %t, want %t", ok, tt.wantHit)
			}
			if !ok {
				return
			}
			approxEqual(t, hit.Distance, tt.wantDist, 1e-9, "distance")
			if hit.Normal != tt.wantNormal {
				t.Fatalf("normal = %+v, want %+v", hit.Normal, tt.wantNormal)
			}
			if tt.wantTarget == nil {
				if hit.Target != nil || hit.Body != nil {
					t.Fatalf("world hit carried a target")
				}
				return
			}
			if hit.Target != weapon.Damageable(tt.wantTarget) {
				t.Fatalf("target = %v, want %s", hit.Target, tt.wantTarget.Name)
			}
		})
	}
}

func TestWeaponShotDamagesPillar(t *testing.T) {
	var damaged []string
	a := newTestArena(t, func(tg *Target, amount float64, hit weapon.HitContext) {
		damaged = append(damaged, tg.Name)
	})
	camera := cameraRay{weapon.Ray{Origin: physics.Vec3{Y: 1}, Direction: physics.Forward}}
	gun := weapon.NewController(weapon.DefaultParams(), weapon.Collaborators{
		Scanner: a.Scanner,
		Camera:  camera,
		Decals:  a.Decals,
	}, nil)

	shot := gun.Fire()
	if shot.Hit == nil {
		t.Fatalf("shot missed the pillar")
	}
	north, _ := a.Targets.Get("pillar-north")
	approxEqual(t, north.Health, 90, 0, "health")
	approxEqual(t, north.Knockback.Z, 4, 1e-12, "knockback")
	if len(damaged) != 1 || damaged[0] != "pillar-north" {
		t.Fatalf("damage callbacks = %v", damaged)
	}
	if a.Decals.Total() != 1 {
		t.Fatalf("decals = %d, want 1", a.Decals.Total())
	}
}

type cameraRay struct{ ray weapon.Ray }

func (c cameraRay) CenterRay() weapon.Ray { return c.ray }

func TestTarget_DestroyedTargetsStopBlocking(t *testing.T) {
	a := newTestArena(t, nil)
	north, _ := a.Targets.Get("pillar-north")
	north.ApplyDamage(1000, weapon.HitContext{})
	if north.Alive() || north.Health != 0 {
		t.Fatalf("health = %v, want 0", north.Health)
	}
	if _, ok := a.Scanner.Raycast(physics.Vec3{Y: 1}, physics.Forward, 200, physics.LayerTargets); ok {
		t.Fatalf("destroyed pillar still blocks shots")
	}
}

func TestDecals_Expire(t *testing.T) {
	d := NewDecals()
	d.Advance(1)
	d.SpawnDecal(weapon.Decal{Lifetime: 2})
	d.SpawnDecal(weapon.Decal{Lifetime: 0})

	d.Advance(2.5)
	if len(d.Active()) != 2 {
		t.Fatalf("active = %d, want 2", len(d.Active()))
	}
	d.Advance(3.5)
	if len(d.Active()) != 1 {
		t.Fatalf("active = %d, want 1 (permanent decal)", len(d.Active()))
	}
	if d.Total() != 2 {
		t.Fatalf("total = %d, want 2", d.Total())
	}
}

func TestDecals_CapDropsOldest(t *testing.T) {
	d := NewDecals()
	for i := 0; i < MaxDecals+10; i++ {
		d.SpawnDecal(weapon.Decal{Roll: float64(i)})
	}
	active := d.Active()
	if len(active) != MaxDecals || active[0].Roll != 10 {
		t.Fatalf("active = %d first roll %v", len(active), active[0].Roll)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
		is      error
	}{
		{"default", func(c *Config) {}, false, nil},
		{"no floor", func(c *Config) { c.Floor.HalfSize = 0 }, true, nil},
		{"inverted box", func(c *Config) { c.Boxes = []Box{{Min: Cell{X: 2}, Max: Cell{X: 1}}} }, true, nil},
		{"duplicate target", func(c *Config) { c.Targets = append(c.Targets, c.Targets[0]) }, true, nil},
		{"zero health", func(c *Config) { c.Targets[0].Health = 0 }, true, nil},
		{"target off floor", func(c *Config) { c.Targets[0].Position.X = 70 }, true, ErrOutOfBounds},
		{"spawn off floor", func(c *Config) { c.Spawn.Z = -65 }, true, ErrOutOfBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %t", err, tt.wantErr)
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.is)
			}
		})
	}
}
