package physics

import (
	"math"
	"testing"
)

type mockBlockStore struct {
	solid map[[3]int]bool
}

func newMockBlockStore() *mockBlockStore {
	return &mockBlockStore{solid: make(map[[3]int]bool)}
}

func (m *mockBlockStore) IsSolid(x, y, z int) bool {
	return m.solid[[3]int{x, y, z}]
}

func (m *mockBlockStore) setSolid(x, y, z int) {
	m.solid[[3]int{x, y, z}] = true
}

func addFloor(store *mockBlockStore, minX, maxX, minZ, maxZ, y int) {
	for x := minX; x <= maxX; x++ {
		for z := minZ; z <= maxZ; z++ {
			store.setSolid(x, y, z)
		}
	}
}

func approxEqual(t *testing.T, got, want, tol float64, field string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("%s = %.8f, want %.8f (tol=%.8f)", field, got, want, tol)
	}
}

func TestResolveMovement_FallStopsOnFloor(t *testing.T) {
	store := newMockBlockStore()
	addFloor(store, -2, 2, -2, 2, -1)

	pos, applied := ResolveMovement(Vec3{X: 0.5, Y: 0.3, Z: 0.5}, Vec3{Y: -1}, CharacterHalfWidth, CharacterHeight, store)

	approxEqual(t, pos.Y, 0, 1e-9, "position.y")
	approxEqual(t, applied.Y, 0, 1e-9, "applied.y")
}

func TestResolveMovement_WallBlocksHorizontal(t *testing.T) {
	store := newMockBlockStore()
	addFloor(store, -2, 2, -2, 2, -1)
	store.setSolid(1, 0, 0)
	store.setSolid(1, 1, 0)

	pos, applied := ResolveMovement(Vec3{X: 0.5, Y: 0, Z: 0.5}, Vec3{X: 0.5}, CharacterHalfWidth, CharacterHeight, store)

	approxEqual(t, pos.X, 0.7, 1e-9, "position.x")
	approxEqual(t, applied.X, 0, 1e-9, "applied.x")
	approxEqual(t, pos.Y, 0, 1e-9, "position.y")
}

func TestResolveMovement_FreeSpaceAppliesFullDelta(t *testing.T) {
	delta := Vec3{X: 0.25, Y: -0.1, Z: -0.4}
	pos, applied := ResolveMovement(Vec3{Y: 5}, delta, CharacterHalfWidth, CharacterHeight, newMockBlockStore())

	approxEqual(t, pos.X, 0.25, 1e-12, "position.x")
	approxEqual(t, pos.Y, 4.9, 1e-12, "position.y")
	approxEqual(t, pos.Z, -0.4, 1e-12, "position.z")
	if applied != delta {
		t.Fatalf("applied = %+v, want %+v", applied, delta)
	}
}

func TestSphereTouchesBlock(t *testing.T) {
	store := newMockBlockStore()
	addFloor(store, -2, 2, -2, 2, -1)

	tests := []struct {
		name   string
		center Vec3
		radius float64
		want   bool
	}{
		{"resting on floor", Vec3{X: 0.5, Y: 0, Z: 0.5}, 0.2, true},
		{"just inside radius", Vec3{X: 0.5, Y: 0.19, Z: 0.5}, 0.2, true},
		{"above radius", Vec3{X: 0.5, Y: 0.25, Z: 0.5}, 0.2, false},
		{"off the edge", Vec3{X: 3.5, Y: 0, Z: 0.5}, 0.2, false},
		{"negative radius", Vec3{X: 0.5, Y: 0, Z: 0.5}, -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SphereTouchesBlock(tt.center, tt.radius, store); got != tt.want {
				t.Fatalf("SphereTouchesBlock(%+v, %.2f) = %t, want %t", tt.center, tt.radius, got, tt.want)
			}
		})
	}
}

func TestSeparate_PushesAwayFromNeighbor(t *testing.T) {
	store := newMockBlockStore()
	addFloor(store, -2, 2, -2, 2, -1)

	pos := Separate(Vec3{X: 0.5, Z: 0.5}, CharacterHalfWidth, CharacterHeight, store, []Neighbor{
		{Position: Vec3{X: 0.62, Z: 0.5}},
	})

	if pos.X >= 0.5 {
		t.Fatalf("position.x = %.6f, want < 0.50 due to push", pos.X)
	}
	approxEqual(t, pos.Y, 0, 1e-9, "position.y")
}

func TestRotateTowardsXZ(t *testing.T) {
	from := Vec3{X: 1}
	to := Vec3{Z: 1}

	got := RotateTowardsXZ(from, to, 0.25)
	approxEqual(t, AngleBetween(from, got), 0.25, 1e-9, "turned angle")
	approxEqual(t, got.Len(), 1, 1e-12, "length")

	got = RotateTowardsXZ(from, to, 10)
	approxEqual(t, got.X, 0, 1e-12, "x")
	approxEqual(t, got.Z, 1, 1e-12, "z")
}

func TestYawBasis(t *testing.T) {
	fwd, right := YawBasis(0)
	if fwd != (Vec3{Z: 1}) || right != (Vec3{X: 1}) {
		t.Fatalf("yaw 0 basis = %+v %+v", fwd, right)
	}
	fwd, right = YawBasis(90)
	approxEqual(t, fwd.X, 1, 1e-12, "fwd.x")
	approxEqual(t, right.Z, -1, 1e-12, "right.z")
}

func TestWrapAngle(t *testing.T) {
	approxEqual(t, WrapAngle(3*math.Pi), math.Pi, 1e-12, "3pi")
	approxEqual(t, WrapAngle(-3*math.Pi/2), math.Pi/2, 1e-12, "-3pi/2")
	approxEqual(t, WrapAngle(0.5), 0.5, 1e-12, "0.5")
}
