package physics

import "math"

type BlockStore interface {
	IsSolid(x, y, z int) bool
}

type AABB struct {
	Min Vec3
	Max Vec3
}

// BoxAt builds the upright box of a character whose feet are at pos.
func BoxAt(pos Vec3, halfWidth, height float64) AABB {
	return AABB{
		Min: Vec3{X: pos.X - halfWidth, Y: pos.Y, Z: pos.Z - halfWidth},
		Max: Vec3{X: pos.X + halfWidth, Y: pos.Y + height, Z: pos.Z + halfWidth},
	}
}

func (b AABB) Offset(d Vec3) AABB {
	return AABB{Min: b.Min.Add(d), Max: b.Max.Add(d)}
}

func (b AABB) Intersects(o AABB) bool {
	return b.Min.X < o.Max.X && b.Max.X > o.Min.X &&
		b.Min.Y < o.Max.Y && b.Max.Y > o.Min.Y &&
		b.Min.Z < o.Max.Z && b.Max.Z > o.Min.Z
}

// ClosestPoint clamps p into the box.
func (b AABB) ClosestPoint(p Vec3) Vec3 {
	return Vec3{
		X: Clamp(p.X, b.Min.X, b.Max.X),
		Y: Clamp(p.Y, b.Min.Y, b.Max.Y),
		Z: Clamp(p.Z, b.Min.Z, b.Max.Z),
	}
}

func blockBox(x, y, z int) AABB {
	return AABB{
		Min: Vec3{X: float64(x), Y: float64(y), Z: float64(z)},
		Max: Vec3{X: float64(x + 1), Y: float64(y + 1), Z: float64(z + 1)},
	}
}

func CollidesWithBlock(box AABB, store BlockStore) bool {
	if store == nil {
		return false
	}
	for y := floorForMin(box.Min.Y); y <= floorForMax(box.Max.Y); y++ {
		for x := floorForMin(box.Min.X); x <= floorForMax(box.Max.X); x++ {
			for z := floorForMin(box.Min.Z); z <= floorForMax(box.Max.Z); z++ {
				if store.IsSolid(x, y, z) && box.Intersects(blockBox(x, y, z)) {
					return true
				}
			}
		}
	}
	return false
}

// SphereTouchesBlock reports whether any solid block lies within radius of
// center. Touching counts.
func SphereTouchesBlock(center Vec3, radius float64, store BlockStore) bool {
	if store == nil || radius < 0 {
		return false
	}
	r2 := radius * radius
	for y := int(math.Floor(center.Y - radius)); y <= int(math.Floor(center.Y+radius)); y++ {
		for x := int(math.Floor(center.X - radius)); x <= int(math.Floor(center.X+radius)); x++ {
			for z := int(math.Floor(center.Z - radius)); z <= int(math.Floor(center.Z+radius)); z++ {
				if !store.IsSolid(x, y, z) {
					continue
				}
				closest := blockBox(x, y, z).ClosestPoint(center)
				if closest.Sub(center).LenSq() <= r2 {
					return true
				}
			}
		}
	}
	return false
}

type axis int

const (
	axisX axis = iota
	axisY
	axisZ
)

func component(v Vec3, a axis) float64 {
	switch a {
	case axisX:
		return v.X
	case axisY:
		return v.Y
	default:
		return v.Z
	}
}

func setComponent(v *Vec3, a axis, value float64) {
	switch a {
	case axisX:
		v.X = value
	case axisY:
		v.Y = value
	default:
		v.Z = value
	}
}

// ResolveMovement moves a character box by delta one axis at a time (Y, X,
// Z) and stops each axis at the first solid block. It returns the new feet
// position and the delta that was actually applied; a blocked axis reports 0.
func ResolveMovement(pos, delta Vec3, halfWidth, height float64, store BlockStore) (Vec3, Vec3) {
	newPos := pos
	applied := delta
	for _, a := range []axis{axisY, axisX, axisZ} {
		want := component(delta, a)
		got := resolveAxis(newPos, a, want, halfWidth, height, store)
		setComponent(&newPos, a, component(newPos, a)+got)
		if !nearlyEqual(got, want) {
			setComponent(&applied, a, 0)
		}
	}
	return newPos, applied
}

func resolveAxis(pos Vec3, a axis, delta, halfWidth, height float64, store BlockStore) float64 {
	if store == nil || nearlyZero(delta) {
		return delta
	}

	box := BoxAt(pos, halfWidth, height)
	allowed := delta

	// Sweep range on the moving axis, full extent on the other two.
	lo := [3]int{floorForMin(box.Min.X), floorForMin(box.Min.Y), floorForMin(box.Min.Z)}
	hi := [3]int{floorForMax(box.Max.X), floorForMax(box.Max.Y), floorForMax(box.Max.Z)}
	minEdge := component(box.Min, a)
	maxEdge := component(box.Max, a)
	if delta > 0 {
		lo[a] = int(math.Floor(maxEdge))
		hi[a] = int(math.Floor(maxEdge + delta))
	} else {
		lo[a] = int(math.Floor(minEdge + delta))
		hi[a] = int(math.Floor(minEdge - CollisionAxisTolerance))
	}

	for x := lo[axisX]; x <= hi[axisX]; x++ {
		for y := lo[axisY]; y <= hi[axisY]; y++ {
			for z := lo[axisZ]; z <= hi[axisZ]; z++ {
				if !store.IsSolid(x, y, z) {
					continue
				}
				cell := [3]int{x, y, z}[a]
				if delta > 0 {
					if candidate := float64(cell) - maxEdge; candidate < allowed {
						allowed = candidate
					}
				} else {
					if candidate := float64(cell+1) - minEdge; candidate > allowed {
						allowed = candidate
					}
				}
			}
		}
	}
	return allowed
}

func floorForMin(v float64) int {
	return int(math.Floor(v + CollisionAxisTolerance))
}

func floorForMax(v float64) int {
	return int(math.Floor(v - CollisionAxisTolerance))
}

func nearlyZero(v float64) bool {
	return math.Abs(v) <= CollisionAxisTolerance
}

func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) <= CollisionAxisTolerance
}
