package physics

import "math"

// RayStep is the sampling distance of FirstSolidOnRay.
const RayStep = 0.05

// RayHit is where a ray entered a box.
type RayHit struct {
	Distance float64
	Point    Vec3
	Normal   Vec3
}

// IntersectRay clips a ray against the box with the slab method. dir must be
// normalized. A ray starting inside the box reports no hit.
func (b AABB) IntersectRay(origin, dir Vec3, maxDist float64) (RayHit, bool) {
	tMin, tMax := 0.0, maxDist
	var normal Vec3
	for a := axisX; a <= axisZ; a++ {
		o, d := component(origin, a), component(dir, a)
		lo, hi := component(b.Min, a), component(b.Max, a)
		if math.Abs(d) < NormalizeEpsilon {
			if o < lo || o > hi {
				return RayHit{}, false
			}
			continue
		}
		t1, t2 := (lo-o)/d, (hi-o)/d
		sign := -1.0
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1
		}
		if t1 > tMin {
			tMin = t1
			normal = Vec3{}
			setComponent(&normal, a, sign)
		}
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return RayHit{}, false
		}
	}
	if normal == (Vec3{}) {
		return RayHit{}, false
	}
	return RayHit{Distance: tMin, Point: origin.Add(dir.Scale(tMin)), Normal: normal}, true
}

// FirstSolidOnRay marches a normalized ray through the grid and returns the
// entry into the first solid block within maxDist.
func FirstSolidOnRay(origin, dir Vec3, maxDist float64, store BlockStore) (RayHit, bool) {
	if store == nil || !(maxDist > 0) {
		return RayHit{}, false
	}
	prev := [3]int{
		int(math.Floor(origin.X)),
		int(math.Floor(origin.Y)),
		int(math.Floor(origin.Z)),
	}

	for dist := RayStep; dist <= maxDist+RayStep; dist += RayStep {
		p := origin.Add(dir.Scale(math.Min(dist, maxDist)))
		cell := [3]int{int(math.Floor(p.X)), int(math.Floor(p.Y)), int(math.Floor(p.Z))}
		if cell == prev {
			continue
		}
		prev = cell
		if !store.IsSolid(cell[0], cell[1], cell[2]) {
			continue
		}
		if hit, ok := blockBox(cell[0], cell[1], cell[2]).IntersectRay(origin, dir, maxDist); ok {
			return hit, true
		}
	}
	return RayHit{}, false
}
