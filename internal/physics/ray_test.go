package physics

import "testing"

func TestAABB_IntersectRay(t *testing.T) {
	box := AABB{Max: Vec3{X: 1, Y: 1, Z: 1}}
	tests := []struct {
		name       string
		origin     Vec3
		dir        Vec3
		maxDist    float64
		wantHit    bool
		wantDist   float64
		wantNormal Vec3
	}{
		{"front face", Vec3{X: 0.5, Y: 0.5, Z: -2}, Forward, 10, true, 2, Vec3{Z: -1}},
		{"side face", Vec3{X: -3, Y: 0.5, Z: 0.5}, Right, 10, true, 3, Vec3{X: -1}},
		{"top face", Vec3{X: 0.5, Y: 4, Z: 0.5}, Down, 10, true, 3, Vec3{Y: 1}},
		{"parallel miss", Vec3{X: 2, Y: 0.5, Z: -2}, Forward, 10, false, 0, Vec3{}},
		{"pointing away", Vec3{X: 0.5, Y: 0.5, Z: -2}, Back, 10, false, 0, Vec3{}},
		{"too short", Vec3{X: 0.5, Y: 0.5, Z: -2}, Forward, 1, false, 0, Vec3{}},
		{"starts inside", Vec3{X: 0.5, Y: 0.5, Z: 0.5}, Forward, 10, false, 0, Vec3{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := box.IntersectRay(tt.origin, tt.dir, tt.maxDist)
			if ok != tt.wantHit {
				t.Fatalf("hit = %t, want %t", ok, tt.wantHit)
			}
			if !ok {
				return
			}
			approxEqual(t, hit.Distance, tt.wantDist, 1e-12, "distance")
			if hit.Normal != tt.wantNormal {
				t.Fatalf("normal = %+v, want %+v", hit.Normal, tt.wantNormal)
			}
			want := tt.origin.Add(tt.dir.Scale(tt.wantDist))
			if hit.Point.Sub(want).Len() > 1e-12 {
				t.Fatalf("point = %+v, want %+v", hit.Point, want)
			}
		})
	}
}

func TestFirstSolidOnRay(t *testing.T) {
	store := newMockBlockStore()
	store.setSolid(2, 0, 0)
	store.setSolid(5, 0, 0)

	hit, ok := FirstSolidOnRay(Vec3{X: 0.5, Y: 0.5, Z: 0.5}, Right, 20, store)
	if !ok {
		t.Fatalf("expected a hit")
	}
	approxEqual(t, hit.Distance, 1.5, 1e-12, "distance")
	if hit.Normal != (Vec3{X: -1}) {
		t.Fatalf("normal = %+v, want -X", hit.Normal)
	}

	if _, ok := FirstSolidOnRay(Vec3{X: 0.5, Y: 0.5, Z: 0.5}, Right, 1, store); ok {
		t.Fatalf("hit beyond max distance")
	}
	if _, ok := FirstSolidOnRay(Vec3{X: 0.5, Y: 0.5, Z: 0.5}, Back, 20, store); ok {
		t.Fatalf("hit behind the origin")
	}
	if _, ok := FirstSolidOnRay(Vec3{}, Right, 20, nil); ok {
		t.Fatalf("hit with no store")
	}
}
