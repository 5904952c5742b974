package arena

import (
	"github.com/Versifine/strafe/internal/physics"
	"github.com/Versifine/strafe/internal/weapon"
)

// Scanner answers weapon hit-scans against the voxel course and the target
// pillars, whichever is nearer.
type Scanner struct {
	grid    physics.BlockStore
	targets *Targets
}

func NewScanner(grid physics.BlockStore, targets *Targets) *Scanner {
	return &Scanner{grid: grid, targets: targets}
}

func (s *Scanner) Raycast(origin, dir physics.Vec3, maxRange float64, layers physics.LayerMask) (weapon.Hit, bool) {
	dir = dir.Normalized()
	if dir == (physics.Vec3{}) || !(maxRange > 0) {
		return weapon.Hit{}, false
	}

	var (
		best    physics.RayHit
		target  *Target
		hasBest bool
	)
	if layers.Has(physics.LayerWorld) {
		best, hasBest = physics.FirstSolidOnRay(origin, dir, maxRange, s.grid)
	}
	if layers.Has(physics.LayerTargets) && s.targets != nil {
		end := origin.Add(dir.Scale(maxRange))
		for _, t := range s.targets.Along(origin, end) {
			hit, ok := t.Box().IntersectRay(origin, dir, maxRange)
			if !ok || (hasBest && hit.Distance >= best.Distance) {
				continue
			}
			best, target, hasBest = hit, t, true
		}
	}
	if !hasBest {
		return weapon.Hit{}, false
	}

	out := weapon.Hit{Point: best.Point, Normal: best.Normal, Distance: best.Distance}
	if target != nil {
		out.Body = target
		out.Target = target
	}
	return out, true
}
