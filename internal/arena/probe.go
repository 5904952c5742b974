package arena

import "github.com/Versifine/strafe/internal/physics"

// GroundProbe tests a sphere against solid voxels and, on the target layer,
// the tops and sides of the pillars.
type GroundProbe struct {
	grid    physics.BlockStore
	targets *Targets
}

func NewGroundProbe(grid physics.BlockStore, targets *Targets) *GroundProbe {
	return &GroundProbe{grid: grid, targets: targets}
}

func (p *GroundProbe) Contact(point physics.Vec3, radius float64, layers physics.LayerMask) bool {
	if !point.IsFinite() || !(radius >= 0) {
		return false
	}
	if layers.Has(physics.LayerWorld) && physics.SphereTouchesBlock(point, radius, p.grid) {
		return true
	}
	if !layers.Has(physics.LayerTargets) || p.targets == nil {
		return false
	}
	reach := physics.Vec3{X: radius, Y: radius, Z: radius}
	sphereBox := physics.AABB{Min: point.Sub(reach), Max: point.Add(reach)}
	for _, t := range p.targets.Overlapping(sphereBox) {
		if t.Box().ClosestPoint(point).Sub(point).LenSq() <= radius*radius {
			return true
		}
	}
	return false
}
