package arena

import (
	"log/slog"
	"math"
	"sort"

	"github.com/Versifine/strafe/internal/physics"
	"github.com/Versifine/strafe/internal/weapon"
	"github.com/solarlune/resolv"
)

const (
	tagTarget = "target"
	tagProbe  = "probe"

	// spaceScale is resolv units per metre; resolv rounds bounds to whole
	// units.
	spaceScale = 16
	// targetCellSize is the broadphase cell edge in resolv units (2 m).
	targetCellSize = 2 * spaceScale
	// probeMargin pads a query footprint so edge cells are never missed.
	probeMargin = 1.0
)

// DamageFunc observes every hit a target takes.
type DamageFunc func(t *Target, amount float64, hit weapon.HitContext)

// Target is a static pillar that takes damage and records knockback.
type Target struct {
	Name      string
	Position  physics.Vec3
	HalfWidth float64
	Height    float64
	MaxHealth float64

	Health    float64
	Hits      int
	Knockback physics.Vec3

	obj      *resolv.Object
	onDamage DamageFunc
}

func (t *Target) Box() physics.AABB {
	return physics.BoxAt(t.Position, t.HalfWidth, t.Height)
}

func (t *Target) Alive() bool {
	return t.Health > 0
}

// ApplyDamage implements weapon.Damageable. Health bottoms out at zero.
func (t *Target) ApplyDamage(amount float64, hit weapon.HitContext) {
	if !(amount > 0) {
		return
	}
	t.Health = math.Max(0, t.Health-amount)
	t.Hits++
	if t.onDamage != nil {
		t.onDamage(t, amount, hit)
	}
	if !t.Alive() {
		slog.Debug("target destroyed", "target", t.Name, "hits", t.Hits)
	}
}

// AddImpulseAtPoint implements weapon.ImpulseReceiver. Pillars are anchored;
// the impulse is only accumulated.
func (t *Target) AddImpulseAtPoint(impulse, _ physics.Vec3) {
	t.Knockback = t.Knockback.Add(impulse)
}

// Targets indexes the pillars in the X/Z plane with a resolv space so a shot
// only tests the pillars its path crosses.
type Targets struct {
	space  *resolv.Space
	offset float64
	list   []*Target
	byName map[string]*Target
}

// NewTargets builds the index for a floor of the given half size.
func NewTargets(specs []TargetSpec, halfSize int, onDamage DamageFunc) *Targets {
	size := 2 * halfSize * spaceScale
	ts := &Targets{
		space:  resolv.NewSpace(size, size, targetCellSize, targetCellSize),
		offset: float64(halfSize),
		byName: make(map[string]*Target, len(specs)),
	}
	for _, spec := range specs {
		t := &Target{
			Name:      spec.Name,
			Position:  spec.Position,
			HalfWidth: spec.HalfWidth,
			Height:    spec.Height,
			MaxHealth: spec.Health,
			Health:    spec.Health,
			onDamage:  onDamage,
		}
		x, y := ts.toSpace(spec.Position.X-spec.HalfWidth, spec.Position.Z-spec.HalfWidth)
		w := 2 * spec.HalfWidth * spaceScale
		t.obj = resolv.NewObject(x, y, w, w, tagTarget)
		t.obj.SetShape(resolv.NewRectangle(0, 0, w, w))
		t.obj.Data = t
		ts.space.Add(t.obj)

		ts.list = append(ts.list, t)
		ts.byName[t.Name] = t
	}
	return ts
}

func (ts *Targets) toSpace(x, z float64) (float64, float64) {
	return (x + ts.offset) * spaceScale, (z + ts.offset) * spaceScale
}

func (ts *Targets) All() []*Target {
	return ts.list
}

func (ts *Targets) Get(name string) (*Target, bool) {
	t, ok := ts.byName[name]
	return t, ok
}

// Along returns the live pillars whose broadphase cells overlap the X/Z
// footprint of the segment from a to b.
func (ts *Targets) Along(a, b physics.Vec3) []*Target {
	minX, maxX := math.Min(a.X, b.X)-probeMargin, math.Max(a.X, b.X)+probeMargin
	minZ, maxZ := math.Min(a.Z, b.Z)-probeMargin, math.Max(a.Z, b.Z)+probeMargin
	x, y := ts.toSpace(minX, minZ)

	probe := resolv.NewObject(x, y, (maxX-minX)*spaceScale, (maxZ-minZ)*spaceScale, tagProbe)
	ts.space.Add(probe)
	defer ts.space.Remove(probe)

	col := probe.Check(0, 0, tagTarget)
	if col == nil {
		return nil
	}
	var out []*Target
	for _, obj := range col.ObjectsByTags(tagTarget) {
		if t, ok := obj.Data.(*Target); ok && t.Alive() {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Overlapping returns the live pillars whose box intersects box.
func (ts *Targets) Overlapping(box physics.AABB) []*Target {
	var out []*Target
	for _, t := range ts.Along(box.Min, box.Max) {
		if t.Box().Intersects(box) {
			out = append(out, t)
		}
	}
	return out
}
