package arena

import (
	"sync"

	"github.com/Versifine/strafe/internal/weapon"
)

// MaxDecals caps how many bullet holes stay alive; the oldest goes first.
const MaxDecals = 256

type placedDecal struct {
	weapon.Decal
	expires float64
}

// Decals keeps bullet holes until their lifetime runs out.
type Decals struct {
	mu     sync.Mutex
	now    float64
	active []placedDecal
	total  int
}

func NewDecals() *Decals {
	return &Decals{}
}

// SpawnDecal implements weapon.DecalSpawner.
func (d *Decals) SpawnDecal(decal weapon.Decal) {
	d.mu.Lock()
	defer d.mu.Unlock()
	expires := -1.0
	if decal.Lifetime > 0 {
		expires = d.now + decal.Lifetime
	}
	if len(d.active) >= MaxDecals {
		d.active = d.active[1:]
	}
	d.active = append(d.active, placedDecal{Decal: decal, expires: expires})
	d.total++
}

// Advance moves the clock to now and drops expired decals.
func (d *Decals) Advance(now float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.now = now
	kept := d.active[:0]
	for _, pd := range d.active {
		if pd.expires < 0 || pd.expires > now {
			kept = append(kept, pd)
		}
	}
	d.active = kept
}

func (d *Decals) Active() []weapon.Decal {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]weapon.Decal, len(d.active))
	for i, pd := range d.active {
		out[i] = pd.Decal
	}
	return out
}

// Total counts every decal ever spawned.
func (d *Decals) Total() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.total
}
