package arena

import "sync"

// Cell addresses one unit voxel by its minimum corner.
type Cell struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	Z int `yaml:"z"`
}

// Grid is a sparse set of solid unit voxels.
type Grid struct {
	mu    sync.RWMutex
	solid map[Cell]struct{}
}

func NewGrid() *Grid {
	return &Grid{solid: make(map[Cell]struct{})}
}

func (g *Grid) IsSolid(x, y, z int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.solid[Cell{X: x, Y: y, Z: z}]
	return ok
}

func (g *Grid) Set(c Cell, solid bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if solid {
		g.solid[c] = struct{}{}
	} else {
		delete(g.solid, c)
	}
}

// Fill marks every cell of the inclusive box min..max solid.
func (g *Grid) Fill(min, max Cell) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for x := min.X; x <= max.X; x++ {
		for y := min.Y; y <= max.Y; y++ {
			for z := min.Z; z <= max.Z; z++ {
				g.solid[Cell{X: x, Y: y, Z: z}] = struct{}{}
			}
		}
	}
}

func (g *Grid) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.solid)
}
