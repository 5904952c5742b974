package physics

import "math"

const (
	separationMaxPerNeighbor = 0.08
	separationMaxPerStep     = 0.12
	separationStrength       = 0.7
)

// Neighbor is another upright character box that pushes back on overlap.
type Neighbor struct {
	Position  Vec3
	HalfWidth float64
	Height    float64
}

// Separate nudges a character out of overlapping neighbours in the
// horizontal plane. The push is capped per neighbour and per call, and then
// resolved against solid blocks like any other movement.
func Separate(pos Vec3, halfWidth, height float64, store BlockStore, neighbors []Neighbor) Vec3 {
	if len(neighbors) == 0 {
		return pos
	}

	self := BoxAt(pos, halfWidth, height)
	var push Vec3
	for _, n := range neighbors {
		hw, h := n.HalfWidth, n.Height
		if hw <= 0 {
			hw = CharacterHalfWidth
		}
		if h <= 0 {
			h = CharacterHeight
		}
		other := BoxAt(n.Position, hw, h)
		if self.Max.Y <= other.Min.Y || self.Min.Y >= other.Max.Y {
			continue
		}

		away := pos.Sub(n.Position).Horizontal()
		dist := away.Len()
		minDist := halfWidth + hw
		if dist >= minDist {
			continue
		}
		if dist < CollisionAxisTolerance {
			away = Right
			dist = 1
		}

		mag := math.Min((minDist-dist)*separationStrength, separationMaxPerNeighbor)
		push = push.Add(away.Scale(mag / dist))
	}

	length := push.Len()
	if length <= CollisionAxisTolerance {
		return pos
	}
	if length > separationMaxPerStep {
		push = push.Scale(separationMaxPerStep / length)
	}

	newPos, _ := ResolveMovement(pos, push, halfWidth, height, store)
	return newPos
}
