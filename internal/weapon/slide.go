package weapon

import (
	"github.com/Versifine/strafe/internal/physics"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Slide animates the pistol slide: back over BackTime, home over ReturnTime,
// both eased in and out. Between shots it relaxes toward rest.
type Slide struct {
	params SlideParams
	seq    *gween.Sequence
	travel float64
}

func NewSlide(params SlideParams) *Slide {
	return &Slide{params: params}
}

// Trigger restarts the back-and-return cycle.
func (s *Slide) Trigger() {
	if !s.params.Enabled {
		return
	}
	seq := gween.NewSequence()
	seq.Add(
		gween.New(0, 1, float32(s.params.BackTime), ease.InOutQuad),
		gween.New(1, 0, float32(s.params.ReturnTime), ease.InOutQuad),
	)
	s.seq = seq
}

func (s *Slide) Update(dt float64) {
	if s.seq == nil {
		s.travel = physics.Lerp(s.travel, 0, physics.Clamp01(dt*s.params.RelaxRate))
		return
	}
	v, _, done := s.seq.Update(float32(dt))
	s.travel = physics.Clamp01(float64(v))
	if done {
		s.seq = nil
		s.travel = 0
	}
}

func (s *Slide) Playing() bool {
	return s.seq != nil
}

// Offset is the slide displacement from its rest position.
func (s *Slide) Offset() physics.Vec3 {
	return s.params.Axis.Normalized().Scale(s.params.Travel * s.travel)
}
