package physics

import "math"

type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// Vec2 is a planar value, used for stick axes (X strafe, Y forward) and
// yaw/pitch pairs.
type Vec2 struct {
	X float64
	Y float64
}

var (
	Up      = Vec3{Y: 1}
	Down    = Vec3{Y: -1}
	Forward = Vec3{Z: 1}
	Back    = Vec3{Z: -1}
	Right   = Vec3{X: 1}
)

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) LenSq() float64 {
	return v.Dot(v)
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// Horizontal drops the vertical component.
func (v Vec3) Horizontal() Vec3 {
	return Vec3{X: v.X, Z: v.Z}
}

func (v Vec3) WithY(y float64) Vec3 {
	v.Y = y
	return v
}

// Normalized returns the unit vector, or zero when the length is below
// NormalizeEpsilon.
func (v Vec3) Normalized() Vec3 {
	l := v.Len()
	if l < NormalizeEpsilon {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

func (v Vec3) IsFinite() bool {
	return IsFinite(v.X) && IsFinite(v.Y) && IsFinite(v.Z)
}

func Lerp3(a, b Vec3, t float64) Vec3 {
	return a.Add(b.Sub(a).Scale(t))
}

func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// YawBasis returns the horizontal forward and right axes for a yaw in
// degrees. Yaw 0 faces +Z, positive yaw turns toward +X.
func YawBasis(yawDeg float64) (forward, right Vec3) {
	rad := yawDeg * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)
	forward = Vec3{X: sin, Z: cos}
	right = Vec3{X: cos, Z: -sin}
	return forward, right
}

// ToLocal expresses a world vector in the yaw frame (X right, Y up, Z forward).
func ToLocal(v Vec3, yawDeg float64) Vec3 {
	fwd, right := YawBasis(yawDeg)
	return Vec3{X: v.Dot(right), Y: v.Y, Z: v.Dot(fwd)}
}

// RotateTowardsXZ turns the horizontal direction from toward to by at most
// maxRadians, keeping unit length. Both inputs are expected to be horizontal
// and normalized. Exactly opposite directions turn counter-clockwise.
func RotateTowardsXZ(from, to Vec3, maxRadians float64) Vec3 {
	if maxRadians < 0 {
		maxRadians = 0
	}
	a0 := math.Atan2(from.Z, from.X)
	a1 := math.Atan2(to.Z, to.X)
	delta := WrapAngle(a1 - a0)
	if delta > maxRadians {
		delta = maxRadians
	} else if delta < -maxRadians {
		delta = -maxRadians
	}
	a := a0 + delta
	return Vec3{X: math.Cos(a), Z: math.Sin(a)}
}

// AngleBetween returns the unsigned angle in radians between two non-zero
// vectors.
func AngleBetween(a, b Vec3) float64 {
	la, lb := a.Len(), b.Len()
	if la < NormalizeEpsilon || lb < NormalizeEpsilon {
		return 0
	}
	c := a.Dot(b) / (la * lb)
	return math.Acos(Clamp(c, -1, 1))
}

// WrapAngle maps radians into (-pi, pi].
func WrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// InverseLerp is the clamped position of v between a and b.
func InverseLerp(a, b, v float64) float64 {
	if a == b {
		return 0
	}
	return Clamp01((v - a) / (b - a))
}

// SmoothFactor is the frame-rate independent blend weight for exponential
// smoothing with the given sharpness.
func SmoothFactor(sharpness, dt float64) float64 {
	if sharpness <= 0 || dt <= 0 {
		return 0
	}
	return 1 - math.Exp(-sharpness*dt)
}

// IsFinite reports whether v is neither NaN nor an infinity.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// NonNegative maps NaN, negative values and +Inf to 0.
func NonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 || math.IsInf(v, 1) {
		return 0
	}
	return v
}
