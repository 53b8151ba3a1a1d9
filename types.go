package snaplist

import "math"

// Vec2 represents a 2D vector for positions, sizes and velocities.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// On returns the component of v on axis a.
func (v Vec2) On(a Axis) float32 {
	if a == AxisX {
		return v.X
	}
	return v.Y
}

// With returns a copy of v whose component on axis a is f.
func (v Vec2) With(a Axis, f float32) Vec2 {
	if a == AxisX {
		v.X = f
	} else {
		v.Y = f
	}
	return v
}

// Axis selects one of the two coordinate accessors of a Vec2.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

// Cross returns the other axis.
func (a Axis) Cross() Axis {
	if a == AxisX {
		return AxisY
	}
	return AxisX
}

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Rect represents a rectangle with position and size.
type Rect struct {
	X, Y float32 // Top-left position
	W, H float32 // Width and height
}

// RectFromBounds builds a rect from two corners.
func RectFromBounds(minP, maxP Vec2) Rect {
	return Rect{X: minP.X, Y: minP.Y, W: maxP.X - minP.X, H: maxP.Y - minP.Y}
}

// Min returns the top-left corner.
func (r Rect) Min() Vec2 { return Vec2{r.X, r.Y} }

// Max returns the bottom-right corner.
func (r Rect) Max() Vec2 { return Vec2{r.X + r.W, r.Y + r.H} }

// Size returns width and height as a vector.
func (r Rect) Size() Vec2 { return Vec2{r.W, r.H} }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 { return Vec2{r.X + r.W*0.5, r.Y + r.H*0.5} }

// Translate returns r moved by d.
func (r Rect) Translate(d Vec2) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersects returns true if two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W && r.X+r.W > other.X &&
		r.Y < other.Y+other.H && r.Y+r.H > other.Y
}

// Margin is padding around the content on each side.
type Margin struct {
	Left   float32 `toml:"left"`
	Right  float32 `toml:"right"`
	Top    float32 `toml:"top"`
	Bottom float32 `toml:"bottom"`
}

// Leading returns the margin before the first item on axis a.
func (m Margin) Leading(a Axis) float32 {
	if a == AxisX {
		return m.Left
	}
	return m.Top
}

// Trailing returns the margin after the last item on axis a.
func (m Margin) Trailing(a Axis) float32 {
	if a == AxisX {
		return m.Right
	}
	return m.Bottom
}

// Color constants (RGBA packed as 0xAABBGGRR for OpenGL compatibility)
const (
	ColorWhite       uint32 = 0xFFFFFFFF
	ColorBlack       uint32 = 0xFF000000
	ColorGray        uint32 = 0xFF808080
	ColorDarkGray    uint32 = 0xFF404040
	ColorLightGray   uint32 = 0xFFC0C0C0
	ColorTransparent uint32 = 0x00000000
)

// RGBA creates a packed color from individual components (0-255).
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// UnpackRGBA extracts RGBA components from a packed color.
func UnpackRGBA(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

func clamp01(v float32) float32 { return clampf(v, 0, 1) }

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func absf32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func signf(v float32) float32 {
	if v < 0 {
		return -1
	}
	return 1
}

func lerpf(a, b, t float32) float32 {
	return a + (b-a)*clamp01(t)
}

// roundf rounds half away from zero.
func roundf(v float32) float32 {
	return float32(math.Round(float64(v)))
}

func floorToInt(v float32) int {
	return int(math.Floor(float64(v)))
}

func ceilToInt(v float32) int {
	return int(math.Ceil(float64(v)))
}
