package spotlight

import (
	"image/color"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to Ebitengine.
type Color struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
	A float64 `yaml:"a"`
}

// ColorWhite is the default focal ring color.
var ColorWhite = Color{1, 1, 1, 1}

// alpha8 returns the color's alpha as a 0-255 value.
func (c Color) alpha8() uint8 {
	return clampAlpha(c.A * 255)
}

// ToRGBA converts c to a premultiplied color.RGBA.
func (c Color) ToRGBA() color.RGBA {
	return c.withAlpha(c.alpha8())
}

// withAlpha converts c to a premultiplied color.RGBA using alpha a (0-255)
// in place of the color's own alpha.
func (c Color) withAlpha(a uint8) color.RGBA {
	af := float64(a) / 255
	return color.RGBA{
		R: uint8(clamp01(c.R)*af*255 + 0.5),
		G: uint8(clamp01(c.G)*af*255 + 0.5),
		B: uint8(clamp01(c.B)*af*255 + 0.5),
		A: a,
	}
}

// Vec2 is a 2D point used for centers, landmarks, and tap positions.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle stored as edges. The coordinate system
// has its origin at the top-left, with Y increasing downward. Zero-area
// rectangles are legal.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// RectFromXYWH builds a Rect from its top-left corner and size.
func RectFromXYWH(x, y, w, h float64) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// Width returns Right - Left.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns Bottom - Top.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// CenterX returns the horizontal midpoint.
func (r Rect) CenterX() float64 { return (r.Left + r.Right) * 0.5 }

// CenterY returns the vertical midpoint.
func (r Rect) CenterY() float64 { return (r.Top + r.Bottom) * 0.5 }

// IsZero reports whether every edge is zero.
func (r Rect) IsZero() bool { return r == Rect{} }

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x <= r.Right &&
		y >= r.Top && y <= r.Bottom
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.Left <= other.Right &&
		r.Right >= other.Left &&
		r.Top <= other.Bottom &&
		r.Bottom >= other.Top
}

// Circle is a center point and a non-negative radius.
type Circle struct {
	Center Vec2
	Radius float64
}

// TapResult classifies a tap against the prompt's current geometry.
type TapResult uint8

const (
	TapOutside      TapResult = iota // neither the focal target nor the background
	TapOnBackground                  // inside the background shape, off the focal target
	TapOnFocal                       // inside the focal target's hit area
)

// String returns the tap classification name.
func (t TapResult) String() string {
	switch t {
	case TapOutside:
		return "outside"
	case TapOnBackground:
		return "onBackground"
	case TapOnFocal:
		return "onFocal"
	default:
		return "unknown"
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func clampAlpha(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(v))))
}
