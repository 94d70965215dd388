package spotlight

import "math"

// FocalShape describes the highlighted region drawn over the target. Shapes
// are stateless: every call receives the target bounds and padding.
type FocalShape interface {
	// EdgePoint returns the point on the padded shape boundary at
	// angleDegrees (0° right, clockwise).
	EdgePoint(bounds Rect, angleDegrees, padding float64) Vec2
	// Contains reports whether (x, y) lies inside the padded shape.
	Contains(bounds Rect, padding, x, y float64) bool
}

// CircleFocal is a circle centered on the target whose radius is half the
// target's larger side plus the padding.
type CircleFocal struct{}

// Radius returns the padded focal radius for bounds.
func (CircleFocal) Radius(bounds Rect, padding float64) float64 {
	return math.Max(bounds.Width(), bounds.Height())/2 + padding
}

// EdgePoint implements FocalShape.
func (f CircleFocal) EdgePoint(bounds Rect, angleDegrees, padding float64) Vec2 {
	return PointOnCircle(bounds.Center(), f.Radius(bounds, padding), angleDegrees)
}

// Contains implements FocalShape.
func (f CircleFocal) Contains(bounds Rect, padding, x, y float64) bool {
	return PointInCircle(Vec2{x, y}, bounds.Center(), f.Radius(bounds, padding))
}

// RectangleFocal is the target bounds grown by the padding on every side.
type RectangleFocal struct{}

// EdgePoint implements FocalShape. The ray from the center at angleDegrees is
// clipped against the padded rectangle.
func (RectangleFocal) EdgePoint(bounds Rect, angleDegrees, padding float64) Vec2 {
	c := bounds.Center()
	hw := bounds.Width()/2 + padding
	hh := bounds.Height()/2 + padding
	rad := angleDegrees * degToRad
	dx, dy := math.Cos(rad), math.Sin(rad)

	t := math.Inf(1)
	if math.Abs(dx) > 1e-12 {
		t = hw / math.Abs(dx)
	}
	if math.Abs(dy) > 1e-12 {
		t = math.Min(t, hh/math.Abs(dy))
	}
	if math.IsInf(t, 1) {
		return c
	}
	return Vec2{X: c.X + dx*t, Y: c.Y + dy*t}
}

// Contains implements FocalShape.
func (RectangleFocal) Contains(bounds Rect, padding, x, y float64) bool {
	return bounds.Inset(-padding, -padding).Contains(x, y)
}
