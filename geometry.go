package spotlight

import "math"

const degToRad = math.Pi / 180

// Center returns the rectangle's midpoint.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.CenterX(), Y: r.CenterY()}
}

// Inset shrinks all four edges by dx horizontally and dy vertically.
// Negative values grow the rectangle. An inset larger than half the size
// produces an inverted rectangle; callers comparing against it must expect
// an empty interior.
func (r Rect) Inset(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right - dx,
		Bottom: r.Bottom - dy,
	}
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Lerp returns the point t of the way from a to b. t is not clamped.
func Lerp(a, b Vec2, t float64) Vec2 {
	return Vec2{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// PointOnCircle returns the point at angleDegrees on the circle. 0° is the
// rightmost point and angles increase clockwise in screen space (y down).
func PointOnCircle(center Vec2, radius, angleDegrees float64) Vec2 {
	rad := angleDegrees * degToRad
	return Vec2{
		X: center.X + radius*math.Cos(rad),
		Y: center.Y + radius*math.Sin(rad),
	}
}
