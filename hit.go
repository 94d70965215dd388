package spotlight

// PointInCircle reports whether p lies inside or on the circle described by
// center and radius.
func PointInCircle(p, center Vec2, radius float64) bool {
	if radius < 0 {
		return false
	}
	dx := p.X - center.X
	dy := p.Y - center.Y
	return dx*dx+dy*dy <= radius*radius
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c Circle) Contains(x, y float64) bool {
	return PointInCircle(Vec2{x, y}, c.Center, c.Radius)
}
