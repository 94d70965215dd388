package spotlight

import (
	"fmt"
	"math"
)

// EdgeInsetDP is the distance, in density-independent units, a focal center
// must keep from every clip edge for the symmetric fit to be used.
const EdgeInsetDP = 88.0

// determinantEpsilon bounds the circumcircle determinant below which three
// landmarks are treated as collinear.
const determinantEpsilon = 1e-9

// Layout is the geometry a prompt is solved against. It is supplied by the
// host once per layout pass.
type Layout struct {
	Target       Rect    // focal target bounds
	Text         Rect    // bounds of the explanatory text block
	Clip         Rect    // viewport the prompt is shown in
	FocalPadding float64 // gap between target and focal shape edge
	TextPadding  float64 // horizontal gap around the text block
	EdgeInset    float64 // edge margin in pixels, usually EdgeInsetDP * density
}

// textAbove reports whether the text block starts above the target.
func (l Layout) textAbove() bool {
	return l.Text.Top < l.Target.Top
}

// IsEdgeCase reports whether the target center is too close to a clip edge
// for the symmetric fit. The center must be strictly inside the inset clip
// rectangle on both axes to count as interior.
func (l Layout) IsEdgeCase() bool {
	in := l.Clip.Inset(l.EdgeInset, l.EdgeInset)
	cx, cy := l.Target.CenterX(), l.Target.CenterY()
	insideX := cx > in.Left && cx < in.Right
	insideY := cy > in.Top && cy < in.Bottom
	return !(insideX && insideY)
}

// SolveBaseCircle computes the resting circle enclosing the focal target and
// the text block. A nil shape is treated as CircleFocal. The returned center
// may lie outside the clip bounds.
func SolveBaseCircle(l Layout, shape FocalShape) (Circle, error) {
	if shape == nil {
		shape = CircleFocal{}
	}
	if l.IsEdgeCase() {
		a, b, c, err := landmarks(l, shape)
		if err != nil {
			return Circle{}, err
		}
		return circumcircle(a, b, c)
	}
	return symmetricFit(l), nil
}

// landmarks returns the three points the edge-case circle passes through:
// the far side of the focal shape, and the two outer corners of the text
// block on the side facing away from the target.
func landmarks(l Layout, shape FocalShape) (a, b, c Vec2, err error) {
	textWidth := l.Text.Width()
	if textWidth <= 0 {
		return a, b, c, fmt.Errorf("spotlight: text width %v: %w", textWidth, ErrDegenerateGeometry)
	}

	// Offset of the focal center from the text center, as a fraction of the
	// text width, mapped onto a quarter turn.
	offset := l.Target.CenterX() - l.Text.CenterX()
	angle := 90 * (offset / textWidth)
	above := l.textAbove()
	if above {
		angle = 180 - angle
	} else {
		angle = 180 + angle
	}
	a = shape.EdgePoint(l.Target, angle, l.FocalPadding)

	y := l.Text.Bottom
	if above {
		y = l.Text.Top
	}
	b = Vec2{X: l.Text.Left - l.TextPadding, Y: y}

	c = Vec2{X: l.Text.Right + l.TextPadding, Y: y}
	if l.Target.Right > c.X {
		c.X = l.Target.Right + l.FocalPadding
	}
	return a, b, c, nil
}

// circumcircle returns the unique circle through a, b and c.
func circumcircle(a, b, c Vec2) (Circle, error) {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if math.Abs(d) < determinantEpsilon || math.IsNaN(d) {
		return Circle{}, fmt.Errorf("spotlight: landmarks %v %v %v are collinear: %w", a, b, c, ErrDegenerateGeometry)
	}
	a2 := a.X*a.X + a.Y*a.Y
	b2 := b.X*b.X + b.Y*b.Y
	c2 := c.X*c.X + c.Y*c.Y
	center := Vec2{
		X: (a2*(b.Y-c.Y) + b2*(c.Y-a.Y) + c2*(a.Y-b.Y)) / d,
		Y: (a2*(c.X-b.X) + b2*(a.X-c.X) + c2*(b.X-a.X)) / d,
	}
	return Circle{Center: center, Radius: Distance(center, b)}, nil
}

// symmetricFit centers the circle on the target and sizes it to reach the
// far text corner.
func symmetricFit(l Layout) Circle {
	center := l.Target.Center()
	length := math.Max(
		math.Abs(l.Text.Right-center.X),
		math.Abs(l.Text.Left-center.X),
	) + l.TextPadding
	height := l.Target.Height()/2 + l.FocalPadding + l.Text.Height()
	return Circle{Center: center, Radius: math.Hypot(length, height)}
}
