package spotlight

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Background is the shape drawn behind the focal target and text. Prepare is
// called once per layout pass; Update once per frame with the current reveal
// amount and alpha modifier.
type Background interface {
	// SetColor sets the fill color. Its alpha is the alpha at full reveal.
	SetColor(c Color)
	// Prepare solves the resting geometry for a layout.
	Prepare(l Layout, shape FocalShape) error
	// Update recomputes the drawable geometry for this frame.
	Update(focal Vec2, reveal, alphaModifier float64)
	// Shape returns the circle currently covered by the background.
	Shape() Circle
	// Alpha returns the current fill alpha (0-255).
	Alpha() uint8
	// Contains reports whether (x, y) lies on the background.
	Contains(x, y float64) bool
	// Draw renders the background onto dst.
	Draw(dst *ebiten.Image)
}

// CircleBackground is a circle enclosing the target and text. Its center
// slides out from the focal center while revealing; the radius is fixed.
type CircleBackground struct {
	color     Color
	baseAlpha uint8
	alpha     uint8
	base      Circle
	current   Circle
}

// NewCircleBackground returns a circle background with the given color.
func NewCircleBackground(c Color) *CircleBackground {
	b := &CircleBackground{}
	b.SetColor(c)
	return b
}

// SetColor implements Background.
func (b *CircleBackground) SetColor(c Color) {
	b.color = c
	b.baseAlpha = c.alpha8()
	b.alpha = b.baseAlpha
}

// Prepare implements Background.
func (b *CircleBackground) Prepare(l Layout, shape FocalShape) error {
	base, err := SolveBaseCircle(l, shape)
	if err != nil {
		return err
	}
	b.base = base
	b.current = base
	return nil
}

// Update implements Background.
func (b *CircleBackground) Update(focal Vec2, reveal, alphaModifier float64) {
	center, alpha := Reveal(b.base, focal, reveal, alphaModifier, b.baseAlpha)
	b.current = Circle{Center: center, Radius: b.base.Radius}
	b.alpha = alpha
}

// Base returns the resting circle from the last Prepare.
func (b *CircleBackground) Base() Circle { return b.base }

// Shape implements Background.
func (b *CircleBackground) Shape() Circle { return b.current }

// Alpha implements Background.
func (b *CircleBackground) Alpha() uint8 { return b.alpha }

// Contains implements Background.
func (b *CircleBackground) Contains(x, y float64) bool {
	return b.current.Contains(x, y)
}

// FullscreenBackground covers the whole clip rectangle. Only its alpha
// animates.
type FullscreenBackground struct {
	color     Color
	baseAlpha uint8
	alpha     uint8
	clip      Rect
}

// NewFullscreenBackground returns a fullscreen background with the given color.
func NewFullscreenBackground(c Color) *FullscreenBackground {
	b := &FullscreenBackground{}
	b.SetColor(c)
	return b
}

// SetColor implements Background.
func (b *FullscreenBackground) SetColor(c Color) {
	b.color = c
	b.baseAlpha = c.alpha8()
	b.alpha = b.baseAlpha
}

// Prepare implements Background.
func (b *FullscreenBackground) Prepare(l Layout, _ FocalShape) error {
	b.clip = l.Clip
	return nil
}

// Update implements Background.
func (b *FullscreenBackground) Update(_ Vec2, _, alphaModifier float64) {
	b.alpha = clampAlpha(float64(b.baseAlpha) * alphaModifier)
}

// Shape implements Background. The circle circumscribes the clip rectangle.
func (b *FullscreenBackground) Shape() Circle {
	return Circle{
		Center: b.clip.Center(),
		Radius: math.Hypot(b.clip.Width(), b.clip.Height()) / 2,
	}
}

// Alpha implements Background.
func (b *FullscreenBackground) Alpha() uint8 { return b.alpha }

// Contains implements Background.
func (b *FullscreenBackground) Contains(x, y float64) bool {
	return b.clip.Contains(x, y)
}
