package spotlight

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Draw renders the background and the focal highlight. Text is drawn by the
// host on top. When ClipToBounds is set, drawing is limited to the clip
// rectangle. Nothing is drawn before Show or after the prompt has gone.
func (p *Prompt) Draw(screen *ebiten.Image) {
	if p.state == StateNotShown || p.state.IsTerminal() {
		return
	}
	dst := screen
	if p.opts.ClipToBounds && !p.layout.Clip.IsZero() {
		c := p.layout.Clip
		sub := screen.SubImage(image.Rect(
			int(math.Floor(c.Left)), int(math.Floor(c.Top)),
			int(math.Ceil(c.Right)), int(math.Ceil(c.Bottom)),
		))
		if img, ok := sub.(*ebiten.Image); ok {
			dst = img
		}
	}

	p.opts.Background.Draw(dst)
	p.drawFocal(dst)
}

// drawFocal fills the focal shape with the focal color, faded with the
// background.
func (p *Prompt) drawFocal(dst *ebiten.Image) {
	alpha := clampAlpha(float64(p.opts.FocalColor.alpha8()) * clamp01(p.alphaMod))
	if alpha == 0 {
		return
	}
	clr := p.opts.FocalColor.withAlpha(alpha)
	bounds := p.layout.Target
	pad := p.opts.FocalPadding

	switch f := p.opts.Focal.(type) {
	case CircleFocal:
		c := bounds.Center()
		vector.DrawFilledCircle(dst, float32(c.X), float32(c.Y), float32(f.Radius(bounds, pad)), clr, true)
	case RectangleFocal:
		r := bounds.Inset(-pad, -pad)
		vector.DrawFilledRect(dst, float32(r.Left), float32(r.Top), float32(r.Width()), float32(r.Height()), clr, true)
	}
}

// Draw implements Background.
func (b *CircleBackground) Draw(dst *ebiten.Image) {
	if b.alpha == 0 || b.current.Radius <= 0 {
		return
	}
	vector.DrawFilledCircle(dst,
		float32(b.current.Center.X), float32(b.current.Center.Y), float32(b.current.Radius),
		b.color.withAlpha(b.alpha), true)
}

// Draw implements Background.
func (b *FullscreenBackground) Draw(dst *ebiten.Image) {
	if b.alpha == 0 {
		return
	}
	vector.DrawFilledRect(dst,
		float32(b.clip.Left), float32(b.clip.Top), float32(b.clip.Width()), float32(b.clip.Height()),
		b.color.withAlpha(b.alpha), false)
}
