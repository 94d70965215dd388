package spotlight

// Reveal samples the background geometry for one frame. The center moves
// linearly from the focal center (progress 0) to the base center (progress
// 1); the radius stays at base.Radius. The alpha is baseAlpha scaled by
// alphaModifier, which may follow a different curve than progress.
//
// Progress above 1 overshoots past the base center; the finish animation
// relies on that.
func Reveal(base Circle, focal Vec2, progress, alphaModifier float64, baseAlpha uint8) (Vec2, uint8) {
	center := Lerp(focal, base.Center, progress)
	return center, clampAlpha(float64(baseAlpha) * alphaModifier)
}
