// Package spotlight renders onboarding tap-target prompts for [Ebitengine].
//
// A prompt highlights a focal target on screen, surrounds it and its
// explanatory text with a background shape, and walks the user through a
// reveal, interaction and dismiss lifecycle. The geometry and the lifecycle
// are deterministic and independent of the host: the host supplies
// rectangles, ticks and input, and gets back a drawable frame and a stream
// of state changes.
//
// # Quick start
//
//	p, err := spotlight.NewPrompt(spotlight.DefaultOptions())
//	if err != nil { ... }
//	p.SetLayout(buttonRect, textRect, screenRect)
//	p.OnStateChange(func(c spotlight.StateChange) {
//		if c.To == spotlight.StateFocalPressed { openInbox() }
//	})
//	p.Show()
//
// Then, every frame:
//
//	func (g *Game) Update() error {
//		g.prompt.Update(1.0 / float32(ebiten.TPS()))
//		g.prompt.ProcessInput()
//		return nil
//	}
//	func (g *Game) Draw(s *ebiten.Image) { g.prompt.Draw(s) }
//
// Hosts that do not use Ebitengine call [Prompt.Tap] and [Prompt.Back]
// themselves and read [Prompt.Frame] for the geometry to draw.
//
// # Geometry
//
// [SolveBaseCircle] computes the resting background circle. When the target
// sits within 88 density-independent units of a clip edge the circle is
// fitted through three landmarks around the target and the text; otherwise
// it is centered on the target. [Reveal] interpolates the circle's center
// from the focal center to the resting center while the radius stays fixed.
//
// # Lifecycle
//
// A prompt starts in [StateNotShown]. [Prompt.Show] enters
// [StateRevealing]; taps, back actions and the optional timeout move it
// through the press states into [StateDismissing] or [StateFinishing], and
// from there into the terminal [StateDismissed] or [StateFinished]. An
// interrupted animation continues from the current geometry instead of
// jumping.
//
// # Sequences
//
// [Sequence] chains prompts, and a [ShownStore] backed by [gdata] keeps
// completed prompts from being shown again on the next run.
//
// [Ebitengine]: https://ebitengine.org
// [gdata]: https://github.com/quasilyte/gdata
package spotlight
