package spotlight

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Frame is the drawable state of a prompt for the current tick.
type Frame struct {
	State      State
	Background Circle // circle currently covered by the background
	Alpha      uint8  // background alpha, 0-255
	Focal      Rect   // focal target bounds
	Progress   Progress
}

// Prompt is a single onboarding spotlight: a background shape enclosing a
// focal target and its text, driven through reveal, interaction and
// dismissal.
//
// A Prompt is not safe for concurrent use. All calls, including Update, must
// come from the goroutine that drives the host's frames.
type Prompt struct {
	id     string
	opts   Options
	log    *zap.Logger
	layout Layout

	state State
	ramp  *ramp

	// reveal and alphaMod are the modifiers last fed to the background.
	reveal   float64
	alphaMod float64

	timing  bool
	elapsed float64

	listeners   listenerRegistry
	injectQueue []syntheticEvent
	testRunner  *TestRunner
	input       inputState
}

// NewPrompt creates a prompt in StateNotShown. Missing shapes, easing and
// logger are resolved from the option names and defaults.
func NewPrompt(opts Options) (*Prompt, error) {
	if err := opts.resolve(); err != nil {
		return nil, err
	}
	p := &Prompt{
		id:    uuid.NewString(),
		opts:  opts,
		state: StateNotShown,
	}
	p.log = opts.Logger.With(zap.String("prompt", p.id))
	if opts.Key != "" {
		p.log = p.log.With(zap.String("key", opts.Key))
	}
	p.opts.Background.SetColor(opts.BackgroundColor)
	return p, nil
}

// ID returns the prompt's unique identifier.
func (p *Prompt) ID() string { return p.id }

// Key returns Options.Key.
func (p *Prompt) Key() string { return p.opts.Key }

// State returns the active lifecycle state.
func (p *Prompt) State() State { return p.state }

// Options returns the prompt's resolved options.
func (p *Prompt) Options() Options { return p.opts }

// Layout returns the layout the prompt is solved against.
func (p *Prompt) Layout() Layout { return p.layout }

// Background returns the prompt's background shape.
func (p *Prompt) Background() Background { return p.opts.Background }

// Progress returns the running animation ramp, or a zero Progress when idle.
func (p *Prompt) Progress() Progress {
	if p.ramp == nil {
		return Progress{}
	}
	return p.ramp.progress()
}

// Frame returns the geometry to draw this tick.
func (p *Prompt) Frame() Frame {
	return Frame{
		State:      p.state,
		Background: p.opts.Background.Shape(),
		Alpha:      p.opts.Background.Alpha(),
		Focal:      p.layout.Target,
		Progress:   p.Progress(),
	}
}

// OnStateChange registers fn to be called on every state entry.
func (p *Prompt) OnStateChange(fn func(StateChange)) CallbackHandle {
	id := p.listeners.add(fn)
	return CallbackHandle{id: id, reg: &p.listeners}
}

// --- Layout ---

// SetLayout replaces target, text and clip rectangles at once. Paddings and
// the edge inset always come from the options.
func (p *Prompt) SetLayout(target, text, clip Rect) error {
	l := p.layout
	l.Target, l.Text, l.Clip = target, text, clip
	return p.applyLayout(l)
}

// SetTarget moves or resizes the focal target.
func (p *Prompt) SetTarget(r Rect) error {
	l := p.layout
	l.Target = r
	return p.applyLayout(l)
}

// SetText sets the text block bounds.
func (p *Prompt) SetText(r Rect) error {
	l := p.layout
	l.Text = r
	return p.applyLayout(l)
}

// SetClipBounds sets the viewport the prompt is shown in.
func (p *Prompt) SetClipBounds(r Rect) error {
	l := p.layout
	l.Clip = r
	return p.applyLayout(l)
}

// applyLayout stores l and, while the prompt is on screen, re-solves the
// background immediately so the next sample never sees stale geometry. On a
// solver error the previous layout is kept.
func (p *Prompt) applyLayout(l Layout) error {
	l.FocalPadding = p.opts.FocalPadding
	l.TextPadding = p.opts.TextPadding
	l.EdgeInset = EdgeInsetDP * p.opts.Density
	if p.state == StateNotShown || p.state.IsTerminal() {
		p.layout = l
		return nil
	}
	if err := p.opts.Background.Prepare(l, p.opts.Focal); err != nil {
		p.log.Warn("layout rejected", zap.Error(err))
		return err
	}
	p.layout = l
	p.debugCheckGeometry()
	p.sample()
	return nil
}

// Configure replaces the options. It is rejected while an animation runs.
func (p *Prompt) Configure(opts Options) error {
	if p.state.IsAnimating() {
		return p.reject("configure")
	}
	if err := opts.resolve(); err != nil {
		return err
	}
	prev := p.opts
	p.opts = opts
	p.opts.Background.SetColor(opts.BackgroundColor)
	if err := p.applyLayout(p.layout); err != nil {
		p.opts = prev
		return err
	}
	return nil
}

// --- Lifecycle ---

// Show starts the reveal animation. From a terminal state the prompt is
// first reset to StateNotShown.
func (p *Prompt) Show() error {
	if p.state.IsTerminal() {
		p.ramp = nil
		p.transition(StateNotShown, CauseShow)
	}
	if p.state != StateNotShown {
		return p.reject("show")
	}
	l := p.layout
	if l.Target.IsZero() || l.Text.IsZero() || l.Clip.IsZero() {
		return fmt.Errorf("spotlight: show needs target, text and clip bounds: %w", ErrConfigurationMissing)
	}
	if err := p.opts.Background.Prepare(l, p.opts.Focal); err != nil {
		return fmt.Errorf("spotlight: show: %w", err)
	}
	p.debugCheckGeometry()

	p.reveal, p.alphaMod = 0, 0
	p.elapsed, p.timing = 0, false
	p.startRamp(StateRevealing, DirectionRevealing, p.opts.RevealDuration, CauseShow)
	return nil
}

// Update advances the running animation by dt seconds, then the show
// timeout, then consumes one injected input event. The timeout only counts
// while the prompt rests in StateRevealed.
func (p *Prompt) Update(dt float32) {
	if p.testRunner != nil {
		p.testRunner.step(p)
	}

	if p.ramp != nil {
		done := p.ramp.update(dt)
		p.reveal, p.alphaMod = p.ramp.modifiers()
		p.sample()
		if done {
			p.endRamp()
		}
	} else if p.timing && p.opts.Timeout > 0 && p.state == StateRevealed {
		p.elapsed += float64(dt)
		if p.elapsed >= p.opts.Timeout.Seconds() {
			p.timing = false
			p.transition(StateShowForTimeout, CauseTimeout)
			if p.state == StateShowForTimeout {
				p.startRamp(StateDismissing, DirectionDismissing, p.opts.DismissDuration, CauseTimeout)
			}
		}
	}

	p.processInjectedInput()
}

// Tap classifies a tap at (x, y) and feeds it to the state machine. The
// returned bool reports whether the host should stop the tap from reaching
// whatever lies underneath the prompt.
func (p *Prompt) Tap(x, y float64) (TapResult, bool) {
	result := p.Classify(x, y)
	if !p.state.isInteractive() {
		p.log.Debug("tap ignored", zap.Stringer("state", p.state), zap.Stringer("result", result))
		return result, false
	}

	switch result {
	case TapOnFocal:
		p.transition(StateFocalPressed, CauseFocalTap)
		if p.state == StateFocalPressed && p.opts.AutoFinish {
			p.startRamp(StateFinishing, DirectionFinishing, p.opts.FinishDuration, CauseFocalTap)
		}
		return result, p.opts.CaptureTouchOnFocal
	case TapOnBackground:
		if p.opts.BackgroundClickable {
			p.nonFocalPressed(CauseBackgroundTap)
		}
		return result, true
	default:
		p.nonFocalPressed(CauseOutsideTap)
		return result, p.opts.CaptureTouchOutside
	}
}

// Classify reports where (x, y) falls relative to the current geometry
// without changing state.
func (p *Prompt) Classify(x, y float64) TapResult {
	if p.opts.ClipToBounds && !p.layout.Clip.IsZero() && !p.layout.Clip.Contains(x, y) {
		return TapOutside
	}
	if p.opts.Focal.Contains(p.layout.Target, p.opts.FocalPadding, x, y) {
		return TapOnFocal
	}
	if p.opts.Background.Contains(x, y) {
		return TapOnBackground
	}
	return TapOutside
}

// Back delivers a back action. It returns false when the prompt is not
// accepting input, so the host can handle the action itself.
func (p *Prompt) Back() bool {
	if !p.state.isInteractive() {
		return false
	}
	p.transition(StateBackButtonPressed, CauseBack)
	if p.state == StateBackButtonPressed && p.opts.DismissOnBack {
		p.startRamp(StateDismissing, DirectionDismissing, p.opts.DismissDuration, CauseBack)
	}
	return true
}

// Dismiss starts the dismiss animation from the current geometry.
func (p *Prompt) Dismiss() error {
	if !p.state.isInteractive() {
		return p.reject("dismiss")
	}
	p.startRamp(StateDismissing, DirectionDismissing, p.opts.DismissDuration, CauseDismiss)
	return nil
}

// Finish starts the finish animation from the current geometry.
func (p *Prompt) Finish() error {
	if !p.state.isInteractive() {
		return p.reject("finish")
	}
	p.startRamp(StateFinishing, DirectionFinishing, p.opts.FinishDuration, CauseFinish)
	return nil
}

func (p *Prompt) nonFocalPressed(cause Cause) {
	p.transition(StateNonFocalPressed, cause)
	if p.state == StateNonFocalPressed && p.opts.AutoDismiss {
		p.startRamp(StateDismissing, DirectionDismissing, p.opts.DismissDuration, cause)
	}
}

// startRamp enters an animating state and starts its ramp from the current
// reveal amount.
func (p *Prompt) startRamp(to State, dir Direction, d time.Duration, cause Cause) {
	p.timing = false
	p.ramp = newRamp(dir, p.reveal, d, p.opts.Ease)
	p.reveal, p.alphaMod = p.ramp.modifiers()
	p.sample()
	p.transition(to, cause)
}

// endRamp moves an animating state to its resting successor. A reveal
// that was overtaken by a press keeps the press state.
func (p *Prompt) endRamp() {
	dir := p.ramp.direction
	p.ramp = nil
	switch dir {
	case DirectionRevealing:
		if p.state == StateRevealing {
			p.elapsed, p.timing = 0, true
			p.transition(StateRevealed, CauseAnimationEnd)
		}
	case DirectionDismissing:
		p.transition(StateDismissed, CauseAnimationEnd)
	case DirectionFinishing:
		p.transition(StateFinished, CauseAnimationEnd)
	}
}

// sample pushes the current modifiers into the background.
func (p *Prompt) sample() {
	p.opts.Background.Update(p.layout.Target.Center(), p.reveal, p.alphaMod)
}

func (p *Prompt) transition(to State, cause Cause) {
	from := p.state
	p.state = to
	p.logTransition(from, to, cause)
	p.listeners.emit(StateChange{PromptID: p.id, From: from, To: to, Cause: cause})
}

func (p *Prompt) reject(op string) error {
	p.log.Warn("event rejected", zap.String("op", op), zap.Stringer("state", p.state))
	return fmt.Errorf("spotlight: %s in state %s: %w", op, p.state, ErrInvalidTransition)
}
