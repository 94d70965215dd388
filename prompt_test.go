package spotlight

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func testOptions() Options {
	opts := DefaultOptions()
	opts.FocalPadding = 8
	opts.TextPadding = 8
	opts.Easing = "linear"
	opts.RevealDuration = time.Second
	opts.DismissDuration = time.Second
	opts.FinishDuration = time.Second
	return opts
}

func newTestPrompt(t *testing.T, opts Options, target, text Rect) *Prompt {
	t.Helper()
	if opts.Logger == nil {
		opts.Logger = zaptest.NewLogger(t)
	}
	p, err := NewPrompt(opts)
	require.NoError(t, err)
	require.NoError(t, p.SetLayout(target, text, screenBounds))
	return p
}

func newInteriorPrompt(t *testing.T, opts Options) *Prompt {
	t.Helper()
	return newTestPrompt(t, opts, interiorTarget, interiorText)
}

// revealed returns an interior prompt that has finished revealing.
func revealed(t *testing.T, opts Options) *Prompt {
	t.Helper()
	p := newInteriorPrompt(t, opts)
	require.NoError(t, p.Show())
	p.Update(1)
	require.Equal(t, StateRevealed, p.State())
	return p
}

func recordChanges(p *Prompt) *[]StateChange {
	var got []StateChange
	p.OnStateChange(func(c StateChange) { got = append(got, c) })
	return &got
}

var ignoreID = cmpopts.IgnoreFields(StateChange{}, "PromptID")

func assertChanges(t *testing.T, want []StateChange, got []StateChange) {
	t.Helper()
	if diff := cmp.Diff(want, got, ignoreID); diff != "" {
		t.Errorf("state changes mismatch (-want +got):\n%s", diff)
	}
}

func TestPromptFocalTapFinishes(t *testing.T) {
	p := newInteriorPrompt(t, testOptions())
	got := recordChanges(p)

	require.NoError(t, p.Show())
	p.Update(1)
	result, handled := p.Tap(150, 150)
	assert.Equal(t, TapOnFocal, result)
	assert.False(t, handled)
	p.Update(1)

	assertChanges(t, []StateChange{
		{From: StateNotShown, To: StateRevealing, Cause: CauseShow},
		{From: StateRevealing, To: StateRevealed, Cause: CauseAnimationEnd},
		{From: StateRevealed, To: StateFocalPressed, Cause: CauseFocalTap},
		{From: StateFocalPressed, To: StateFinishing, Cause: CauseFocalTap},
		{From: StateFinishing, To: StateFinished, Cause: CauseAnimationEnd},
	}, *got)
	for _, c := range *got {
		assert.Equal(t, p.ID(), c.PromptID)
	}
}

func TestPromptOutsideTapDismisses(t *testing.T) {
	p := revealed(t, testOptions())
	got := recordChanges(p)

	result, handled := p.Tap(150, 330)
	assert.Equal(t, TapOutside, result)
	assert.False(t, handled)
	p.Update(1)

	assertChanges(t, []StateChange{
		{From: StateRevealed, To: StateNonFocalPressed, Cause: CauseOutsideTap},
		{From: StateNonFocalPressed, To: StateDismissing, Cause: CauseOutsideTap},
		{From: StateDismissing, To: StateDismissed, Cause: CauseAnimationEnd},
	}, *got)
}

func TestPromptBackgroundTap(t *testing.T) {
	t.Run("not clickable swallows", func(t *testing.T) {
		p := revealed(t, testOptions())
		got := recordChanges(p)
		result, handled := p.Tap(150, 280)
		assert.Equal(t, TapOnBackground, result)
		assert.True(t, handled)
		assert.Equal(t, StateRevealed, p.State())
		assert.Empty(t, *got)
	})
	t.Run("clickable dismisses", func(t *testing.T) {
		opts := testOptions()
		opts.BackgroundClickable = true
		p := revealed(t, opts)
		got := recordChanges(p)
		_, handled := p.Tap(150, 280)
		assert.True(t, handled)
		assertChanges(t, []StateChange{
			{From: StateRevealed, To: StateNonFocalPressed, Cause: CauseBackgroundTap},
			{From: StateNonFocalPressed, To: StateDismissing, Cause: CauseBackgroundTap},
		}, *got)
	})
	t.Run("clickable without auto dismiss", func(t *testing.T) {
		opts := testOptions()
		opts.BackgroundClickable = true
		opts.AutoDismiss = false
		p := revealed(t, opts)
		p.Tap(150, 280)
		assert.Equal(t, StateNonFocalPressed, p.State())
		require.NoError(t, p.Dismiss())
		assert.Equal(t, StateDismissing, p.State())
	})
}

func TestPromptCaptureFlags(t *testing.T) {
	opts := testOptions()
	opts.CaptureTouchOnFocal = true
	opts.CaptureTouchOutside = true
	opts.AutoFinish = false
	opts.AutoDismiss = false

	p := revealed(t, opts)
	_, handled := p.Tap(150, 150)
	assert.True(t, handled)

	p = revealed(t, opts)
	_, handled = p.Tap(900, 900)
	assert.True(t, handled)
}

func TestPromptClassify(t *testing.T) {
	p := revealed(t, testOptions())
	tests := []struct {
		name string
		x, y float64
		want TapResult
	}{
		{"focal center", 150, 150, TapOnFocal},
		{"focal padding", 150, 207, TapOnFocal},
		{"background below text", 150, 280, TapOnBackground},
		{"beyond background", 150, 330, TapOutside},
		{"outside clip", -5, 150, TapOutside},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Classify(tt.x, tt.y))
		})
	}
	assert.Equal(t, StateRevealed, p.State(), "Classify does not change state")

	opts := testOptions()
	opts.ClipToBounds = false
	p = revealed(t, opts)
	assert.Equal(t, TapOnBackground, p.Classify(-5, 150))
}

func TestPromptBack(t *testing.T) {
	t.Run("dismisses", func(t *testing.T) {
		p := revealed(t, testOptions())
		got := recordChanges(p)
		assert.True(t, p.Back())
		assertChanges(t, []StateChange{
			{From: StateRevealed, To: StateBackButtonPressed, Cause: CauseBack},
			{From: StateBackButtonPressed, To: StateDismissing, Cause: CauseBack},
		}, *got)
	})
	t.Run("without dismiss on back", func(t *testing.T) {
		opts := testOptions()
		opts.DismissOnBack = false
		p := revealed(t, opts)
		assert.True(t, p.Back())
		assert.Equal(t, StateBackButtonPressed, p.State())
	})
	t.Run("not shown", func(t *testing.T) {
		p := newInteriorPrompt(t, testOptions())
		assert.False(t, p.Back())
		assert.Equal(t, StateNotShown, p.State())
	})
}

func TestPromptMidRevealDismissContinues(t *testing.T) {
	p := newTestPrompt(t, testOptions(), edgeTarget, edgeText)
	require.NoError(t, p.Show())
	base := p.Background().(*CircleBackground).Base()
	focal := edgeTarget.Center()

	p.Update(0.4)
	want := Lerp(focal, base.Center, 0.4)
	got := p.Frame().Background.Center
	assert.InDelta(t, want.X, got.X, 1e-4)
	assert.InDelta(t, want.Y, got.Y, 1e-4)

	require.NoError(t, p.Dismiss())
	assert.Equal(t, StateDismissing, p.State())
	after := p.Frame().Background.Center
	assert.InDelta(t, got.X, after.X, 1e-9, "no jump when the dismiss starts")
	assert.InDelta(t, got.Y, after.Y, 1e-9)

	p.Update(0.5)
	want = Lerp(focal, base.Center, 0.2)
	got = p.Frame().Background.Center
	assert.InDelta(t, want.X, got.X, 1e-4)
	assert.InDelta(t, want.Y, got.Y, 1e-4)
	assert.Equal(t, base.Radius, p.Frame().Background.Radius)

	p.Update(0.5)
	assert.Equal(t, StateDismissed, p.State())
}

func TestPromptTapDuringRevealKeepsPressState(t *testing.T) {
	opts := testOptions()
	opts.AutoDismiss = false
	p := newInteriorPrompt(t, opts)
	require.NoError(t, p.Show())
	p.Update(0.5)

	p.Tap(900, 900)
	assert.Equal(t, StateNonFocalPressed, p.State())
	p.Update(1)
	assert.Equal(t, StateNonFocalPressed, p.State(), "reveal end does not overwrite a press")
}

func TestPromptFinishOvershoot(t *testing.T) {
	p := newTestPrompt(t, testOptions(), edgeTarget, edgeText)
	require.NoError(t, p.Show())
	p.Update(1)
	require.NoError(t, p.Finish())
	p.Update(0.5)

	base := p.Background().(*CircleBackground).Base()
	want := Lerp(edgeTarget.Center(), base.Center, 1.125)
	f := p.Frame()
	assert.InDelta(t, want.X, f.Background.Center.X, 1e-4)
	assert.InDelta(t, want.Y, f.Background.Center.Y, 1e-4)
	assert.Equal(t, uint8(122), f.Alpha)
	assert.Equal(t, DirectionFinishing, f.Progress.Direction)
}

func TestPromptTimeout(t *testing.T) {
	opts := testOptions()
	opts.Timeout = 2 * time.Second
	p := newInteriorPrompt(t, opts)
	got := recordChanges(p)

	require.NoError(t, p.Show())
	p.Update(1)
	p.Update(1.5)
	assert.Equal(t, StateRevealed, p.State())
	p.Update(0.6)
	assert.Equal(t, StateDismissing, p.State())
	p.Update(1)

	assertChanges(t, []StateChange{
		{From: StateNotShown, To: StateRevealing, Cause: CauseShow},
		{From: StateRevealing, To: StateRevealed, Cause: CauseAnimationEnd},
		{From: StateRevealed, To: StateShowForTimeout, Cause: CauseTimeout},
		{From: StateShowForTimeout, To: StateDismissing, Cause: CauseTimeout},
		{From: StateDismissing, To: StateDismissed, Cause: CauseAnimationEnd},
	}, *got)
}

func TestPromptTimeoutClearedByPress(t *testing.T) {
	opts := testOptions()
	opts.Timeout = 2 * time.Second
	opts.AutoDismiss = false
	p := revealed(t, opts)
	p.Tap(900, 900)
	p.Update(5)
	assert.Equal(t, StateNonFocalPressed, p.State())
}

func TestPromptRejectsInputWhenNotShown(t *testing.T) {
	p := newInteriorPrompt(t, testOptions())
	got := recordChanges(p)

	result, handled := p.Tap(150, 150)
	assert.Equal(t, TapOnFocal, result)
	assert.False(t, handled)
	assert.ErrorIs(t, p.Dismiss(), ErrInvalidTransition)
	assert.ErrorIs(t, p.Finish(), ErrInvalidTransition)
	p.Update(1)

	assert.Equal(t, StateNotShown, p.State())
	assert.Empty(t, *got)
}

func TestPromptTerminalStates(t *testing.T) {
	p := revealed(t, testOptions())
	require.NoError(t, p.Dismiss())
	p.Update(1)
	require.Equal(t, StateDismissed, p.State())

	got := recordChanges(p)
	p.Tap(150, 150)
	assert.False(t, p.Back())
	assert.ErrorIs(t, p.Dismiss(), ErrInvalidTransition)
	assert.ErrorIs(t, p.Finish(), ErrInvalidTransition)
	assert.Empty(t, *got)

	require.NoError(t, p.Show())
	assertChanges(t, []StateChange{
		{From: StateDismissed, To: StateNotShown, Cause: CauseShow},
		{From: StateNotShown, To: StateRevealing, Cause: CauseShow},
	}, *got)
	assert.Equal(t, uint8(0), p.Frame().Alpha, "re-show starts from the focal center")
}

func TestPromptShowTwice(t *testing.T) {
	p := newInteriorPrompt(t, testOptions())
	require.NoError(t, p.Show())
	assert.ErrorIs(t, p.Show(), ErrInvalidTransition)
	assert.Equal(t, StateRevealing, p.State())
}

func TestPromptShowErrors(t *testing.T) {
	t.Run("missing layout", func(t *testing.T) {
		p, err := NewPrompt(testOptions())
		require.NoError(t, err)
		assert.ErrorIs(t, p.Show(), ErrConfigurationMissing)
		assert.Equal(t, StateNotShown, p.State())
	})
	t.Run("missing text", func(t *testing.T) {
		p, err := NewPrompt(testOptions())
		require.NoError(t, err)
		require.NoError(t, p.SetTarget(interiorTarget))
		require.NoError(t, p.SetClipBounds(screenBounds))
		assert.ErrorIs(t, p.Show(), ErrConfigurationMissing)
	})
	t.Run("degenerate geometry", func(t *testing.T) {
		p := newTestPrompt(t, testOptions(), edgeTarget, Rect{40, 80, 40, 140})
		assert.ErrorIs(t, p.Show(), ErrDegenerateGeometry)
		assert.Equal(t, StateNotShown, p.State())
	})
}

func TestPromptSetTargetResolves(t *testing.T) {
	p := revealed(t, testOptions())
	require.NoError(t, p.SetTarget(Rect{300, 300, 400, 400}))
	assert.Equal(t, Vec2{350, 350}, p.Frame().Background.Center)
	assert.Equal(t, Rect{300, 300, 400, 400}, p.Frame().Focal)
	assert.Equal(t, 8.0, p.Layout().FocalPadding)
}

func TestPromptSetLayoutKeepsPreviousOnError(t *testing.T) {
	p := newTestPrompt(t, testOptions(), edgeTarget, edgeText)
	require.NoError(t, p.Show())
	p.Update(1)
	before := p.Frame().Background

	err := p.SetText(Rect{40, 80, 40, 140})
	assert.ErrorIs(t, err, ErrDegenerateGeometry)
	assert.Equal(t, edgeText, p.Layout().Text)
	assert.Equal(t, before, p.Frame().Background)
}

func TestPromptDensityScalesEdgeInset(t *testing.T) {
	opts := testOptions()
	opts.Density = 2
	p := newTestPrompt(t, opts, Rect{150, 500, 190, 540}, interiorText)
	assert.Equal(t, 176.0, p.Layout().EdgeInset)
	assert.True(t, p.Layout().IsEdgeCase())
}

func TestPromptConfigure(t *testing.T) {
	p := newInteriorPrompt(t, testOptions())
	require.NoError(t, p.Show())
	assert.ErrorIs(t, p.Configure(testOptions()), ErrInvalidTransition)

	p.Update(1)
	opts := testOptions()
	opts.FocalPadding = 20
	require.NoError(t, p.Configure(opts))
	assert.Equal(t, 20.0, p.Layout().FocalPadding)
	// 108 horizontally, 50+20+60 vertically.
	assert.InDelta(t, math.Hypot(108, 130), p.Frame().Background.Radius, 1e-9)
}

func TestPromptFullAlphaAtRest(t *testing.T) {
	p := revealed(t, testOptions())
	assert.Equal(t, uint8(244), p.Frame().Alpha)
	assert.Equal(t, Progress{}, p.Progress())
}

func TestPromptFullscreenBackground(t *testing.T) {
	opts := testOptions()
	opts.BackgroundShapeName = "fullscreen"
	p := revealed(t, opts)
	assert.Equal(t, TapOnBackground, p.Classify(900, 900))
	assert.InDelta(t, math.Hypot(1000, 1000)/2, p.Frame().Background.Radius, 1e-9)
}

func TestPromptRectangleFocal(t *testing.T) {
	opts := testOptions()
	opts.FocalShapeName = "rectangle"
	p := revealed(t, opts)
	// Inside the padded rectangle corner, outside the padded circle.
	assert.Equal(t, TapOnFocal, p.Classify(205, 205))
}

func TestPromptListenerRemoval(t *testing.T) {
	p := newInteriorPrompt(t, testOptions())
	var calls int
	h := p.OnStateChange(func(StateChange) { calls++ })
	require.NoError(t, p.Show())
	assert.Equal(t, 1, calls)

	h.Remove()
	h.Remove()
	p.Update(1)
	assert.Equal(t, 1, calls)
}

func TestPromptListenerOverridesAutoFinish(t *testing.T) {
	p := revealed(t, testOptions())
	got := recordChanges(p)
	p.OnStateChange(func(c StateChange) {
		if c.To == StateFocalPressed {
			assert.NoError(t, p.Dismiss())
		}
	})

	p.Tap(150, 150)
	assert.Equal(t, StateDismissing, p.State())
	assertChanges(t, []StateChange{
		{From: StateRevealed, To: StateFocalPressed, Cause: CauseFocalTap},
		{From: StateFocalPressed, To: StateDismissing, Cause: CauseDismiss},
	}, *got)
}

func TestPromptLogsRejectedEvents(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	opts := testOptions()
	opts.Key = "inbox"
	opts.Logger = zap.New(core)
	p := newInteriorPrompt(t, opts)

	require.Error(t, p.Dismiss())

	rejected := logs.FilterMessage("event rejected").All()
	require.Len(t, rejected, 1)
	fields := rejected[0].ContextMap()
	assert.Equal(t, "dismiss", fields["op"])
	assert.Equal(t, "NOT_SHOWN", fields["state"])
	assert.Equal(t, "inbox", fields["key"])
	assert.Equal(t, p.ID(), fields["prompt"])
	assert.Equal(t, zapcore.WarnLevel, rejected[0].Level)
}
