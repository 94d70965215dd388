package spotlight

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// finishOvershoot is how far past the resting position the finish
// animation pushes the background, as a fraction of the reveal distance.
const finishOvershoot = 0.25

// Direction tells which way a progress ramp drives the prompt.
type Direction uint8

const (
	DirectionNone       Direction = iota // no ramp running
	DirectionRevealing                   // growing toward the resting geometry
	DirectionDismissing                  // collapsing back into the focal center
	DirectionFinishing                   // overshooting outward while fading
)

// Progress is the state of the current animation ramp.
type Progress struct {
	Value     float64 // eased ramp position in [0, 1]
	Direction Direction
}

// ramp drives one reveal, dismiss or finish animation. The tween always runs
// 0→1; the reveal amount and alpha modifier are derived from it and from the
// reveal amount at the moment the ramp started, so a ramp that interrupts
// another continues from the same geometry.
//
// There is no global animation manager; the prompt calls update itself.
type ramp struct {
	tween     *gween.Tween
	direction Direction
	from      float64
	value     float64
}

func newRamp(dir Direction, from float64, duration time.Duration, fn ease.TweenFunc) *ramp {
	return &ramp{
		tween:     gween.New(0, 1, float32(duration.Seconds()), fn),
		direction: dir,
		from:      from,
	}
}

// update advances the ramp by dt seconds and reports whether it finished.
func (r *ramp) update(dt float32) bool {
	val, finished := r.tween.Update(dt)
	r.value = float64(val)
	if finished {
		r.value = 1
	}
	return finished
}

// progress returns the public view of the ramp.
func (r *ramp) progress() Progress {
	return Progress{Value: r.value, Direction: r.direction}
}

// modifiers returns the reveal amount and alpha modifier for the current
// ramp position.
func (r *ramp) modifiers() (reveal, alpha float64) {
	switch r.direction {
	case DirectionRevealing:
		reveal = r.from + (1-r.from)*r.value
		return reveal, reveal
	case DirectionDismissing:
		reveal = r.from * (1 - r.value)
		return reveal, reveal
	case DirectionFinishing:
		return r.from * (1 + finishOvershoot*r.value), r.from * (1 - r.value)
	default:
		return r.from, r.from
	}
}
