package spotlight

import (
	"github.com/hajimehoshi/ebiten/v2"
)

const maxTouches = 10

// inputState carries pointer and key state between frames so ProcessInput
// can turn press/release pairs into taps.
type inputState struct {
	mouseDown    bool
	mouseX       float64
	mouseY       float64
	backDown     bool
	touchIDs     []ebiten.TouchID
	prevTouchIDs []ebiten.TouchID
	touchPos     map[ebiten.TouchID]Vec2
}

// DeviceDensity returns the monitor's device scale factor, suitable for
// Options.Density.
func DeviceDensity() float64 {
	if m := ebiten.Monitor(); m != nil {
		return m.DeviceScaleFactor()
	}
	return 1
}

// ProcessInput reads Ebitengine mouse, touch and keyboard state and delivers
// completed taps to Tap and Escape presses to Back. Call it from the game's
// Update, after Prompt.Update, so taps are tested against this frame's
// geometry.
func (p *Prompt) ProcessInput() {
	p.processMousePointer()
	p.processTouchPointers()
	p.processBackKey()
}

// processMousePointer taps on left-button release at the last cursor position.
func (p *Prompt) processMousePointer() {
	in := &p.input
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	if in.mouseDown && !pressed {
		p.Tap(in.mouseX, in.mouseY)
	}
	in.mouseDown = pressed
	in.mouseX, in.mouseY = float64(mx), float64(my)
}

// processTouchPointers taps for every touch that ended since the last frame,
// at its last known position.
func (p *Prompt) processTouchPointers() {
	in := &p.input
	if in.touchPos == nil {
		in.touchPos = make(map[ebiten.TouchID]Vec2, maxTouches)
	}

	in.touchIDs = ebiten.AppendTouchIDs(in.touchIDs[:0])
	for _, id := range in.touchIDs {
		x, y := ebiten.TouchPosition(id)
		in.touchPos[id] = Vec2{float64(x), float64(y)}
	}

	for _, prev := range in.prevTouchIDs {
		if containsTouch(in.touchIDs, prev) {
			continue
		}
		pos := in.touchPos[prev]
		delete(in.touchPos, prev)
		p.Tap(pos.X, pos.Y)
	}

	in.prevTouchIDs = append(in.prevTouchIDs[:0], in.touchIDs...)
}

// processBackKey treats an Escape press as a back action.
func (p *Prompt) processBackKey() {
	in := &p.input
	pressed := ebiten.IsKeyPressed(ebiten.KeyEscape)
	if pressed && !in.backDown {
		p.Back()
	}
	in.backDown = pressed
}

func containsTouch(ids []ebiten.TouchID, id ebiten.TouchID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
