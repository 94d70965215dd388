package spotlight

type syntheticKind uint8

const (
	syntheticTap syntheticKind = iota
	syntheticBack
)

// syntheticEvent represents a single injected input event in screen
// coordinates, the same space the prompt's layout uses.
type syntheticEvent struct {
	kind syntheticKind
	x, y float64
}

// InjectTap queues a tap at the given screen coordinates. The event is
// consumed at the end of the next Update, after the animation has been
// sampled, exactly like a tap delivered by the host.
func (p *Prompt) InjectTap(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticEvent{kind: syntheticTap, x: x, y: y})
}

// InjectBack queues a back action.
func (p *Prompt) InjectBack() {
	p.injectQueue = append(p.injectQueue, syntheticEvent{kind: syntheticBack})
}

// PendingInput reports how many injected events have not been consumed.
func (p *Prompt) PendingInput() int {
	return len(p.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it to
// Tap or Back. Returns true if an event was consumed.
func (p *Prompt) processInjectedInput() bool {
	if len(p.injectQueue) == 0 {
		return false
	}
	evt := p.injectQueue[0]
	copy(p.injectQueue, p.injectQueue[1:])
	p.injectQueue = p.injectQueue[:len(p.injectQueue)-1]

	switch evt.kind {
	case syntheticTap:
		p.Tap(evt.x, evt.y)
	case syntheticBack:
		p.Back()
	}
	return true
}
