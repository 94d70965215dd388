package spotlight

// State is a prompt lifecycle state. Exactly one is active at a time.
type State uint8

const (
	StateNotShown          State = iota // created, never shown or reset for re-show
	StateRevealing                      // reveal animation running
	StateRevealed                       // fully shown, waiting for input
	StateFocalPressed                   // the focal target was tapped
	StateNonFocalPressed                // a tap landed off the focal target
	StateBackButtonPressed              // the host delivered a back action
	StateDismissing                     // dismiss animation running
	StateDismissed                      // dismissed; terminal until re-shown
	StateFinishing                      // finish animation running
	StateFinished                       // finished; terminal until re-shown
	StateShowForTimeout                 // the show timeout elapsed
)

var stateNames = [...]string{
	StateNotShown:          "NOT_SHOWN",
	StateRevealing:         "REVEALING",
	StateRevealed:          "REVEALED",
	StateFocalPressed:      "FOCAL_PRESSED",
	StateNonFocalPressed:   "NON_FOCAL_PRESSED",
	StateBackButtonPressed: "BACK_BUTTON_PRESSED",
	StateDismissing:        "DISMISSING",
	StateDismissed:         "DISMISSED",
	StateFinishing:         "FINISHING",
	StateFinished:          "FINISHED",
	StateShowForTimeout:    "SHOW_FOR_TIMEOUT",
}

// String returns the state's upper-case name.
func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "UNKNOWN"
}

// IsTerminal reports whether s only accepts an explicit re-show.
func (s State) IsTerminal() bool {
	return s == StateDismissed || s == StateFinished
}

// IsAnimating reports whether s drives a progress ramp.
func (s State) IsAnimating() bool {
	return s == StateRevealing || s == StateDismissing || s == StateFinishing
}

// isInteractive reports whether taps, back actions and explicit
// dismiss/finish calls are accepted.
func (s State) isInteractive() bool {
	switch s {
	case StateRevealing, StateRevealed, StateFocalPressed, StateNonFocalPressed,
		StateBackButtonPressed, StateShowForTimeout:
		return true
	}
	return false
}

// Cause identifies the event that produced a state change.
type Cause uint8

const (
	CauseShow           Cause = iota // Show was called
	CauseAnimationEnd                // a reveal/dismiss/finish ramp completed
	CauseFocalTap                    // tap on the focal target
	CauseBackgroundTap               // tap on a clickable background
	CauseOutsideTap                  // tap outside the prompt
	CauseBack                        // back action
	CauseTimeout                     // show timeout elapsed
	CauseDismiss                     // explicit Dismiss call
	CauseFinish                      // explicit Finish call
)

var causeNames = [...]string{
	CauseShow:          "show",
	CauseAnimationEnd:  "animationEnd",
	CauseFocalTap:      "focalTap",
	CauseBackgroundTap: "backgroundTap",
	CauseOutsideTap:    "outsideTap",
	CauseBack:          "back",
	CauseTimeout:       "timeout",
	CauseDismiss:       "dismiss",
	CauseFinish:        "finish",
}

// String returns the cause name.
func (c Cause) String() string {
	if int(c) < len(causeNames) {
		return causeNames[c]
	}
	return "unknown"
}

// StateChange is delivered to listeners on every state entry.
type StateChange struct {
	PromptID string
	From     State
	To       State
	Cause    Cause
}

// --- Listener registry ---

type stateListener struct {
	id uint32
	fn func(StateChange)
}

type listenerRegistry struct {
	listeners []stateListener
	nextID    uint32
}

func (r *listenerRegistry) add(fn func(StateChange)) uint32 {
	r.nextID++
	r.listeners = append(r.listeners, stateListener{id: r.nextID, fn: fn})
	return r.nextID
}

func (r *listenerRegistry) remove(id uint32) {
	for i := range r.listeners {
		if r.listeners[i].id == id {
			copy(r.listeners[i:], r.listeners[i+1:])
			r.listeners[len(r.listeners)-1] = stateListener{}
			r.listeners = r.listeners[:len(r.listeners)-1]
			return
		}
	}
}

// emit calls every listener registered at the time of the call. Listeners
// may add or remove listeners while being called.
func (r *listenerRegistry) emit(c StateChange) {
	snapshot := append([]stateListener(nil), r.listeners...)
	for _, l := range snapshot {
		l.fn(c)
	}
}

// CallbackHandle allows removing a registered state listener.
type CallbackHandle struct {
	id  uint32
	reg *listenerRegistry
}

// Remove unregisters the listener so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	h.reg.remove(h.id)
}
