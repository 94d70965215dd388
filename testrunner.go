package spotlight

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Frames int     `json:"frames,omitempty"`
	State  string  `json:"state,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences show calls, injected input and state expectations
// across frames for automated testing of a prompt. Attach it with
// Prompt.SetTestRunner; it runs at the start of every Update.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	failures  []error
}

var scriptJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Prompt via SetTestRunner.
//
// Supported actions: show, tap (x, y), back, dismiss, finish, wait (frames),
// expect (state, e.g. "REVEALED").
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := scriptJSON.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "show", "tap", "back", "dismiss", "finish", "wait":
		case "expect":
			if _, ok := parseState(st.State); !ok {
				return nil, fmt.Errorf("parse test script: step %d: unknown state %q", i, st.State)
			}
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the prompt.
func (p *Prompt) SetTestRunner(runner *TestRunner) {
	p.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Failures returns the errors collected from show/dismiss/finish calls and
// failed expectations, in step order.
func (r *TestRunner) Failures() []error {
	return r.failures
}

// step advances the test runner by one frame.
func (r *TestRunner) step(p *Prompt) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(p.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "show":
		r.check(st, p.Show())
	case "tap":
		p.InjectTap(st.X, st.Y)
	case "back":
		p.InjectBack()
	case "dismiss":
		r.check(st, p.Dismiss())
	case "finish":
		r.check(st, p.Finish())
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "expect":
		want, _ := parseState(st.State)
		if got := p.State(); got != want {
			r.check(st, fmt.Errorf("state = %s, want %s", got, want))
		}
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(p.injectQueue) == 0 {
		r.done = true
	}
}

func (r *TestRunner) check(st testStep, err error) {
	if err != nil {
		r.failures = append(r.failures, fmt.Errorf("step %d (%s): %w", r.cursor-1, st.Action, err))
	}
}

func parseState(name string) (State, bool) {
	for i, n := range stateNames {
		if n == name {
			return State(i), true
		}
	}
	return 0, false
}
