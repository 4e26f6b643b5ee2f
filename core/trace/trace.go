// Package trace records what happened during one reasoning run: an ordered,
// append-only sequence of [Step] values handed to the caller on completion
// for inspection and debugging.
package trace

import "github.com/leofalp/reactor/core/parse"

// Step is one iteration's record. It is a plain value and is never modified
// after being appended to a [Trace].
type Step struct {
	// Index is the zero-based iteration number.
	Index int

	// Response is the raw model text for this iteration.
	Response string

	// Action is the parsed tool invocation, or nil for reasoning-only and
	// final-answer steps.
	Action *parse.Action

	// Observation is the tool result text, empty when Action is nil.
	Observation string

	// Final marks the step that carried the final answer.
	Final bool
}

// Trace is the ordered record of a single run. It grows monotonically while
// the run executes and is read-only afterwards. It is owned by one run and
// is not safe for concurrent mutation.
type Trace struct {
	steps []Step
}

// New returns an empty trace.
func New() *Trace {
	return &Trace{steps: []Step{}}
}

// Append adds one step to the end of the trace.
func (t *Trace) Append(step Step) {
	t.steps = append(t.steps, step)
}

// Steps returns a copy of the recorded steps, so callers cannot disturb the
// run's record.
func (t *Trace) Steps() []Step {
	out := make([]Step, len(t.steps))
	copy(out, t.steps)
	return out
}

// Len returns the number of recorded steps.
func (t *Trace) Len() int {
	return len(t.steps)
}

// Last returns the most recent step, or false when the trace is empty.
func (t *Trace) Last() (Step, bool) {
	if len(t.steps) == 0 {
		return Step{}, false
	}
	return t.steps[len(t.steps)-1], true
}
