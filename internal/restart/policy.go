// Package restart decides what happens to an animation when it completes or
// when its trigger stops holding.
package restart

import "github.com/alexisbeaulieu97/glint/internal/trigger"

// Action is a restart decision.
type Action int

const (
	// Ignore leaves the lifecycle untouched.
	Ignore Action = iota
	// Reset cancels any pending tick, restores the initial display and
	// returns the lifecycle to Idle so the next trigger starts from scratch.
	Reset
	// Hold keeps the completed state; completion is terminal.
	Hold
	// Repeat runs the animation again from its initial state.
	Repeat
)

// String returns a lowercase name for logs.
func (a Action) String() string {
	switch a {
	case Ignore:
		return "ignore"
	case Reset:
		return "reset"
	case Hold:
		return "hold"
	case Repeat:
		return "repeat"
	default:
		return "unknown"
	}
}

// Policy is the restart configuration of one subject.
type Policy struct {
	Mode trigger.Mode
	// Repeat re-arms InView subjects: leaving view resets them and entering
	// again replays. Without it the first run is the only run.
	Repeat bool
	// Cycle replays immediately after every completion.
	Cycle bool
}

// OnSignalLost is consulted when the trigger condition stops holding while
// the gate is open.
func (p Policy) OnSignalLost() Action {
	switch p.Mode {
	case trigger.Manual, trigger.Hover, trigger.Focus:
		return Reset
	case trigger.InView:
		if p.Repeat {
			return Reset
		}
		return Ignore
	default:
		return Ignore
	}
}

// OnComplete is consulted after the engine reports its terminal tick.
func (p Policy) OnComplete() Action {
	if p.Cycle {
		return Repeat
	}
	return Hold
}

// NextIndex returns the item that follows current in a list of count items.
// With loop the index wraps to 0 after the last item; without it ok is false
// once the last item has been reached.
func NextIndex(current, count int, loop bool) (next int, ok bool) {
	if count <= 0 {
		return 0, false
	}
	if current+1 < count {
		return current + 1, true
	}
	if loop {
		return 0, true
	}
	return current, false
}
