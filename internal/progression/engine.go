// Package progression implements the time-based algorithms that turn an
// animation's parameters into a sequence of display values.
//
// An Engine is a pure state machine: it never touches a clock. The
// lifecycle controller calls Begin once per run, then Advance each time the
// delay reported by the previous Step elapses, until a Step reports Done.
package progression

import (
	"fmt"
	"time"
)

// Kind identifies an engine family.
type Kind int

const (
	KindTyping Kind = iota
	KindReveal
	KindCounter
	KindMorph
	KindGlitch
)

// String returns the config spelling of the kind.
func (k Kind) String() string {
	switch k {
	case KindTyping:
		return "typing"
	case KindReveal:
		return "reveal"
	case KindCounter:
		return "counter"
	case KindMorph:
		return "morph"
	case KindGlitch:
		return "glitch"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Step is the outcome of one tick: either the delay until the next tick, or
// the terminal signal.
type Step struct {
	Delay time.Duration
	Done  bool
}

func next(d time.Duration) Step {
	if d < 0 {
		d = 0
	}
	return Step{Delay: d}
}

var done = Step{Done: true}

// Engine is one progression algorithm.
type Engine interface {
	Kind() Kind
	// Begin resets progress to the initial display and returns the delay to
	// the first tick. A Done step means the configuration cannot animate and
	// the engine already shows its final value.
	Begin() Step
	// Advance applies one tick.
	Advance() Step
	// Display is the value to render right now.
	Display() string
	// Initial is the pre-animation display restored on reset.
	Initial() string
	// Final is the terminal display used when animation is bypassed.
	Final() string
	// Err reports a configuration problem, or nil.
	Err() error
}

// Progresser is implemented by engines whose completion can be expressed as
// a fraction in [0, 1].
type Progresser interface {
	Progress() float64
}

func intervalFor(perSecond float64) time.Duration {
	if perSecond <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / perSecond)
}
