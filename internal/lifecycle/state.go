package lifecycle

import "fmt"

// State is the lifecycle phase of one animated subject.
//
//	         signal on              final tick
//	Idle ─────────────────► Running ───────────► Completed
//	  ▲                        │                     │
//	  └────── reset (trigger off, policy Reset) ─────┘
type State int

const (
	Idle State = iota
	Running
	Completed
)

// String returns a lowercase name for logs and views.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Completed:
		return "completed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Output is what a view adapter renders each time the subject changes.
type Output struct {
	Text      string
	Animating bool
	State     State
}
