package trigger

// Signals are the live, level-triggered inputs delivered by the view layer.
type Signals struct {
	Visible       bool
	Hovered       bool
	Focused       bool
	Active        bool
	Disabled      bool
	ReducedMotion bool
}

// Resolve reports whether a subject with the given mode should be animating
// right now. It has no side effects.
func Resolve(mode Mode, s Signals) bool {
	if Bypass(s) {
		return false
	}
	return Matches(mode, s)
}

// Matches reports whether the mode's own condition holds, ignoring the
// accessibility gate.
func Matches(mode Mode, s Signals) bool {
	switch mode {
	case Immediate:
		return true
	case InView:
		return s.Visible
	case Hover:
		return s.Hovered
	case Focus:
		return s.Focused
	case Manual:
		return s.Active
	default:
		return false
	}
}
