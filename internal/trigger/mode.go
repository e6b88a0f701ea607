package trigger

import (
	"fmt"
	"strings"
)

// Mode declares the condition under which a subject is allowed to animate.
// A subject's mode is fixed for its lifetime.
type Mode int

const (
	// Immediate animates as soon as the subject is mounted.
	Immediate Mode = iota
	// InView animates while the subject is visible.
	InView
	// Hover animates while the pointer rests on the subject.
	Hover
	// Focus animates while the subject holds input focus.
	Focus
	// Manual animates while the host marks the subject active.
	Manual
)

var modeNames = map[Mode]string{
	Immediate: "immediate",
	InView:    "inview",
	Hover:     "hover",
	Focus:     "focus",
	Manual:    "manual",
}

// String returns the config spelling of the mode.
func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode converts a config string into a Mode. Matching ignores case and
// accepts "in-view" / "in_view" as aliases for "inview".
func ParseMode(s string) (Mode, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer("-", "", "_", "").Replace(normalized)
	if normalized == "" {
		return Immediate, nil
	}
	for mode, name := range modeNames {
		if name == normalized {
			return mode, nil
		}
	}
	return Immediate, fmt.Errorf("unknown trigger mode %q", s)
}
