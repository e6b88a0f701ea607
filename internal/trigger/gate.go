package trigger

import (
	"strconv"
	"strings"
)

// Bypass reports whether animation must be skipped entirely and the terminal
// value rendered instead. It is checked before any tick is scheduled.
func Bypass(s Signals) bool {
	return s.Disabled || s.ReducedMotion
}

// MotionEnvVars are consulted in order by DetectMotionPreference.
var MotionEnvVars = []string{"GLINT_REDUCED_MOTION", "REDUCED_MOTION"}

// DetectMotionPreference derives the process-wide reduced-motion preference.
// lookup is typically os.LookupEnv; a non-interactive output also counts as a
// request for reduced motion since nobody is watching the frames.
func DetectMotionPreference(lookup func(string) (string, bool), interactive bool) bool {
	if lookup != nil {
		for _, key := range MotionEnvVars {
			value, ok := lookup(key)
			if !ok {
				continue
			}
			if enabled, known := parseFlag(value); known {
				return enabled
			}
		}
	}
	return !interactive
}

func parseFlag(value string) (bool, bool) {
	value = strings.TrimSpace(strings.ToLower(value))
	switch value {
	case "":
		return false, false
	case "reduce", "yes", "on":
		return true, true
	case "no-preference", "no", "off":
		return false, true
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, false
	}
	return parsed, true
}
