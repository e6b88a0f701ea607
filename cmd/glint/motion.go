package main

import (
	"os"

	"golang.org/x/term"

	"github.com/alexisbeaulieu97/glint/internal/trigger"
)

var stdoutIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// motionPreference resolves the reduced-motion preference once per command.
// interactive is false when nobody watches the frames.
func motionPreference(forced, interactive bool) bool {
	if forced {
		return true
	}
	return trigger.DetectMotionPreference(os.LookupEnv, interactive)
}
