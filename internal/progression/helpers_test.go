package progression

import "time"

type frame struct {
	At      time.Duration
	Display string
}

// play drives an engine the way the lifecycle does and records every display
// value together with the virtual time it appeared at. It stops after limit
// ticks when the engine never finishes.
func play(e Engine, limit int) (frames []frame, finished bool) {
	var at time.Duration
	step := e.Begin()
	frames = append(frames, frame{At: at, Display: e.Display()})
	for i := 0; i < limit && !step.Done; i++ {
		at += step.Delay
		step = e.Advance()
		frames = append(frames, frame{At: at, Display: e.Display()})
	}
	return frames, step.Done
}

func displays(frames []frame) []string {
	out := make([]string, len(frames))
	for i, f := range frames {
		out[i] = f.Display
	}
	return out
}
