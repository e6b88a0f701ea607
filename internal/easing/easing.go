// Package easing provides curves that map linear progress t in [0, 1] to
// eased progress. Every curve returns exactly 0 at t <= 0 and exactly 1 at
// t >= 1 so numeric animations land on their target value.
package easing

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/harmonica"
)

// Curve maps linear progress to eased progress.
type Curve func(t float64) float64

// Linear returns t unchanged.
func Linear(t float64) float64 {
	return clampUnit(t)
}

// Standard curves, equivalent to their CSS namesakes.
var (
	Ease      = CubicBezier(0.25, 0.1, 0.25, 1.0)
	EaseIn    = CubicBezier(0.42, 0.0, 1.0, 1.0)
	EaseOut   = CubicBezier(0.0, 0.0, 0.58, 1.0)
	EaseInOut = CubicBezier(0.42, 0.0, 0.58, 1.0)
)

// EaseOutExpo decelerates sharply; counters use it by default.
func EaseOutExpo(t float64) float64 {
	if t >= 1 {
		return 1
	}
	if t <= 0 {
		return 0
	}
	return 1 - math.Pow(2, -10*t)
}

// CubicBezier returns a curve matching CSS cubic-bezier(x1, y1, x2, y2).
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		for range 8 {
			x := sample(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return sample(y1, y2, clampUnit(u))
			}
			dx := sampleDerivative(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// Newton failed to converge; bisect inside [0, 1].
		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for range 16 {
			x := sample(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}

		return sample(y1, y2, u)
	}
}

// Spring returns a curve traced by a damped harmonic oscillator moving from
// 0 to 1. Under-damped springs (damping < 1) overshoot before settling.
func Spring(frequency, damping float64) Curve {
	const frames = 120
	spring := harmonica.NewSpring(harmonica.FPS(frames), frequency, damping)
	samples := make([]float64, frames+1)
	pos, vel := 0.0, 0.0
	for i := 1; i <= frames; i++ {
		pos, vel = spring.Update(pos, vel, 1.0)
		samples[i] = pos
	}
	samples[frames] = 1

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		x := t * frames
		i := int(x)
		frac := x - float64(i)
		return samples[i] + (samples[i+1]-samples[i])*frac
	}
}

var named = map[string]Curve{
	"linear":        Linear,
	"ease":          Ease,
	"ease-in":       EaseIn,
	"ease-out":      EaseOut,
	"ease-in-out":   EaseInOut,
	"ease-out-expo": EaseOutExpo,
	"spring":        Spring(6.0, 0.5),
}

// ByName looks up a curve by its config name. An empty name selects
// ease-out-expo.
func ByName(name string) (Curve, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, "_", "-")
	if key == "" {
		return EaseOutExpo, nil
	}
	if curve, ok := named[key]; ok {
		return curve, nil
	}
	return nil, fmt.Errorf("unknown easing curve %q", name)
}

// Names lists the curve names accepted by ByName.
func Names() []string {
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sample(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func sampleDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
