package progression

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
	"unicode"

	glinterrors "github.com/alexisbeaulieu97/glint/pkg/errors"
)

// Intensity controls how often glitch corruption strikes.
type Intensity int

const (
	IntensityLow Intensity = iota
	IntensityMedium
	IntensityHigh
)

// ParseIntensity accepts low, medium and high.
func ParseIntensity(s string) (Intensity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return IntensityLow, nil
	case "", "medium":
		return IntensityMedium, nil
	case "high":
		return IntensityHigh, nil
	default:
		return IntensityMedium, fmt.Errorf("unknown glitch intensity %q", s)
	}
}

// Interval is the delay between corruption ticks.
func (i Intensity) Interval() time.Duration {
	switch i {
	case IntensityLow:
		return 200 * time.Millisecond
	case IntensityHigh:
		return 50 * time.Millisecond
	default:
		return 100 * time.Millisecond
	}
}

// Glitch defaults.
const (
	DefaultGlitchGlyphs   = "!<>-_\\/[]{}~=+*^?#@$%&"
	DefaultGlitchRatio    = 0.2
	DefaultRestoreChance  = 0.3
	DefaultGlitchDuration = time.Second
)

// GlitchConfig parameterizes continuous character corruption.
type GlitchConfig struct {
	Text      string
	Intensity Intensity
	// Continuous keeps corrupting until the lifecycle cancels it. Otherwise
	// the text is restored and the engine completes after Duration.
	Continuous bool
	Duration   time.Duration
	Glyphs     string
	// Ratio is the chance that each character is replaced on a tick.
	Ratio float64
	// RestoreChance is the chance that a corruption tick is followed, after
	// RestoreDelay, by a tick showing the original text.
	RestoreChance float64
	RestoreDelay  time.Duration
	Seed          uint64
}

// Glitch corrupts random characters of its text on a fixed interval.
type Glitch struct {
	cfg    GlitchConfig
	orig   []rune
	glyphs []rune
	rng    *rand.Rand
	err    error

	current   []rune
	elapsed   time.Duration
	lastDelay time.Duration
	restoring bool
}

// NewGlitch builds a glitch engine, applying defaults.
func NewGlitch(cfg GlitchConfig) *Glitch {
	if cfg.Glyphs == "" {
		cfg.Glyphs = DefaultGlitchGlyphs
	}
	if cfg.Ratio <= 0 || cfg.Ratio > 1 {
		cfg.Ratio = DefaultGlitchRatio
	}
	if cfg.RestoreChance <= 0 || cfg.RestoreChance > 1 {
		cfg.RestoreChance = DefaultRestoreChance
	}
	if cfg.RestoreDelay <= 0 {
		cfg.RestoreDelay = cfg.Intensity.Interval() / 2
	}
	if !cfg.Continuous && cfg.Duration <= 0 {
		cfg.Duration = DefaultGlitchDuration
	}

	g := &Glitch{
		cfg:    cfg,
		orig:   []rune(cfg.Text),
		glyphs: []rune(cfg.Glyphs),
		rng:    newRand(cfg.Seed),
	}
	g.current = append([]rune(nil), g.orig...)
	if strings.TrimSpace(cfg.Text) == "" {
		g.err = glinterrors.NewConfigError("", "text", "nothing to glitch")
	}
	return g
}

// Kind reports KindGlitch.
func (g *Glitch) Kind() Kind { return KindGlitch }

// Err reports a configuration problem.
func (g *Glitch) Err() error { return g.err }

// Corrupted reports whether the display differs from the original text.
func (g *Glitch) Corrupted() bool { return string(g.current) != string(g.orig) }

// Begin restores the original text and schedules the first corruption.
func (g *Glitch) Begin() Step {
	g.current = append(g.current[:0], g.orig...)
	g.elapsed = 0
	g.restoring = false
	if g.err != nil {
		return done
	}
	g.lastDelay = g.cfg.Intensity.Interval()
	return next(g.lastDelay)
}

// Advance corrupts the current text or restores the original.
func (g *Glitch) Advance() Step {
	if g.err != nil {
		return done
	}
	g.elapsed += g.lastDelay
	if !g.cfg.Continuous && g.elapsed >= g.cfg.Duration {
		g.current = append(g.current[:0], g.orig...)
		return done
	}

	if g.restoring {
		g.current = append(g.current[:0], g.orig...)
		g.restoring = false
		g.lastDelay = g.cfg.Intensity.Interval()
		return next(g.lastDelay)
	}

	for i, r := range g.current {
		if unicode.IsSpace(r) {
			continue
		}
		if g.rng.Float64() < g.cfg.Ratio {
			g.current[i] = g.glyphs[g.rng.IntN(len(g.glyphs))]
		}
	}
	if g.rng.Float64() < g.cfg.RestoreChance {
		g.restoring = true
		g.lastDelay = g.cfg.RestoreDelay
	} else {
		g.lastDelay = g.cfg.Intensity.Interval()
	}
	return next(g.lastDelay)
}

// Display is the possibly corrupted text.
func (g *Glitch) Display() string { return string(g.current) }

// Initial is the original text.
func (g *Glitch) Initial() string { return g.cfg.Text }

// Final is the original text.
func (g *Glitch) Final() string { return g.cfg.Text }

var _ Engine = (*Glitch)(nil)
