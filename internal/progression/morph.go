package progression

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/glint/internal/restart"
	glinterrors "github.com/alexisbeaulieu97/glint/pkg/errors"
)

// Morph defaults.
const (
	DefaultMorphSteps    = 10
	DefaultMorphInterval = 50 * time.Millisecond
	DefaultMorphHold     = 3 * time.Second
)

// GenerateMorphSteps returns steps+1 frames converging from a to b. Frame 0
// is a and the last frame is b exactly; in between, each position shows b's
// character with probability step/steps, otherwise a's. When the strings
// differ in length the missing side contributes nothing at that position.
func GenerateMorphSteps(a, b string, steps int, rng *rand.Rand) []string {
	if steps < 1 {
		steps = 1
	}
	if rng == nil {
		rng = newRand(0)
	}
	from, to := []rune(a), []rune(b)
	width := max(len(from), len(to))

	frames := make([]string, 0, steps+1)
	frames = append(frames, a)
	for step := 1; step < steps; step++ {
		p := float64(step) / float64(steps)
		var sb strings.Builder
		for i := 0; i < width; i++ {
			if rng.Float64() < p {
				if i < len(to) {
					sb.WriteRune(to[i])
				}
				continue
			}
			if i < len(from) {
				sb.WriteRune(from[i])
			}
		}
		frames = append(frames, sb.String())
	}
	frames = append(frames, b)
	return frames
}

// MorphConfig parameterizes text-to-text morphing through a list.
type MorphConfig struct {
	Texts []string
	// Steps is the number of morph frames between two texts.
	Steps int
	// StepInterval separates morph frames.
	StepInterval time.Duration
	// Hold is how long each text rests before morphing onward.
	Hold time.Duration
	// Loop morphs from the last text back to the first.
	Loop bool
	// Seed fixes the random source; zero seeds from the clock.
	Seed uint64
}

// Morph cycles through texts, morphing between neighbours.
type Morph struct {
	cfg MorphConfig
	rng *rand.Rand
	err error

	index  int
	target int
	frames []string
	frame  int
}

// NewMorph builds a morph engine, applying defaults.
func NewMorph(cfg MorphConfig) *Morph {
	if cfg.Steps <= 0 {
		cfg.Steps = DefaultMorphSteps
	}
	if cfg.StepInterval <= 0 {
		cfg.StepInterval = DefaultMorphInterval
	}
	if cfg.Hold < 0 {
		cfg.Hold = 0
	}
	m := &Morph{cfg: cfg, rng: newRand(cfg.Seed)}
	if len(cfg.Texts) == 0 {
		m.err = glinterrors.NewConfigError("", "texts", "no texts to morph")
	}
	return m
}

// Kind reports KindMorph.
func (m *Morph) Kind() Kind { return KindMorph }

// Err reports a configuration problem.
func (m *Morph) Err() error { return m.err }

// Index is the text currently shown, or being morphed away from.
func (m *Morph) Index() int { return m.index }

// Morphing reports whether intermediate frames are on screen.
func (m *Morph) Morphing() bool { return m.frames != nil }

// Begin shows the first text and waits Hold before morphing.
func (m *Morph) Begin() Step {
	m.index, m.target, m.frame, m.frames = 0, 0, 0, nil
	if m.err != nil {
		return done
	}
	if _, ok := restart.NextIndex(0, len(m.cfg.Texts), m.cfg.Loop); !ok {
		return done
	}
	return next(m.cfg.Hold)
}

// Advance starts a morph or shows its next frame.
func (m *Morph) Advance() Step {
	if m.err != nil {
		return done
	}
	if m.frames == nil {
		target, ok := restart.NextIndex(m.index, len(m.cfg.Texts), m.cfg.Loop)
		if !ok {
			return done
		}
		m.target = target
		m.frames = GenerateMorphSteps(m.cfg.Texts[m.index], m.cfg.Texts[target], m.cfg.Steps, m.rng)
		m.frame = 0
	}

	m.frame++
	if m.frame < len(m.frames)-1 {
		return next(m.cfg.StepInterval)
	}

	m.index = m.target
	m.frames = nil
	m.frame = 0
	if _, ok := restart.NextIndex(m.index, len(m.cfg.Texts), m.cfg.Loop); !ok {
		return done
	}
	return next(m.cfg.Hold)
}

// Display is the current frame, or the resting text.
func (m *Morph) Display() string {
	if m.frames != nil {
		return m.frames[m.frame]
	}
	if m.index < len(m.cfg.Texts) {
		return m.cfg.Texts[m.index]
	}
	return ""
}

// Initial is the first text.
func (m *Morph) Initial() string { return m.Final() }

// Final is the first text: a morph list without motion shows its head.
func (m *Morph) Final() string {
	if len(m.cfg.Texts) == 0 {
		return ""
	}
	return m.cfg.Texts[0]
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

var _ Engine = (*Morph)(nil)
