package progression

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"

	glinterrors "github.com/alexisbeaulieu97/glint/pkg/errors"
)

// Granularity selects how reveal text is split into animated units.
type Granularity int

const (
	ByCharacter Granularity = iota
	ByWord
	ByLine
)

// String returns the config spelling of the granularity.
func (g Granularity) String() string {
	switch g {
	case ByCharacter:
		return "character"
	case ByWord:
		return "word"
	case ByLine:
		return "line"
	default:
		return fmt.Sprintf("Granularity(%d)", int(g))
	}
}

// ParseGranularity accepts character|char|letter, word and line.
func ParseGranularity(s string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "character", "char", "letter":
		return ByCharacter, nil
	case "word":
		return ByWord, nil
	case "line":
		return ByLine, nil
	default:
		return ByCharacter, fmt.Errorf("unknown reveal granularity %q", s)
	}
}

// Reveal defaults.
const (
	DefaultRevealStagger  = 30 * time.Millisecond
	DefaultRevealDuration = 500 * time.Millisecond
)

// Unit is one piece of split text. Whitespace units carry no stagger slot of
// their own and appear together with the slot before them (or the first slot
// for leading whitespace).
type Unit struct {
	Text  string
	Slot  int
	Space bool
	Delay time.Duration
}

// SplitUnits splits text according to g. Joining the Text of every returned
// unit reproduces text exactly.
func SplitUnits(text string, g Granularity) []Unit {
	var units []Unit
	slot := -1
	add := func(piece string, space bool) {
		if piece == "" {
			return
		}
		if !space {
			slot++
			units = append(units, Unit{Text: piece, Slot: slot})
			return
		}
		units = append(units, Unit{Text: piece, Slot: max(slot, 0), Space: true})
	}

	switch g {
	case ByLine:
		lines := strings.SplitAfter(text, "\n")
		for _, line := range lines {
			body := strings.TrimSuffix(line, "\n")
			if strings.TrimSpace(body) == "" {
				add(line, true)
				continue
			}
			add(body, false)
			if len(body) < len(line) {
				add("\n", true)
			}
		}
	case ByWord:
		var b strings.Builder
		inSpace := false
		for _, r := range text {
			isSpace := unicode.IsSpace(r)
			if b.Len() > 0 && isSpace != inSpace {
				add(b.String(), inSpace)
				b.Reset()
			}
			inSpace = isSpace
			b.WriteRune(r)
		}
		add(b.String(), inSpace)
	default:
		for _, r := range text {
			add(string(r), unicode.IsSpace(r))
		}
	}
	return units
}

// RevealConfig parameterizes the staggered reveal engine.
type RevealConfig struct {
	Text        string
	Granularity Granularity
	// Stagger offsets consecutive character or word slots.
	Stagger time.Duration
	// LineStagger offsets consecutive lines; zero falls back to Stagger.
	LineStagger time.Duration
	// Duration is each unit's own transition length.
	Duration time.Duration
	// Delay shifts the whole schedule.
	Delay time.Duration
	// Direction only affects how a renderer moves units in.
	Direction string
}

// Reveal shows units of text one stagger slot at a time.
type Reveal struct {
	cfg    RevealConfig
	units  []Unit
	events []time.Duration
	total  time.Duration
	err    error

	pos     int
	elapsed time.Duration
	shown   int
}

// NewReveal splits the text and computes the reveal schedule.
func NewReveal(cfg RevealConfig) *Reveal {
	if cfg.Stagger <= 0 {
		cfg.Stagger = DefaultRevealStagger
	}
	if cfg.LineStagger <= 0 {
		cfg.LineStagger = cfg.Stagger
	}
	if cfg.Duration < 0 {
		cfg.Duration = 0
	}
	if cfg.Delay < 0 {
		cfg.Delay = 0
	}

	r := &Reveal{cfg: cfg, units: SplitUnits(cfg.Text, cfg.Granularity)}
	slots := 0
	for i := range r.units {
		r.units[i].Delay = r.slotDelay(r.units[i].Slot)
		if !r.units[i].Space {
			slots++
		}
	}
	if slots == 0 {
		r.err = glinterrors.NewConfigError("", "text", "nothing to reveal")
		return r
	}

	seen := make(map[time.Duration]struct{}, slots+1)
	for _, u := range r.units {
		if u.Space {
			continue
		}
		if _, ok := seen[u.Delay]; !ok {
			seen[u.Delay] = struct{}{}
			r.events = append(r.events, u.Delay)
		}
	}
	r.total = r.slotDelay(slots-1) + cfg.Duration
	if _, ok := seen[r.total]; !ok {
		r.events = append(r.events, r.total)
	}
	sort.Slice(r.events, func(i, j int) bool { return r.events[i] < r.events[j] })
	return r
}

// slotDelay is the reveal offset of slot i. Word slots count words only, so
// a long word delays its successor no more than a short one.
func (r *Reveal) slotDelay(slot int) time.Duration {
	stagger := r.cfg.Stagger
	if r.cfg.Granularity == ByLine {
		stagger = r.cfg.LineStagger
	}
	return r.cfg.Delay + time.Duration(slot)*stagger
}

// Kind reports KindReveal.
func (r *Reveal) Kind() Kind { return KindReveal }

// Err reports a configuration problem.
func (r *Reveal) Err() error { return r.err }

// Units exposes the split text with each unit's reveal delay.
func (r *Reveal) Units() []Unit {
	return append([]Unit(nil), r.units...)
}

// Total is the time from Begin until the last unit finishes its transition.
func (r *Reveal) Total() time.Duration { return r.total }

// Direction returns the configured entry direction.
func (r *Reveal) Direction() string { return r.cfg.Direction }

// Revealed reports whether unit i is visible.
func (r *Reveal) Revealed(i int) bool {
	return i >= 0 && i < r.shown
}

// Begin hides every unit and schedules the first reveal.
func (r *Reveal) Begin() Step {
	r.pos = 0
	r.elapsed = 0
	r.shown = 0
	if r.err != nil {
		r.shown = len(r.units)
		return done
	}
	return next(r.events[0])
}

// Advance applies the next scheduled reveal time.
func (r *Reveal) Advance() Step {
	if r.pos >= len(r.events) {
		return done
	}
	r.elapsed = r.events[r.pos]
	for r.shown < len(r.units) && r.units[r.shown].Delay <= r.elapsed {
		r.shown++
	}
	r.pos++
	if r.pos >= len(r.events) {
		r.shown = len(r.units)
		return done
	}
	return next(r.events[r.pos] - r.elapsed)
}

// Display joins the revealed units.
func (r *Reveal) Display() string {
	var b strings.Builder
	for i := 0; i < r.shown && i < len(r.units); i++ {
		b.WriteString(r.units[i].Text)
	}
	return b.String()
}

// Progress is elapsed time over the full schedule.
func (r *Reveal) Progress() float64 {
	if r.total <= 0 {
		if r.shown >= len(r.units) {
			return 1
		}
		return 0
	}
	return min(1, float64(r.elapsed)/float64(r.total))
}

// Initial is the empty string shown before the first unit.
func (r *Reveal) Initial() string { return "" }

// Final is the full text.
func (r *Reveal) Final() string { return r.cfg.Text }

var (
	_ Engine     = (*Reveal)(nil)
	_ Progresser = (*Reveal)(nil)
)
