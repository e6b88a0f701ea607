package progression

import (
	"time"

	"github.com/alexisbeaulieu97/glint/internal/restart"
	glinterrors "github.com/alexisbeaulieu97/glint/pkg/errors"
)

// Typing defaults.
const (
	DefaultTypeSpeed         = 20.0
	DefaultDeleteSpeed       = 30.0
	DefaultPauseBeforeDelete = 1500 * time.Millisecond
)

// TypingConfig parameterizes the typewriter engine.
type TypingConfig struct {
	// Texts are typed in order. A single text without DeleteAfter stays on
	// screen once typed.
	Texts []string
	// Speed and DeleteSpeed are in characters per second.
	Speed       float64
	DeleteSpeed float64
	// PauseBeforeDelete is how long a fully typed text stays before deletion.
	PauseBeforeDelete time.Duration
	// PauseBetween separates an emptied text from the next one; zero means one
	// typing interval.
	PauseBetween time.Duration
	DeleteAfter  bool
	Loop         bool
}

type typingPhase int

const (
	phaseTyping typingPhase = iota
	phaseDeleting
	phaseFinished
)

// Typing types texts one character at a time and optionally deletes them.
type Typing struct {
	cfg   TypingConfig
	texts [][]rune
	err   error

	index int
	count int
	phase typingPhase
}

// NewTyping builds a typing engine, applying defaults for unset speeds.
func NewTyping(cfg TypingConfig) *Typing {
	if cfg.Speed <= 0 {
		cfg.Speed = DefaultTypeSpeed
	}
	if cfg.DeleteSpeed <= 0 {
		cfg.DeleteSpeed = DefaultDeleteSpeed
	}
	if cfg.PauseBeforeDelete < 0 {
		cfg.PauseBeforeDelete = 0
	}

	t := &Typing{cfg: cfg}
	empty := true
	for _, text := range cfg.Texts {
		runes := []rune(text)
		if len(runes) > 0 {
			empty = false
		}
		t.texts = append(t.texts, runes)
	}
	switch {
	case len(t.texts) == 0:
		t.err = glinterrors.NewConfigError("", "texts", "no texts to type")
	case empty:
		t.err = glinterrors.NewConfigError("", "texts", "every text is empty")
	}
	return t
}

// Kind reports KindTyping.
func (t *Typing) Kind() Kind { return KindTyping }

// Err reports a configuration problem.
func (t *Typing) Err() error { return t.err }

// Index is the position of the text currently being typed or deleted.
func (t *Typing) Index() int { return t.index }

// Deleting reports whether the engine is removing characters.
func (t *Typing) Deleting() bool { return t.phase == phaseDeleting }

// Begin restarts from the first text with nothing typed.
func (t *Typing) Begin() Step {
	t.index = 0
	t.count = 0
	if t.err != nil {
		t.phase = phaseFinished
		t.count = len(t.current())
		return done
	}
	t.phase = phaseTyping
	return next(t.typeInterval())
}

// Advance types or deletes one character.
func (t *Typing) Advance() Step {
	switch t.phase {
	case phaseTyping:
		if t.count < len(t.current()) {
			t.count++
		}
		if t.count < len(t.current()) {
			return next(t.typeInterval())
		}
		if t.shouldDelete() {
			t.phase = phaseDeleting
			return next(t.cfg.PauseBeforeDelete)
		}
		t.phase = phaseFinished
		return done
	case phaseDeleting:
		if t.count > 0 {
			t.count--
		}
		if t.count > 0 {
			return next(intervalFor(t.cfg.DeleteSpeed))
		}
		nextIndex, ok := restart.NextIndex(t.index, len(t.texts), t.cfg.Loop)
		if !ok {
			t.phase = phaseFinished
			return done
		}
		t.index = nextIndex
		t.phase = phaseTyping
		if t.cfg.PauseBetween > 0 {
			return next(t.cfg.PauseBetween)
		}
		return next(t.typeInterval())
	default:
		return done
	}
}

// Display is the typed prefix of the current text.
func (t *Typing) Display() string {
	current := t.current()
	if t.count > len(current) {
		return string(current)
	}
	return string(current[:t.count])
}

// Initial is the empty string shown before typing starts.
func (t *Typing) Initial() string { return "" }

// Final is the first text fully typed.
func (t *Typing) Final() string {
	if len(t.texts) == 0 {
		return ""
	}
	return string(t.texts[0])
}

// shouldDelete reports whether the fully typed current text gets erased.
// Every text but the last in a non-looping list is erased to make room for
// the next; the last one only when DeleteAfter asks for it.
func (t *Typing) shouldDelete() bool {
	if t.cfg.DeleteAfter {
		return true
	}
	if len(t.texts) < 2 {
		return false
	}
	return t.cfg.Loop || t.index < len(t.texts)-1
}

func (t *Typing) current() []rune {
	if t.index < 0 || t.index >= len(t.texts) {
		return nil
	}
	return t.texts[t.index]
}

func (t *Typing) typeInterval() time.Duration {
	return intervalFor(t.cfg.Speed)
}

var _ Engine = (*Typing)(nil)
