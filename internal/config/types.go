package config

import (
	"fmt"
	"time"
)

// Preset is a document of named animations.
type Preset struct {
	Version     string      `yaml:"version" toml:"version" validate:"required,semver"`
	Name        string      `yaml:"name" toml:"name" validate:"required,min=1,max=100"`
	Description string      `yaml:"description,omitempty" toml:"description"`
	Settings    Settings    `yaml:"settings,omitempty" toml:"settings"`
	Animations  []Animation `yaml:"animations" toml:"animations" validate:"required,min=1,dive"`
}

// Settings apply to every animation in the document.
type Settings struct {
	ReducedMotion bool `yaml:"reduced_motion,omitempty" toml:"reduced_motion"`
	// FrameInterval is the counter frame delay.
	FrameInterval Duration `yaml:"frame_interval,omitempty" toml:"frame_interval" validate:"min=0"`
	// Seed feeds morph and glitch animations that do not set their own.
	Seed uint64 `yaml:"seed,omitempty" toml:"seed"`
}

// Animation describes one subject: its trigger, restart behavior and the
// engine block matching Kind.
type Animation struct {
	ID         string   `yaml:"id" toml:"id" validate:"required,anim_id"`
	Kind       string   `yaml:"kind" toml:"kind" validate:"required,oneof=typing reveal counter morph glitch"`
	Trigger    string   `yaml:"trigger,omitempty" toml:"trigger" validate:"trigger"`
	Repeat     bool     `yaml:"repeat,omitempty" toml:"repeat"`
	Cycle      bool     `yaml:"cycle,omitempty" toml:"cycle"`
	CycleDelay Duration `yaml:"cycle_delay,omitempty" toml:"cycle_delay" validate:"min=0"`
	Deadline   Duration `yaml:"deadline,omitempty" toml:"deadline" validate:"min=0"`

	Typing  *TypingSpec  `yaml:"typing,omitempty" toml:"typing"`
	Reveal  *RevealSpec  `yaml:"reveal,omitempty" toml:"reveal"`
	Counter *CounterSpec `yaml:"counter,omitempty" toml:"counter"`
	Morph   *MorphSpec   `yaml:"morph,omitempty" toml:"morph"`
	Glitch  *GlitchSpec  `yaml:"glitch,omitempty" toml:"glitch"`
}

// TypingSpec configures a typewriter animation.
type TypingSpec struct {
	Texts             []string `yaml:"texts" toml:"texts" validate:"required,min=1"`
	Speed             float64  `yaml:"speed,omitempty" toml:"speed" validate:"min=0"`
	DeleteSpeed       float64  `yaml:"delete_speed,omitempty" toml:"delete_speed" validate:"min=0"`
	PauseBeforeDelete Duration `yaml:"pause_before_delete,omitempty" toml:"pause_before_delete" validate:"min=0"`
	PauseBetween      Duration `yaml:"pause_between,omitempty" toml:"pause_between" validate:"min=0"`
	DeleteAfter       bool     `yaml:"delete_after,omitempty" toml:"delete_after"`
	Loop              bool     `yaml:"loop,omitempty" toml:"loop"`
}

// RevealSpec configures a staggered reveal.
type RevealSpec struct {
	Text        string   `yaml:"text" toml:"text" validate:"required"`
	Granularity string   `yaml:"granularity,omitempty" toml:"granularity" validate:"omitempty,oneof=character char letter word line"`
	Stagger     Duration `yaml:"stagger,omitempty" toml:"stagger" validate:"min=0"`
	LineStagger Duration `yaml:"line_stagger,omitempty" toml:"line_stagger" validate:"min=0"`
	Duration    Duration `yaml:"duration,omitempty" toml:"duration" validate:"min=0"`
	Delay       Duration `yaml:"delay,omitempty" toml:"delay" validate:"min=0"`
	Direction   string   `yaml:"direction,omitempty" toml:"direction" validate:"omitempty,oneof=up down left right"`
}

// CounterSpec configures numeric interpolation.
type CounterSpec struct {
	From        float64  `yaml:"from,omitempty" toml:"from"`
	To          float64  `yaml:"to" toml:"to"`
	Duration    Duration `yaml:"duration,omitempty" toml:"duration" validate:"min=0"`
	Easing      string   `yaml:"easing,omitempty" toml:"easing"`
	Decimals    int      `yaml:"decimals,omitempty" toml:"decimals" validate:"min=0,max=10"`
	Format      string   `yaml:"format,omitempty" toml:"format" validate:"omitempty,oneof=plain number currency percentage percent"`
	Currency    string   `yaml:"currency,omitempty" toml:"currency"`
	Prefix      string   `yaml:"prefix,omitempty" toml:"prefix"`
	Suffix      string   `yaml:"suffix,omitempty" toml:"suffix"`
	NoSeparator bool     `yaml:"no_separator,omitempty" toml:"no_separator"`
	Locale      string   `yaml:"locale,omitempty" toml:"locale"`
}

// MorphSpec configures scramble transitions between texts.
type MorphSpec struct {
	Texts        []string `yaml:"texts" toml:"texts" validate:"required,min=1"`
	Steps        int      `yaml:"steps,omitempty" toml:"steps" validate:"min=0,max=200"`
	StepInterval Duration `yaml:"step_interval,omitempty" toml:"step_interval" validate:"min=0"`
	Hold         Duration `yaml:"hold,omitempty" toml:"hold" validate:"min=0"`
	Loop         bool     `yaml:"loop,omitempty" toml:"loop"`
	Seed         uint64   `yaml:"seed,omitempty" toml:"seed"`
}

// GlitchSpec configures random corruption of a text.
type GlitchSpec struct {
	Text          string   `yaml:"text" toml:"text" validate:"required"`
	Intensity     string   `yaml:"intensity,omitempty" toml:"intensity" validate:"omitempty,oneof=low medium high"`
	Continuous    bool     `yaml:"continuous,omitempty" toml:"continuous"`
	Duration      Duration `yaml:"duration,omitempty" toml:"duration" validate:"min=0"`
	Glyphs        string   `yaml:"glyphs,omitempty" toml:"glyphs"`
	Ratio         float64  `yaml:"ratio,omitempty" toml:"ratio" validate:"min=0,max=1"`
	RestoreChance float64  `yaml:"restore_chance,omitempty" toml:"restore_chance" validate:"min=0,max=1"`
	Seed          uint64   `yaml:"seed,omitempty" toml:"seed"`
}

// Duration is a time.Duration written as a Go duration string ("1.5s",
// "250ms") in preset files.
type Duration time.Duration

// UnmarshalText parses a duration string. Both YAML and TOML decoders use it.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalText renders the duration string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std converts to time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// block returns the engine block matching the animation kind, or nil.
func (a Animation) block() any {
	switch a.Kind {
	case "typing":
		if a.Typing != nil {
			return a.Typing
		}
	case "reveal":
		if a.Reveal != nil {
			return a.Reveal
		}
	case "counter":
		if a.Counter != nil {
			return a.Counter
		}
	case "morph":
		if a.Morph != nil {
			return a.Morph
		}
	case "glitch":
		if a.Glitch != nil {
			return a.Glitch
		}
	}
	return nil
}

// blocks counts the engine blocks present on the animation.
func (a Animation) blocks() int {
	n := 0
	for _, present := range []bool{a.Typing != nil, a.Reveal != nil, a.Counter != nil, a.Morph != nil, a.Glitch != nil} {
		if present {
			n++
		}
	}
	return n
}
