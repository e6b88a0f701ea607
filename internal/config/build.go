package config

import (
	"fmt"
	"time"

	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/glint/internal/easing"
	"github.com/alexisbeaulieu97/glint/internal/lifecycle"
	"github.com/alexisbeaulieu97/glint/internal/logger"
	"github.com/alexisbeaulieu97/glint/internal/progression"
	"github.com/alexisbeaulieu97/glint/internal/trigger"
	glinterrors "github.com/alexisbeaulieu97/glint/pkg/errors"
)

// Subject is a built animation, ready to hand to lifecycle.New.
type Subject struct {
	ID        string
	Engine    progression.Engine
	Lifecycle lifecycle.Config
	// Deadline bounds each run when positive.
	Deadline time.Duration
}

// Build constructs every animation of the preset. Animations whose engine
// configuration cannot animate are kept: they log the ConfigError and render
// their final value.
func Build(p *Preset, log *logger.Logger) ([]Subject, error) {
	if p == nil {
		return nil, glinterrors.NewConfigError("", "", "preset is nil")
	}

	subjects := make([]Subject, 0, len(p.Animations))
	for _, anim := range p.Animations {
		subject, err := BuildAnimation(p.Settings, anim)
		if err != nil {
			return nil, err
		}
		if engineErr := subject.Engine.Err(); engineErr != nil {
			log.WithFields(map[string]any{"subject": anim.ID}).Warn(fmt.Sprintf("animation degrades to its final value: %v", engineErr))
		}
		subjects = append(subjects, subject)
	}
	return subjects, nil
}

// BuildAnimation turns one validated animation into an engine and lifecycle
// configuration.
func BuildAnimation(settings Settings, anim Animation) (Subject, error) {
	mode, err := trigger.ParseMode(anim.Trigger)
	if err != nil {
		return Subject{}, glinterrors.NewConfigError(anim.ID, "trigger", err.Error())
	}

	engine, err := buildEngine(settings, anim)
	if err != nil {
		return Subject{}, err
	}

	return Subject{
		ID:     anim.ID,
		Engine: engine,
		Lifecycle: lifecycle.Config{
			Name:       anim.ID,
			Mode:       mode,
			Repeat:     anim.Repeat,
			Cycle:      anim.Cycle,
			CycleDelay: anim.CycleDelay.Std(),
			Signals:    trigger.Signals{ReducedMotion: settings.ReducedMotion},
		},
		Deadline: anim.Deadline.Std(),
	}, nil
}

func buildEngine(settings Settings, anim Animation) (progression.Engine, error) {
	switch anim.Kind {
	case "typing":
		if anim.Typing == nil {
			return nil, missingBlock(anim)
		}
		spec := anim.Typing
		return progression.NewTyping(progression.TypingConfig{
			Texts:             append([]string(nil), spec.Texts...),
			Speed:             spec.Speed,
			DeleteSpeed:       spec.DeleteSpeed,
			PauseBeforeDelete: durationOr(spec.PauseBeforeDelete, progression.DefaultPauseBeforeDelete),
			PauseBetween:      spec.PauseBetween.Std(),
			DeleteAfter:       spec.DeleteAfter,
			Loop:              spec.Loop,
		}), nil
	case "reveal":
		if anim.Reveal == nil {
			return nil, missingBlock(anim)
		}
		spec := anim.Reveal
		granularity, err := progression.ParseGranularity(spec.Granularity)
		if err != nil {
			return nil, glinterrors.NewConfigError(anim.ID, "reveal.granularity", err.Error())
		}
		return progression.NewReveal(progression.RevealConfig{
			Text:        spec.Text,
			Granularity: granularity,
			Stagger:     spec.Stagger.Std(),
			LineStagger: spec.LineStagger.Std(),
			Duration:    durationOr(spec.Duration, progression.DefaultRevealDuration),
			Delay:       spec.Delay.Std(),
			Direction:   spec.Direction,
		}), nil
	case "counter":
		if anim.Counter == nil {
			return nil, missingBlock(anim)
		}
		return buildCounter(settings, anim)
	case "morph":
		if anim.Morph == nil {
			return nil, missingBlock(anim)
		}
		spec := anim.Morph
		return progression.NewMorph(progression.MorphConfig{
			Texts:        append([]string(nil), spec.Texts...),
			Steps:        spec.Steps,
			StepInterval: spec.StepInterval.Std(),
			Hold:         durationOr(spec.Hold, progression.DefaultMorphHold),
			Loop:         spec.Loop,
			Seed:         seedOr(spec.Seed, settings.Seed),
		}), nil
	case "glitch":
		if anim.Glitch == nil {
			return nil, missingBlock(anim)
		}
		spec := anim.Glitch
		intensity, err := progression.ParseIntensity(spec.Intensity)
		if err != nil {
			return nil, glinterrors.NewConfigError(anim.ID, "glitch.intensity", err.Error())
		}
		return progression.NewGlitch(progression.GlitchConfig{
			Text:          spec.Text,
			Intensity:     intensity,
			Continuous:    spec.Continuous,
			Duration:      spec.Duration.Std(),
			Glyphs:        spec.Glyphs,
			Ratio:         spec.Ratio,
			RestoreChance: spec.RestoreChance,
			Seed:          seedOr(spec.Seed, settings.Seed),
		}), nil
	default:
		return nil, glinterrors.NewConfigError(anim.ID, "kind", fmt.Sprintf("unknown animation kind %q", anim.Kind))
	}
}

func buildCounter(settings Settings, anim Animation) (progression.Engine, error) {
	spec := anim.Counter

	curve, err := easing.ByName(spec.Easing)
	if err != nil {
		return nil, glinterrors.NewConfigError(anim.ID, "counter.easing", err.Error())
	}
	format, err := progression.ParseNumberFormat(spec.Format)
	if err != nil {
		return nil, glinterrors.NewConfigError(anim.ID, "counter.format", err.Error())
	}
	locale := language.Und
	if spec.Locale != "" {
		locale, err = language.Parse(spec.Locale)
		if err != nil {
			return nil, glinterrors.NewConfigError(anim.ID, "counter.locale", err.Error())
		}
	}

	return progression.NewCounter(progression.CounterConfig{
		From:          spec.From,
		To:            spec.To,
		Duration:      durationOr(spec.Duration, progression.DefaultCounterDuration),
		Curve:         curve,
		Decimals:      spec.Decimals,
		Format:        format,
		Currency:      spec.Currency,
		Prefix:        spec.Prefix,
		Suffix:        spec.Suffix,
		NoSeparator:   spec.NoSeparator,
		Locale:        locale,
		FrameInterval: settings.FrameInterval.Std(),
	}), nil
}

func missingBlock(anim Animation) error {
	return glinterrors.NewConfigError(anim.ID, anim.Kind, fmt.Sprintf("%s configuration is required", anim.Kind))
}

func durationOr(d Duration, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d.Std()
}

func seedOr(seed, fallback uint64) uint64 {
	if seed != 0 {
		return seed
	}
	return fallback
}
