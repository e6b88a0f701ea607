package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/glint/internal/config"
	"github.com/alexisbeaulieu97/glint/internal/lifecycle"
	"github.com/alexisbeaulieu97/glint/internal/logger"
	"github.com/alexisbeaulieu97/glint/internal/scheduler"
)

func testPreset() *config.Preset {
	return &config.Preset{
		Version: "1.0",
		Name:    "demo",
		Animations: []config.Animation{
			{ID: "hero", Kind: "typing", Typing: &config.TypingSpec{Texts: []string{"Hola"}, Speed: 10}},
			{ID: "card", Kind: "reveal", Trigger: "hover", Reveal: &config.RevealSpec{Text: "a b"}},
			{ID: "button", Kind: "glitch", Trigger: "manual", Glitch: &config.GlitchSpec{Text: "GO", Continuous: true, Seed: 1}},
			{ID: "footer", Kind: "counter", Trigger: "inview", Counter: &config.CounterSpec{To: 100, Duration: config.Duration(time.Second)}},
		},
	}
}

func newTestModel(t *testing.T, reduced bool) (Model, *scheduler.Manual) {
	t.Helper()

	sched := scheduler.NewManual()
	m, err := NewModel(Options{Preset: testPreset(), Scheduler: sched, ReducedMotion: reduced, Logger: logger.Nop()})
	require.NoError(t, err)
	return m, sched
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()

	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return next, cmd
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func controller(t *testing.T, m Model, id string) *lifecycle.Controller {
	t.Helper()

	ctrl, ok := m.Controller(id)
	require.True(t, ok, "subject %s", id)
	return ctrl
}

func TestNewModelBuildsSubjectsWithoutScheduling(t *testing.T) {
	t.Parallel()

	m, sched := newTestModel(t, false)
	require.Equal(t, []string{"hero", "card", "button", "footer"}, m.Subjects())
	require.Equal(t, "hero", m.Focused())
	require.Zero(t, sched.Stats().Created)
	require.NotNil(t, m.Init())

	_, ok := m.Controller("missing")
	require.False(t, ok)
}

func TestMountStartsImmediateAndVisibleSubjects(t *testing.T) {
	t.Parallel()

	m, sched := newTestModel(t, false)
	m, _ = send(t, m, mountMsg{})

	require.Equal(t, lifecycle.Running, controller(t, m, "hero").State())
	require.Equal(t, lifecycle.Running, controller(t, m, "footer").State())
	require.Equal(t, lifecycle.Idle, controller(t, m, "card").State())
	require.Equal(t, lifecycle.Idle, controller(t, m, "button").State())

	sched.Advance(400 * time.Millisecond)
	require.Equal(t, "Hola", controller(t, m, "hero").Output().Text)
	require.Equal(t, lifecycle.Completed, controller(t, m, "hero").State())
}

func TestScrollingDrivesVisibility(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, false)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 80, Height: chromeRows + rowsPerSubject})
	m, _ = send(t, m, mountMsg{})

	footer := controller(t, m, "footer")
	require.False(t, footer.Signals().Visible)
	require.Equal(t, lifecycle.Idle, footer.State())

	for range 5 {
		m, _ = send(t, m, key("down"))
	}
	require.True(t, footer.Signals().Visible)
	require.Equal(t, lifecycle.Running, footer.State())
	require.False(t, controller(t, m, "hero").Signals().Visible)

	m, _ = send(t, m, key("up"))
	require.False(t, footer.Signals().Visible)
	require.Equal(t, lifecycle.Running, footer.State(), "a one-shot in-view run continues off screen")
}

func TestFocusHoverAndManualKeys(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, false)
	m, _ = send(t, m, mountMsg{})

	m, _ = send(t, m, key("tab"))
	require.Equal(t, "card", m.Focused())
	card := controller(t, m, "card")
	require.True(t, card.Signals().Focused)
	require.False(t, controller(t, m, "hero").Signals().Focused)

	m, _ = send(t, m, key("h"))
	require.Equal(t, lifecycle.Running, card.State())
	m, _ = send(t, m, key("h"))
	require.Equal(t, lifecycle.Idle, card.State())

	m, _ = send(t, m, key("tab"))
	require.Equal(t, "button", m.Focused())
	button := controller(t, m, "button")
	m, _ = send(t, m, key(" "))
	require.Equal(t, lifecycle.Running, button.State())
	m, _ = send(t, m, key(" "))
	require.Equal(t, lifecycle.Idle, button.State())
	require.Equal(t, "GO", button.Output().Text)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, "card", m.Focused())
}

func TestRestartAndDisableKeys(t *testing.T) {
	t.Parallel()

	m, sched := newTestModel(t, false)
	m, _ = send(t, m, mountMsg{})
	hero := controller(t, m, "hero")
	sched.Advance(time.Second)
	require.Equal(t, lifecycle.Completed, hero.State())

	m, _ = send(t, m, key("r"))
	require.Equal(t, lifecycle.Running, hero.State())
	require.Equal(t, "", hero.Output().Text)
	require.Contains(t, m.View(), "restarted hero")

	m, _ = send(t, m, key("d"))
	require.Equal(t, "Hola", hero.Output().Text)
	require.True(t, hero.Signals().Disabled)

	m, _ = send(t, m, key("r"))
	require.Contains(t, m.View(), "hero cannot animate right now")
}

func TestReducedMotionToggle(t *testing.T) {
	t.Parallel()

	m, sched := newTestModel(t, true)
	m, _ = send(t, m, mountMsg{})
	require.True(t, m.ReducedMotion())
	require.Zero(t, sched.Stats().Created)
	require.Equal(t, "Hola", controller(t, m, "hero").Output().Text)
	require.Equal(t, "100", controller(t, m, "footer").Output().Text)

	m, _ = send(t, m, key("m"))
	require.False(t, m.ReducedMotion())
	require.Equal(t, lifecycle.Running, controller(t, m, "hero").State())

	m, _ = send(t, m, key("m"))
	require.Equal(t, lifecycle.Completed, controller(t, m, "hero").State())
	require.Zero(t, sched.Pending())
}

func TestRunMsgExecutesCallback(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, false)
	ran := false
	_, cmd := send(t, m, runMsg{fn: func() { ran = true }})
	require.True(t, ran)
	require.Nil(t, cmd)

	require.NotPanics(t, func() { send(t, m, runMsg{}) })
}

func TestQuitUnmountsEverything(t *testing.T) {
	t.Parallel()

	m, sched := newTestModel(t, false)
	m, _ = send(t, m, mountMsg{})
	require.Positive(t, sched.Pending())

	m, cmd := send(t, m, key("q"))
	require.NotNil(t, cmd)
	require.Equal(t, tea.Quit(), cmd())
	require.Zero(t, sched.Pending())
	require.Empty(t, m.View())
}

func TestPresetReloadReplacesSubjects(t *testing.T) {
	t.Parallel()

	m, sched := newTestModel(t, false)
	m, _ = send(t, m, mountMsg{})
	oldHero := controller(t, m, "hero")

	reloaded := &config.Preset{
		Version: "1.0",
		Name:    "second",
		Animations: []config.Animation{
			{ID: "only", Kind: "typing", Typing: &config.TypingSpec{Texts: []string{"Hi"}, Speed: 10}},
		},
	}
	m, _ = send(t, m, presetReloadedMsg{preset: reloaded})
	require.Equal(t, []string{"only"}, m.Subjects())
	require.Contains(t, m.View(), "glint • second")
	require.Contains(t, m.View(), "reloaded 1 animations")

	sched.Advance(time.Second)
	require.Equal(t, "", oldHero.Output().Text, "unmounted controllers stop ticking")
	require.Equal(t, "Hi", controller(t, m, "only").Output().Text)

	m, _ = send(t, m, reloadFailedMsg{err: errors.New("parse error: broken")})
	require.Contains(t, m.View(), "parse error: broken")
}

func TestBridgeWithoutProgramDropsCallbacks(t *testing.T) {
	t.Parallel()

	b := &Bridge{}
	ran := false
	require.NotPanics(t, func() { b.Post(func() { ran = true }) })
	require.False(t, ran)
}
