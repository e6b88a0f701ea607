package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/glint/internal/config"
	"github.com/alexisbeaulieu97/glint/internal/lifecycle"
	"github.com/alexisbeaulieu97/glint/internal/logger"
	"github.com/alexisbeaulieu97/glint/internal/scheduler"
)

const (
	rowsPerSubject = 3
	chromeRows     = 6
)

// mountMsg asks the model to mount its subjects once the program runs.
type mountMsg struct{}

// presetReloadedMsg carries a freshly parsed preset from the watcher.
type presetReloadedMsg struct {
	preset *config.Preset
}

// reloadFailedMsg reports a preset that changed on disk but no longer parses.
type reloadFailedMsg struct {
	err error
}

// Options configures a Model.
type Options struct {
	Preset    *config.Preset
	Scheduler scheduler.Scheduler
	// ReducedMotion is the host motion preference, combined with the preset
	// setting.
	ReducedMotion bool
	Logger        *logger.Logger
	// Watcher, when set, reloads the preset whenever its file changes.
	Watcher *config.Watcher
}

// subject pairs a controller with its optional per-run deadline.
type subject struct {
	id       string
	ctrl     *lifecycle.Controller
	deadline scheduler.Handle
}

// Model is the bubbletea state of the interactive player.
type Model struct {
	title    string
	subjects []*subject
	sched    scheduler.Scheduler
	log      *logger.Logger
	watcher  *config.Watcher
	spinner  spinner.Model

	cursor  int
	offset  int
	width   int
	height  int
	reduced bool

	status   string
	failure  error
	quitting bool
}

// NewModel builds controllers for every animation in the preset. Nothing is
// scheduled until the program starts and the subjects are mounted.
func NewModel(opts Options) (Model, error) {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	m := Model{
		sched:   opts.Scheduler,
		log:     opts.Logger,
		watcher: opts.Watcher,
		spinner: s,
		reduced: opts.ReducedMotion,
		width:   80,
		height:  24,
	}
	if err := m.load(opts.Preset); err != nil {
		return Model{}, err
	}
	return m, nil
}

// Init mounts subjects and starts the spinner and the file watcher.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.spinner.Tick,
		func() tea.Msg { return mountMsg{} },
	}
	if m.watcher != nil {
		cmds = append(cmds, waitForChange(m.watcher))
	}
	return tea.Batch(cmds...)
}

// Subjects returns the ids of the loaded animations in display order.
func (m Model) Subjects() []string {
	ids := make([]string, 0, len(m.subjects))
	for _, s := range m.subjects {
		ids = append(ids, s.id)
	}
	return ids
}

// Controller returns the controller of the subject with the given id.
func (m Model) Controller(id string) (*lifecycle.Controller, bool) {
	for _, s := range m.subjects {
		if s.id == id {
			return s.ctrl, true
		}
	}
	return nil, false
}

// Focused returns the id of the focused subject.
func (m Model) Focused() string {
	if len(m.subjects) == 0 {
		return ""
	}
	return m.subjects[m.cursor].id
}

// ReducedMotion reports the effective host motion preference.
func (m Model) ReducedMotion() bool { return m.reduced }

// load replaces the subject list with controllers built from preset.
func (m *Model) load(preset *config.Preset) error {
	built, err := config.Build(preset, m.log)
	if err != nil {
		return err
	}

	sched := m.sched
	m.title = preset.Name
	m.subjects = make([]*subject, 0, len(built))
	for _, b := range built {
		s := &subject{id: b.ID}
		cfg := b.Lifecycle
		cfg.Signals.ReducedMotion = cfg.Signals.ReducedMotion || m.reduced

		var opts []lifecycle.Option
		opts = append(opts, lifecycle.WithLogger(m.log))
		if b.Deadline > 0 {
			deadline := b.Deadline
			opts = append(opts, lifecycle.WithOnStart(func() {
				s.deadline = scheduler.Cancel(s.deadline)
				s.deadline = lifecycle.Deadline(sched, deadline, s.ctrl)
			}))
		}
		s.ctrl = lifecycle.New(cfg, b.Engine, sched, opts...)
		m.subjects = append(m.subjects, s)
	}
	m.cursor = 0
	m.offset = 0
	return nil
}

func (m *Model) mountAll() {
	m.syncSignals()
	for _, s := range m.subjects {
		s.ctrl.Mount()
	}
}

func (m *Model) unmountAll() {
	for _, s := range m.subjects {
		s.deadline = scheduler.Cancel(s.deadline)
		s.ctrl.Unmount()
	}
}

// capacity is how many subjects fit in the viewport.
func (m Model) capacity() int {
	return max(1, (m.height-chromeRows)/rowsPerSubject)
}

func (m Model) visible(index int) bool {
	return index >= m.offset && index < m.offset+m.capacity()
}

// syncSignals pushes viewport visibility and focus into the controllers.
func (m *Model) syncSignals() {
	m.offset = min(m.offset, max(0, len(m.subjects)-m.capacity()))
	m.offset = max(m.offset, 0)
	for i, s := range m.subjects {
		s.ctrl.SetVisible(m.visible(i))
		s.ctrl.SetFocused(i == m.cursor)
	}
}

func waitForChange(w *config.Watcher) tea.Cmd {
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			preset, err := config.ParsePreset(path)
			if err != nil {
				return reloadFailedMsg{err: err}
			}
			return presetReloadedMsg{preset: preset}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return reloadFailedMsg{err: err}
		}
	}
}
