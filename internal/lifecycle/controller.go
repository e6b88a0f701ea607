// Package lifecycle drives a progression engine according to a subject's
// trigger mode, restart policy and accessibility gate.
package lifecycle

import (
	"fmt"
	"time"

	"github.com/alexisbeaulieu97/glint/internal/logger"
	"github.com/alexisbeaulieu97/glint/internal/progression"
	"github.com/alexisbeaulieu97/glint/internal/restart"
	"github.com/alexisbeaulieu97/glint/internal/scheduler"
	"github.com/alexisbeaulieu97/glint/internal/trigger"
)

// Config describes one animated subject.
type Config struct {
	Name string
	Mode trigger.Mode
	// Repeat re-arms the subject each time its trigger holds again.
	Repeat bool
	// Cycle replays the animation CycleDelay after each completion.
	Cycle      bool
	CycleDelay time.Duration
	// Signals seeds the live inputs, including the reduced-motion preference
	// read once by the host.
	Signals trigger.Signals
}

// Option customizes a Controller.
type Option func(*Controller)

// WithOnStart registers the callback fired when a run begins.
func WithOnStart(fn func()) Option {
	return func(c *Controller) { c.onStart = fn }
}

// WithOnComplete registers the callback fired when a run reaches its final
// tick.
func WithOnComplete(fn func()) Option {
	return func(c *Controller) { c.onComplete = fn }
}

// WithOnChange registers a listener for every display or state change.
func WithOnChange(fn func(Output)) Option {
	return func(c *Controller) { c.onChange = fn }
}

// WithLogger sets the logger used for transitions and recovered panics.
func WithLogger(log *logger.Logger) Option {
	return func(c *Controller) { c.log = log }
}

// Controller owns one engine and at most one pending tick for it.
//
// A Controller is not safe for concurrent use: signal setters, callbacks and
// ticks must all run on the scheduler's host loop.
type Controller struct {
	cfg    Config
	policy restart.Policy
	engine progression.Engine
	sched  scheduler.Scheduler
	log    *logger.Logger

	onStart    func()
	onComplete func()
	onChange   func(Output)

	signals   trigger.Signals
	state     State
	display   string
	pending   scheduler.Handle
	gen       uint64
	runs      int
	mounted   bool
	unmounted bool
	bypassed  bool
	halted    bool
}

// New creates an idle controller. Nothing is scheduled until Mount.
func New(cfg Config, engine progression.Engine, sched scheduler.Scheduler, opts ...Option) *Controller {
	c := &Controller{
		cfg:     cfg,
		policy:  restart.Policy{Mode: cfg.Mode, Repeat: cfg.Repeat, Cycle: cfg.Cycle},
		engine:  engine,
		sched:   sched,
		signals: cfg.Signals,
		state:   Idle,
		display: engine.Initial(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.ForSubject(cfg.Name, engine.Kind().String())
	if err := engine.Err(); err != nil {
		c.log.Error(err, "engine configuration cannot animate; it will complete immediately")
	}
	if trigger.Bypass(c.signals) {
		c.applyBypass("construct")
	}
	return c
}

// Name returns the subject name.
func (c *Controller) Name() string { return c.cfg.Name }

// Config returns the subject configuration.
func (c *Controller) Config() Config { return c.cfg }

// Engine exposes the driven engine for renderers that need more than text.
func (c *Controller) Engine() progression.Engine { return c.engine }

// State returns the lifecycle phase.
func (c *Controller) State() State { return c.state }

// Signals returns the current live inputs.
func (c *Controller) Signals() trigger.Signals { return c.signals }

// Runs counts how many times the subject entered Running.
func (c *Controller) Runs() int { return c.runs }

// Output returns the value to render.
func (c *Controller) Output() Output {
	return Output{Text: c.display, Animating: c.state == Running, State: c.state}
}

// Mount activates the subject and evaluates its trigger for the first time.
func (c *Controller) Mount() {
	if c.unmounted || c.mounted {
		return
	}
	c.mounted = true
	c.reconcile("mount")
}

// Unmount cancels any pending tick. The controller ignores every later call.
func (c *Controller) Unmount() {
	if c.unmounted {
		return
	}
	c.pending = scheduler.Cancel(c.pending)
	c.gen++
	c.unmounted = true
	c.mounted = false
	c.log.Transition(c.state.String(), "unmounted", "unmount")
}

// SetSignals replaces every live input at once. Equal inputs are a no-op.
func (c *Controller) SetSignals(s trigger.Signals) {
	if c.unmounted || s == c.signals {
		return
	}
	c.signals = s
	c.reconcile("signal")
}

// SetVisible updates the visibility input.
func (c *Controller) SetVisible(v bool) {
	s := c.signals
	s.Visible = v
	c.SetSignals(s)
}

// SetHovered updates the hover input.
func (c *Controller) SetHovered(v bool) {
	s := c.signals
	s.Hovered = v
	c.SetSignals(s)
}

// SetFocused updates the focus input.
func (c *Controller) SetFocused(v bool) {
	s := c.signals
	s.Focused = v
	c.SetSignals(s)
}

// SetActive updates the manual activity input.
func (c *Controller) SetActive(v bool) {
	s := c.signals
	s.Active = v
	c.SetSignals(s)
}

// SetDisabled updates the disabled input.
func (c *Controller) SetDisabled(v bool) {
	s := c.signals
	s.Disabled = v
	c.SetSignals(s)
}

// SetReducedMotion updates the reduced-motion preference.
func (c *Controller) SetReducedMotion(v bool) {
	s := c.signals
	s.ReducedMotion = v
	c.SetSignals(s)
}

// Restart cancels any run in flight and starts again from the beginning.
// It reports false when the trigger does not currently allow animation.
func (c *Controller) Restart() bool {
	if !c.mounted || !trigger.Resolve(c.cfg.Mode, c.signals) {
		return false
	}
	c.halted = false
	c.start("restart")
	return true
}

// Stop honors an external stop request the same way a manual trigger turning
// off is honored: the run is canceled, the initial display restored and the
// subject returns to Idle. It stays idle until its trigger is released and
// engaged again, or Restart is called. A completed subject with no cycle
// pending has nothing to stop and keeps its final display.
func (c *Controller) Stop() {
	if !c.mounted || c.bypassed {
		return
	}
	if c.state != Running && c.pending == nil {
		return
	}
	c.halted = trigger.Matches(c.cfg.Mode, c.signals)
	c.reset("stop")
}

func (c *Controller) reconcile(reason string) {
	if trigger.Bypass(c.signals) {
		c.applyBypass(reason)
		return
	}
	if c.bypassed {
		c.bypassed = false
		c.setState(Idle, reason)
		c.setDisplay(c.engine.Initial())
		c.notify()
	}
	if !c.mounted {
		return
	}

	if trigger.Matches(c.cfg.Mode, c.signals) {
		if c.halted {
			return
		}
		if c.state == Idle {
			c.start(reason)
		}
		return
	}

	c.halted = false
	if c.state != Idle && c.policy.OnSignalLost() == restart.Reset {
		c.reset(reason)
	}
}

// applyBypass renders the terminal value without ever touching the
// scheduler.
func (c *Controller) applyBypass(reason string) {
	if c.bypassed {
		return
	}
	c.pending = scheduler.Cancel(c.pending)
	c.gen++
	c.bypassed = true
	c.setState(Completed, reason+": motion bypassed")
	c.setDisplay(c.engine.Final())
	c.notify()
}

func (c *Controller) start(reason string) {
	c.pending = scheduler.Cancel(c.pending)
	c.gen++
	gen := c.gen
	c.runs++

	step := c.engine.Begin()
	c.setState(Running, reason)
	c.setDisplay(c.engine.Display())
	c.notify()

	c.invoke("onStart", c.onStart)
	if gen != c.gen {
		return
	}
	c.follow(step, gen)
}

func (c *Controller) follow(step progression.Step, gen uint64) {
	if step.Done {
		c.complete(gen)
		return
	}
	c.pending = c.sched.After(step.Delay, func() { c.tick(gen) })
}

func (c *Controller) tick(gen uint64) {
	if gen != c.gen || c.state != Running {
		return
	}
	c.pending = nil
	step := c.engine.Advance()
	c.setDisplay(c.engine.Display())
	if !step.Done {
		c.notify()
	}
	c.follow(step, gen)
}

func (c *Controller) complete(gen uint64) {
	c.pending = nil
	c.setState(Completed, "final tick")
	c.setDisplay(c.engine.Display())
	c.notify()

	c.invoke("onComplete", c.onComplete)
	if gen != c.gen || c.state != Completed {
		return
	}
	if c.policy.OnComplete() != restart.Repeat {
		return
	}
	c.pending = c.sched.After(c.cfg.CycleDelay, func() {
		if gen != c.gen || c.state != Completed {
			return
		}
		c.pending = nil
		if trigger.Resolve(c.cfg.Mode, c.signals) {
			c.start("cycle")
		}
	})
}

func (c *Controller) reset(reason string) {
	c.pending = scheduler.Cancel(c.pending)
	c.gen++
	c.setState(Idle, reason)
	c.setDisplay(c.engine.Initial())
	c.notify()
}

func (c *Controller) setState(next State, reason string) {
	if c.state != next || next == Running {
		c.log.Transition(c.state.String(), next.String(), reason)
	}
	c.state = next
}

func (c *Controller) setDisplay(text string) {
	c.display = text
}

func (c *Controller) notify() {
	if c.onChange == nil {
		return
	}
	out := c.Output()
	c.invoke("onChange", func() { c.onChange(out) })
}

// invoke runs a user callback. Panics are logged and swallowed: state is
// already consistent when callbacks run.
func (c *Controller) invoke(name string, fn func()) {
	if fn == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			c.log.Error(fmt.Errorf("%v", r), name+" callback panicked")
		}
	}()
	fn()
}
