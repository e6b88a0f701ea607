package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/glint/internal/config"
	"github.com/alexisbeaulieu97/glint/internal/lifecycle"
	"github.com/alexisbeaulieu97/glint/internal/logger"
	"github.com/alexisbeaulieu97/glint/internal/scheduler"
	"github.com/alexisbeaulieu97/glint/internal/trigger"
)

type renderOptions struct {
	PresetPath    string
	ID            string
	ReducedMotion bool
	Timeout       time.Duration
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <preset-file> <animation-id>",
		Short: "Run one animation headlessly and print every distinct frame",
		Long: `Render runs a single animation on a headless event loop, with its trigger
engaged, and prints each distinct display value on its own line. Animations
that never finish on their own (loops, continuous glitches) stop at the
animation deadline or --timeout, whichever comes first.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.PresetPath = args[0]
			opts.ID = args[1]

			log, closeLog, err := newLogger(root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeLog()

			preset, err := config.ParsePreset(opts.PresetPath)
			if err != nil {
				return err
			}
			anim, err := preset.Find(opts.ID)
			if err != nil {
				return err
			}
			subject, err := config.BuildAnimation(preset.Settings, anim)
			if err != nil {
				return err
			}

			frames, err := renderSubject(cmd.Context(), subject, opts, log.ForSubject(subject.ID, subject.Engine.Kind().String()), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			log.WithFields(map[string]any{"subject": subject.ID, "frames": frames}).Debug("render finished")
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.ReducedMotion, "reduced-motion", false, "Print only the final value")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 10*time.Second, "Upper bound on the run; accepts Go duration strings (e.g. 30s)")

	return cmd
}

// renderSubject drives one subject to completion on a scheduler.Loop and
// writes each distinct display value to out. It returns how many lines were
// written.
func renderSubject(ctx context.Context, subject config.Subject, opts renderOptions, log *logger.Logger, out io.Writer) (int, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	timeout := opts.Timeout
	if subject.Deadline > 0 && (timeout <= 0 || subject.Deadline < timeout) {
		timeout = subject.Deadline
	}
	if timeout > 0 {
		var cancelTimeout context.CancelFunc
		ctx, cancelTimeout = context.WithTimeout(ctx, timeout)
		defer cancelTimeout()
	}
	ctx, finish := context.WithCancel(ctx)
	defer finish()

	// A headless render has every trigger engaged. Rendering is the whole point
	// of the command, so only an explicit preference reduces motion here.
	cfg := subject.Lifecycle
	cfg.Cycle = false
	cfg.Signals = trigger.Signals{
		Visible:       true,
		Hovered:       true,
		Focused:       true,
		Active:        true,
		ReducedMotion: cfg.Signals.ReducedMotion || motionPreference(opts.ReducedMotion, true),
	}

	last := ""
	frames := 0
	var writeErr error
	emit := func(o lifecycle.Output) {
		if o.Text == last || writeErr != nil {
			return
		}
		last = o.Text
		frames++
		_, writeErr = fmt.Fprintln(out, o.Text)
	}

	loop := scheduler.NewLoop(64)
	ctrl := lifecycle.New(cfg, subject.Engine, loop,
		lifecycle.WithOnChange(emit),
		lifecycle.WithOnComplete(finish),
		lifecycle.WithLogger(log),
	)
	if trigger.Bypass(cfg.Signals) {
		return frames, writeErr
	}

	loop.Post(ctrl.Mount)
	err := loop.Run(ctx)
	ctrl.Unmount()

	switch {
	case writeErr != nil:
		return frames, writeErr
	case errors.Is(err, context.DeadlineExceeded):
		log.Debug("render stopped at its time bound")
		return frames, nil
	case errors.Is(err, context.Canceled) && ctrl.State() == lifecycle.Completed:
		return frames, nil
	default:
		return frames, err
	}
}
