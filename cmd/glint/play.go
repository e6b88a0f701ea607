package main

import (
	_ "embed"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/glint/internal/config"
	"github.com/alexisbeaulieu97/glint/internal/scheduler"
	"github.com/alexisbeaulieu97/glint/internal/tui"
)

//go:embed demo.yaml
var demoPreset []byte

type playOptions struct {
	PresetPath    string
	ReducedMotion bool
	Watch         bool
}

var playCmdRunner = runPlay

func newPlayCmd(root *rootFlags) *cobra.Command {
	opts := playOptions{}

	cmd := &cobra.Command{
		Use:   "play [preset-file]",
		Short: "Play a preset's animations in an interactive viewport",
		Long: `Play mounts every animation of a preset in a scrollable terminal viewport.
Without a file the built-in demo preset is played.

Keys: ↑/↓ scroll, tab focus, h hover, space activate, r restart,
d disable, m toggle reduced motion, q quit.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.PresetPath = args[0]
			}
			if opts.Watch && opts.PresetPath == "" {
				return errors.New("--watch needs a preset file")
			}
			return playCmdRunner(root, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.ReducedMotion, "reduced-motion", false, "Render final values without animating")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Reload the preset when the file changes")

	return cmd
}

// loadPreset reads path, or the embedded demo when path is empty.
func loadPreset(path string) (*config.Preset, error) {
	if path == "" {
		return config.Parse(demoPreset, config.FormatYAML, "demo.yaml")
	}
	return config.ParsePreset(path)
}

func runPlay(root *rootFlags, opts playOptions) error {
	preset, err := loadPreset(opts.PresetPath)
	if err != nil {
		return err
	}

	// The viewport owns the terminal; logs are only kept with --log-file.
	log, closeLog, err := newLogger(root, nil)
	if err != nil {
		return err
	}
	defer closeLog()

	var watcher *config.Watcher
	if opts.Watch {
		watcher, err = config.NewWatcher(opts.PresetPath)
		if err != nil {
			return fmt.Errorf("watch %s: %w", opts.PresetPath, err)
		}
		defer watcher.Close()
	}

	bridge := &tui.Bridge{}
	model, err := tui.NewModel(tui.Options{
		Preset:        preset,
		Scheduler:     scheduler.NewPosted(bridge.Post),
		ReducedMotion: motionPreference(opts.ReducedMotion, stdoutIsTerminal()),
		Logger:        log,
		Watcher:       watcher,
	})
	if err != nil {
		return err
	}

	program := tea.NewProgram(model, tea.WithAltScreen())
	bridge.Attach(program)

	log.WithFields(map[string]any{"preset": preset.Name, "animations": len(preset.Animations)}).Info("player started")
	if _, err := program.Run(); err != nil {
		log.Error(err, "player failed")
		return fmt.Errorf("failed to run player: %w", err)
	}
	log.Info("player closed")
	return nil
}
