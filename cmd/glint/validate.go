package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/glint/internal/config"
)

func newValidateCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <preset-file>",
		Short: "Parse and validate a preset without playing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, closeLog, err := newLogger(root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeLog()

			preset, err := config.ParsePreset(args[0])
			if err != nil {
				return err
			}
			subjects, err := config.Build(preset, log)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✓ %s (version %s): %d animations\n", preset.Name, preset.Version, len(subjects))
			for _, subject := range subjects {
				line := fmt.Sprintf("  - %s: %s, trigger %s", subject.ID, subject.Engine.Kind(), subject.Lifecycle.Mode)
				if err := subject.Engine.Err(); err != nil {
					line += fmt.Sprintf(" (static: %v)", err)
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	return cmd
}
