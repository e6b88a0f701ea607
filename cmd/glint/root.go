package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/glint/internal/logger"
)

type rootFlags struct {
	verbose bool
	logFile string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "glint",
		Short:         "glint plays trigger-driven text animations in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file instead of stderr")

	cmd.AddCommand(newPlayCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// newLogger builds the command logger. Logs go to --log-file when set and to
// fallback otherwise; a nil fallback discards them.
func newLogger(flags *rootFlags, fallback io.Writer) (*logger.Logger, func(), error) {
	level := "info"
	if flags.verbose {
		level = "debug"
	}

	if flags.logFile != "" {
		file, err := os.OpenFile(flags.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		log, err := logger.New(logger.Options{Level: level, Writer: file})
		if err != nil {
			_ = file.Close()
			return nil, nil, err
		}
		return log, func() { _ = file.Close() }, nil
	}

	if fallback == nil {
		return logger.Nop(), func() {}, nil
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: fallback})
	if err != nil {
		return nil, nil, err
	}
	return log, func() {}, nil
}
