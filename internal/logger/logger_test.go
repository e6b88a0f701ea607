package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"preset": "demo", "phase": "load"})
	log.Info("presets loaded")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "presets loaded", entry["message"])
	require.Equal(t, "demo", entry["preset"])
	require.Equal(t, "load", entry["phase"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	log.Transition("idle", "running", "signal")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerTransitionCarriesSubject(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.ForSubject("hero", "typing").Transition("idle", "running", "signal")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "lifecycle transition", entry["message"])
	require.Equal(t, "hero", entry["subject"])
	require.Equal(t, "typing", entry["engine"])
	require.Equal(t, "idle", entry["from"])
	require.Equal(t, "running", entry["to"])
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"subject": "counter"})
	log.Error(errors.New("boom"), "callback panicked")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "callback panicked", entry["message"])
	require.Equal(t, "counter", entry["subject"])
	require.Equal(t, "boom", entry["error"])
}

func TestNilAndNopLoggersAreSafe(t *testing.T) {
	t.Parallel()

	var nilLog *Logger
	require.NotPanics(t, func() {
		nilLog.Info("x")
		nilLog.Transition("a", "b", "c")
		require.Nil(t, nilLog.ForSubject("s", "e"))
	})

	require.NotPanics(t, func() {
		Nop().ForSubject("s", "e").Error(errors.New("x"), "y")
	})
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestHumanReadableWritesConsoleLines(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{HumanReadable: true, Writer: buf})
	require.NoError(t, err)

	log.ForSubject("hero", "typing").Info("player started")
	log.Debug("hidden at the default level")

	out := buf.String()
	require.Contains(t, out, "player started")
	require.Contains(t, out, "subject=")
	require.Contains(t, out, "hero")
	require.NotContains(t, out, "hidden")
	require.False(t, json.Valid([]byte(strings.TrimSpace(out))))
}
