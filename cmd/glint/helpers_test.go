package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testPresetYAML = `version: "1.0"
name: cli
animations:
  - id: hero
    kind: typing
    typing:
      texts: ["Hola"]
      speed: 1000
  - id: price
    kind: counter
    trigger: inview
    counter:
      from: 1
      to: 3
      duration: 30ms
  - id: flat
    kind: counter
    counter:
      from: 5
      to: 5
  - id: forever
    kind: glitch
    deadline: 50ms
    glitch:
      text: "noise"
      continuous: true
`

func writePreset(t *testing.T, name, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
