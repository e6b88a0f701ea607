package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlayWatchRequiresFile(t *testing.T) {
	_, _, err := execute(t, "play", "--watch")
	require.EqualError(t, err, "--watch needs a preset file")
}

func TestPlayPassesOptionsToRunner(t *testing.T) {
	original := playCmdRunner
	t.Cleanup(func() { playCmdRunner = original })

	var got playOptions
	playCmdRunner = func(_ *rootFlags, opts playOptions) error {
		got = opts
		return nil
	}

	_, _, err := execute(t, "play", "--reduced-motion", "--watch", "presets.yaml")
	require.NoError(t, err)
	require.Equal(t, playOptions{PresetPath: "presets.yaml", ReducedMotion: true, Watch: true}, got)
}

func TestEmbeddedDemoPresetIsValid(t *testing.T) {
	preset, err := loadPreset("")
	require.NoError(t, err)
	require.Equal(t, "glint demo", preset.Name)
	require.GreaterOrEqual(t, len(preset.Animations), 5)
}

func TestMotionPreference(t *testing.T) {
	t.Setenv("GLINT_REDUCED_MOTION", "")
	t.Setenv("REDUCED_MOTION", "")

	require.True(t, motionPreference(true, true))
	require.False(t, motionPreference(false, true))
	require.True(t, motionPreference(false, false))

	t.Setenv("REDUCED_MOTION", "1")
	require.True(t, motionPreference(false, true))
}
