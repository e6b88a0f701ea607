package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/glint/internal/logger"
)

func TestExamplePresetsAreValid(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"presets.yaml", "presets.toml"} {
		name := name
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			preset, err := ParsePreset(filepath.Join("..", "..", "examples", name))
			require.NoError(t, err)

			subjects, err := Build(preset, logger.Nop())
			require.NoError(t, err)
			require.Len(t, subjects, len(preset.Animations))
			for _, subject := range subjects {
				require.NoError(t, subject.Engine.Err(), subject.ID)
			}
		})
	}
}
