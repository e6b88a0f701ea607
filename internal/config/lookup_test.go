package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	glinterrors "github.com/alexisbeaulieu97/glint/pkg/errors"
)

func TestFindSuggestsCloseIDs(t *testing.T) {
	t.Parallel()

	preset, err := Parse([]byte(validYAML), FormatYAML, "demo.yaml")
	require.NoError(t, err)
	require.Equal(t, []string{"hero", "stats", "tagline"}, preset.IDs())

	anim, err := preset.Find("stats")
	require.NoError(t, err)
	require.Equal(t, "counter", anim.Kind)

	_, err = preset.Find("hro")
	var notFound *glinterrors.PresetNotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, []string{"hero"}, notFound.Suggestions)
	require.Contains(t, err.Error(), "did you mean: hero?")

	_, err = preset.Find("zzz")
	require.ErrorAs(t, err, &notFound)
	require.Empty(t, notFound.Suggestions)

	require.Nil(t, preset.Suggest(""))
}
