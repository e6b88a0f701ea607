package trigger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func envLookup(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestBypass(t *testing.T) {
	t.Parallel()

	require.False(t, Bypass(Signals{Visible: true, Active: true}))
	require.True(t, Bypass(Signals{Disabled: true}))
	require.True(t, Bypass(Signals{ReducedMotion: true}))
}

func TestDetectMotionPreference(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		env         map[string]string
		interactive bool
		want        bool
	}{
		{name: "interactive without env", interactive: true, want: false},
		{name: "non interactive defaults to reduced", interactive: false, want: true},
		{name: "explicit reduce", env: map[string]string{"REDUCED_MOTION": "reduce"}, interactive: true, want: true},
		{name: "boolean true", env: map[string]string{"GLINT_REDUCED_MOTION": "1"}, interactive: true, want: true},
		{name: "explicit opt out on pipe", env: map[string]string{"GLINT_REDUCED_MOTION": "no-preference"}, interactive: false, want: false},
		{name: "app variable wins", env: map[string]string{"GLINT_REDUCED_MOTION": "false", "REDUCED_MOTION": "true"}, interactive: true, want: false},
		{name: "garbage falls through", env: map[string]string{"GLINT_REDUCED_MOTION": "maybe"}, interactive: true, want: false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, DetectMotionPreference(envLookup(tc.env), tc.interactive))
		})
	}
}
