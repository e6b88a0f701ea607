package components

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/glint/internal/lifecycle"
)

func TestStateLabel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		state  lifecycle.State
		static bool
		want   string
	}{
		{state: lifecycle.Idle, want: "idle"},
		{state: lifecycle.Running, want: "running"},
		{state: lifecycle.Completed, want: "done"},
		{state: lifecycle.Completed, static: true, want: "static"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, StateLabel(tc.state, tc.static))
		require.Contains(t, StateBadge(tc.state, tc.static), tc.want)
	}
}
