package restart

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/glint/internal/trigger"
)

func TestOnSignalLost(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		policy Policy
		want   Action
	}{
		{name: "inview repeat resets", policy: Policy{Mode: trigger.InView, Repeat: true}, want: Reset},
		{name: "inview once ignores", policy: Policy{Mode: trigger.InView}, want: Ignore},
		{name: "manual resets", policy: Policy{Mode: trigger.Manual}, want: Reset},
		{name: "manual resets even with repeat off", policy: Policy{Mode: trigger.Manual, Repeat: false}, want: Reset},
		{name: "hover resets", policy: Policy{Mode: trigger.Hover}, want: Reset},
		{name: "focus resets", policy: Policy{Mode: trigger.Focus}, want: Reset},
		{name: "immediate never loses its signal", policy: Policy{Mode: trigger.Immediate}, want: Ignore},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, tc.policy.OnSignalLost())
		})
	}
}

func TestOnComplete(t *testing.T) {
	t.Parallel()

	require.Equal(t, Hold, Policy{Mode: trigger.InView}.OnComplete())
	require.Equal(t, Repeat, Policy{Mode: trigger.Immediate, Cycle: true}.OnComplete())
}

func TestNextIndex(t *testing.T) {
	t.Parallel()

	cases := []struct {
		current, count int
		loop           bool
		next           int
		ok             bool
	}{
		{current: 0, count: 2, loop: false, next: 1, ok: true},
		{current: 1, count: 2, loop: false, next: 1, ok: false},
		{current: 1, count: 2, loop: true, next: 0, ok: true},
		{current: 0, count: 1, loop: true, next: 0, ok: true},
		{current: 0, count: 1, loop: false, next: 0, ok: false},
		{current: 0, count: 0, loop: true, next: 0, ok: false},
	}

	for _, tc := range cases {
		next, ok := NextIndex(tc.current, tc.count, tc.loop)
		require.Equal(t, tc.next, next, "%+v", tc)
		require.Equal(t, tc.ok, ok, "%+v", tc)
	}
}

func TestActionString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "reset", Reset.String())
	require.Equal(t, "unknown", Action(99).String())
}
