package easing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCurvesHitEndpointsExactly(t *testing.T) {
	t.Parallel()

	for _, name := range Names() {
		curve, err := ByName(name)
		require.NoError(t, err)
		require.Equal(t, 0.0, curve(0), name)
		require.Equal(t, 1.0, curve(1), name)
		require.Equal(t, 0.0, curve(-0.5), name)
		require.Equal(t, 1.0, curve(1.5), name)
	}
}

func TestMonotonicCurvesStayInRange(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"linear", "ease", "ease-in", "ease-out", "ease-in-out", "ease-out-expo"} {
		curve, err := ByName(name)
		require.NoError(t, err)
		prev := 0.0
		for i := 1; i < 100; i++ {
			v := curve(float64(i) / 100)
			require.GreaterOrEqual(t, v, prev-1e-9, "%s not monotonic at %d", name, i)
			require.LessOrEqual(t, v, 1.0)
			prev = v
		}
	}
}

func TestEaseOutIsAheadOfLinearAtMidpoint(t *testing.T) {
	t.Parallel()

	require.Greater(t, EaseOut(0.5), 0.5)
	require.Less(t, EaseIn(0.5), 0.5)
	require.InDelta(t, 0.5, EaseInOut(0.5), 0.01)
}

func TestSpringOvershootsWhenUnderDamped(t *testing.T) {
	t.Parallel()

	curve := Spring(8.0, 0.2)
	peak := 0.0
	for i := 0; i <= 100; i++ {
		if v := curve(float64(i) / 100); v > peak {
			peak = v
		}
	}
	require.Greater(t, peak, 1.0)
}

func TestByNameNormalisesAndRejectsUnknown(t *testing.T) {
	t.Parallel()

	curve, err := ByName(" Ease_In_Out ")
	require.NoError(t, err)
	require.InDelta(t, EaseInOut(0.3), curve(0.3), 1e-12)

	curve, err = ByName("")
	require.NoError(t, err)
	require.InDelta(t, EaseOutExpo(0.3), curve(0.3), 1e-12)

	_, err = ByName("wobble")
	require.Error(t, err)
}
