package progression

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateMorphStepsBoundariesAreExact(t *testing.T) {
	t.Parallel()

	for seed := uint64(1); seed <= 200; seed++ {
		frames := GenerateMorphSteps("ABC", "XYZ", DefaultMorphSteps, rand.New(rand.NewPCG(seed, seed)))
		require.Len(t, frames, DefaultMorphSteps+1)
		require.Equal(t, "ABC", frames[0])
		require.False(t, strings.ContainsAny(frames[0], "XYZ"))
		require.Equal(t, "XYZ", frames[len(frames)-1])
	}
}

func TestGenerateMorphStepsMixesOnlySourceCharacters(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(7, 7))
	frames := GenerateMorphSteps("aaaa", "bbbb", 4, rng)
	for _, f := range frames {
		require.Len(t, f, 4)
		require.Empty(t, strings.Trim(f, "ab"))
	}
}

func TestGenerateMorphStepsDifferentLengths(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(3, 3))
	frames := GenerateMorphSteps("hi", "hello", 5, rng)
	require.Equal(t, "hi", frames[0])
	require.Equal(t, "hello", frames[5])
	for _, f := range frames[1:5] {
		require.LessOrEqual(t, len(f), 5)
	}

	frames = GenerateMorphSteps("long", "", 3, rng)
	require.Equal(t, "", frames[3])
}

func TestGenerateMorphStepsClampsStepCount(t *testing.T) {
	t.Parallel()

	frames := GenerateMorphSteps("a", "b", 0, nil)
	require.Equal(t, []string{"a", "b"}, frames)
}

func TestMorphEngineWalksListWithoutLoop(t *testing.T) {
	t.Parallel()

	engine := NewMorph(MorphConfig{Texts: []string{"one", "two", "six"}, Steps: 4, StepInterval: 10 * time.Millisecond, Hold: time.Second, Seed: 11})
	frames, finished := play(engine, 100)

	require.True(t, finished)
	require.Equal(t, "one", frames[0].Display)
	// hold, three intermediate frames, arrival, hold, three, arrival
	require.Len(t, frames, 9)
	require.Equal(t, frame{At: 1030 * time.Millisecond, Display: "two"}, frames[4])
	require.Equal(t, "six", frames[len(frames)-1].Display)
	require.Equal(t, 2, engine.Index())
	require.False(t, engine.Morphing())
}

func TestMorphEngineLoopsBackToFirst(t *testing.T) {
	t.Parallel()

	engine := NewMorph(MorphConfig{Texts: []string{"A", "B"}, Steps: 2, Hold: 100 * time.Millisecond, Loop: true, Seed: 5})
	frames, finished := play(engine, 8)

	require.False(t, finished)
	var arrivals []string
	for _, f := range frames {
		if f.Display == "A" || f.Display == "B" {
			if len(arrivals) == 0 || arrivals[len(arrivals)-1] != f.Display {
				arrivals = append(arrivals, f.Display)
			}
		}
	}
	require.Equal(t, []string{"A", "B", "A"}, arrivals[:3])
}

func TestMorphSingleTextIsStatic(t *testing.T) {
	t.Parallel()

	engine := NewMorph(MorphConfig{Texts: []string{"only"}})
	require.NoError(t, engine.Err())
	require.True(t, engine.Begin().Done)
	require.Equal(t, "only", engine.Display())
}

func TestMorphEmptyListDegenerates(t *testing.T) {
	t.Parallel()

	engine := NewMorph(MorphConfig{})
	require.Error(t, engine.Err())
	require.True(t, engine.Begin().Done)
	require.Equal(t, "", engine.Final())
}
