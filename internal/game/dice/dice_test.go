package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/geoscape/internal/game/dice"
)

// fixedSource returns the queued values in order, clamped into [0, n).
type fixedSource struct {
	vals  []int
	calls []int
}

func (f *fixedSource) Intn(n int) int {
	f.calls = append(f.calls, n)
	if len(f.vals) == 0 {
		return 0
	}
	v := f.vals[0]
	f.vals = f.vals[1:]
	if v >= n {
		v = n - 1
	}
	return v
}

func TestGenerate_Inclusive(t *testing.T) {
	src := &fixedSource{vals: []int{0, 4}}
	assert.Equal(t, 3, dice.Generate(src, 3, 7))
	assert.Equal(t, 7, dice.Generate(src, 3, 7))
	assert.Equal(t, []int{5, 5}, src.calls)
}

func TestGenerate_PanicsOnInvertedRange(t *testing.T) {
	assert.Panics(t, func() { dice.Generate(&fixedSource{}, 2, 1) })
}

func TestPick_EmptyDoesNotDraw(t *testing.T) {
	src := &fixedSource{}
	v, ok := dice.Pick[string](src, nil)
	assert.False(t, ok)
	assert.Equal(t, "", v)
	assert.Empty(t, src.calls)
}

func TestPick_SelectsIndexedElement(t *testing.T) {
	src := &fixedSource{vals: []int{2}}
	v, ok := dice.Pick(src, []string{"a", "b", "c"})
	require.True(t, ok)
	assert.Equal(t, "c", v)
}

func TestPick_Property_ResultIsMember(t *testing.T) {
	src := dice.NewCryptoSource()
	rapid.Check(t, func(rt *rapid.T) {
		items := rapid.SliceOfN(rapid.Int(), 1, 50).Draw(rt, "items")
		v, ok := dice.Pick(src, items)
		if !ok {
			rt.Fatal("Pick on non-empty slice must succeed")
		}
		assert.Contains(rt, items, v)
	})
}

func TestSeededSource_Reproducible(t *testing.T) {
	a := dice.NewSeededSource(1234)
	b := dice.NewSeededSource(1234)
	for i := 0; i < 32; i++ {
		assert.Equal(t, a.Intn(100), b.Intn(100))
	}
}

func TestSources_PanicOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { dice.NewCryptoSource().Intn(0) })
	assert.Panics(t, func() { dice.NewSeededSource(1).Intn(-1) })
}

func TestSeededSource_Property_InRange(t *testing.T) {
	src := dice.NewSeededSource(99)
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 1000).Draw(rt, "n")
		v := src.Intn(n)
		if v < 0 || v >= n {
			rt.Fatalf("Intn(%d) = %d out of range", n, v)
		}
	})
}

func TestLoggedSource_LogsDraws(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	src := dice.NewLoggedSource(&fixedSource{vals: []int{3}}, zap.New(core))

	assert.Equal(t, 3, src.Intn(10))
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "random draw", entry.Message)
	assert.Equal(t, int64(10), entry.ContextMap()["n"])
	assert.Equal(t, int64(3), entry.ContextMap()["value"])
}
