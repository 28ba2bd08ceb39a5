package freqsketch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounterHybrid_ExactSetTracksTopThreeByFrequency(t *testing.T) {
	is := assert.New(t)
	t.Parallel()

	inner := NewCountMinSketch[string](0.05, 0.05)
	h := NewCounterHybrid(inner, 3)

	for i := 0; i < 10; i++ {
		h.Insert("a", 1)
	}
	for i := 0; i < 8; i++ {
		h.Insert("b", 1)
	}
	for i := 0; i < 5; i++ {
		h.Insert("c", 1)
	}
	for i := 0; i < 7; i++ {
		h.Insert("d", 1)
	}

	is.Equal(uint64(10), h.Get("a"))
	is.Equal(uint64(8), h.Get("b"))
	is.Equal(uint64(7), h.Get("d"))

	top := h.Top()
	is.Len(top, 3)

	items := make(map[string]bool, 3)
	for _, e := range top {
		items[e.Item] = true
	}
	is.True(items["a"])
	is.True(items["b"])
	is.True(items["d"])
	is.False(items["c"], "c should have been demoted, never promoted, or rejected")
}

func TestCounterHybrid_GetFallsBackToSketchWhenNotExact(t *testing.T) {
	is := assert.New(t)
	t.Parallel()

	inner := NewCountMinSketch[string](0.05, 0.05)
	h := NewCounterHybrid(inner, 1)

	h.Insert("a", 5)
	h.Insert("b", 3)

	is.Equal(uint64(5), h.Get("a"))
	is.GreaterOrEqual(h.Get("b"), uint64(3))
}

func TestCounterHybrid_IncrementsExactCounterWhenAlreadyTracked(t *testing.T) {
	is := assert.New(t)
	t.Parallel()

	inner := NewCountMinSketch[string](0.05, 0.05)
	h := NewCounterHybrid(inner, 2)

	h.Insert("a", 1)
	h.Insert("a", 1)
	h.Insert("a", 1)

	is.Equal(uint64(3), h.Get("a"))
}

func TestCounterHybrid_PanicsOnNilSketch(t *testing.T) {
	is := assert.New(t)
	t.Parallel()

	is.Panics(func() { NewCounterHybrid[string](nil, 3) })
}
