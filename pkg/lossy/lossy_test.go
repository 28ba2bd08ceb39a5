package lossy

import (
	"testing"

	"github.com/go-freq/freqsketch/pkg/table"
	"github.com/stretchr/testify/assert"
)

func TestNewStrategy_InvalidGammaPanics(t *testing.T) {
	is := assert.New(t)
	t.Parallel()

	is.Panics(func() { NewStrategy(0, ThresholdNone) })
	is.Panics(func() { NewStrategy(1, ThresholdNone) })
	is.Panics(func() { NewStrategy(-0.5, ThresholdNone) })
}

func TestNewStrategy_UnknownKindPanics(t *testing.T) {
	is := assert.New(t)
	t.Parallel()

	is.Panics(func() { NewStrategy(0.1, "bogus") })
}

func TestStrategy_WindowSize(t *testing.T) {
	is := assert.New(t)
	t.Parallel()

	s := NewStrategy(0.01, ThresholdNone)
	is.Equal(100, s.WindowSize())
}

func TestStrategy_FiresOnWindowBoundaryOnly(t *testing.T) {
	is := assert.New(t)
	t.Parallel()

	tbl := table.NewArray32Table(2, 4)
	for r := 0; r < 2; r++ {
		for c := 0; c < 4; c++ {
			tbl.Set(r, c, 10)
		}
	}

	s := NewStrategy(0.5, ThresholdOne) // window size 2
	decayed, _ := s.Observe(tbl)
	is.False(decayed)
	is.Equal(uint64(10), tbl.Get(0, 0))

	decayed, total := s.Observe(tbl)
	is.True(decayed)
	is.Equal(uint64(8), total) // 8 cells, each -1
	is.Equal(uint64(9), tbl.Get(0, 0))
}

func TestStrategy_NeverDecaysBelowZero(t *testing.T) {
	is := assert.New(t)
	t.Parallel()

	tbl := table.NewArray32Table(1, 1)
	tbl.Set(0, 0, 1)

	s := NewStrategy(0.5, ThresholdWindowSize) // window size 2, decays by 2 per sweep
	s.Observe(tbl)
	is.Equal(uint64(1), tbl.Get(0, 0), "no sweep yet")
	s.Observe(tbl)
	is.Equal(uint64(0), tbl.Get(0, 0), "decay by 2 clamps at 0, not -1")
}

func TestStrategy_NoneNeverDecays(t *testing.T) {
	is := assert.New(t)
	t.Parallel()

	tbl := table.NewArray32Table(1, 1)
	tbl.Set(0, 0, 5)

	s := NewStrategy(0.5, ThresholdNone)
	for i := 0; i < 10; i++ {
		s.Observe(tbl)
	}
	is.Equal(uint64(5), tbl.Get(0, 0))
}

func TestStrategy_SqrtWindowThreshold(t *testing.T) {
	is := assert.New(t)
	t.Parallel()

	s := NewStrategy(0.0025, ThresholdSqrtWindow) // window size 400, sqrt = 20
	is.Equal(400, s.WindowSize())

	tbl := table.NewArray32Table(1, 1)
	tbl.Set(0, 0, 100)
	for i := 0; i < 400; i++ {
		s.Observe(tbl)
	}
	is.Equal(uint64(80), tbl.Get(0, 0))
}
