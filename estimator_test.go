package freqsketch

import (
	"testing"

	"github.com/go-freq/freqsketch/pkg/table"
	"github.com/stretchr/testify/assert"
)

func TestEstimateMin(t *testing.T) {
	is := assert.New(t)
	t.Parallel()

	tbl := table.NewArray32Table(3, 10)
	tbl.Set(0, 1, 5)
	tbl.Set(1, 2, 3)
	tbl.Set(2, 3, 9)

	is.Equal(uint64(3), estimateMin(tbl, []int{1, 2, 3}))
}

func TestEstimateCountMean_BoundedByMin(t *testing.T) {
	is := assert.New(t)
	t.Parallel()

	tbl := table.NewArray32Table(4, 20)
	// simulate collisions by loading each row with extra noise beyond the
	// item's own true count.
	indices := []int{0, 1, 2, 3}
	rowSums := make([]uint64, 4)
	for r, c := range indices {
		tbl.Set(r, c, 10) // item's true contribution plus noise
		rowSums[r] = 10 + uint64(r)*5
	}

	est := estimateCountMean(tbl, indices, rowSums)
	min := estimateMin(tbl, indices)
	is.LessOrEqual(est, min)
}

func TestEstimateCountMean_FallsBackToMinWhenWidthIsOne(t *testing.T) {
	is := assert.New(t)
	t.Parallel()

	tbl := table.NewArray32Table(2, 1)
	tbl.Set(0, 0, 7)
	tbl.Set(1, 0, 7)

	est := estimateCountMean(tbl, []int{0, 0}, []uint64{7, 7})
	is.Equal(uint64(7), est)
}

func TestMedianOf(t *testing.T) {
	is := assert.New(t)
	t.Parallel()

	is.Equal(3.0, medianOf([]float64{1, 2, 3, 4, 5}))
	is.Equal(2.5, medianOf([]float64{1, 2, 3, 4}))
}
