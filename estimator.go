package freqsketch

import (
	"sort"

	"github.com/go-freq/freqsketch/internal/linalg"
	"github.com/go-freq/freqsketch/pkg/hashscheme"
	"github.com/go-freq/freqsketch/pkg/table"
)

// leastSquaresSource is the subset of table.Table the least-squares
// estimator needs: a dense, flat float64 view suited to the normal-
// equation solve, rather than cell-by-cell reads through the generic
// interface. Only *table.DenseMatrixTable implements it, which
// SketchConfig.Build enforces for EstimatorLeastSquares.
type leastSquaresSource interface {
	Float64Vector() []float64
	Width() int
}

// estimateMin is the classical Count-Min estimator: the minimum counter
// across the item's d indexed cells. It never underestimates the true
// count.
func estimateMin(t table.Table, indices []int) uint64 {
	min := t.Get(0, indices[0])
	for r := 1; r < len(indices); r++ {
		v := t.Get(r, indices[r])
		if v < min {
			min = v
		}
	}
	return min
}

// estimateCountMean debiases each row's raw counter by subtracting the
// expected noise contributed by every other item hashing into that row,
// then takes the median of the debiased rows, clamped to [0, min estimate]
// since the min estimator is always a valid upper bound.
func estimateCountMean(t table.Table, indices []int, rowSums []uint64) uint64 {
	width := t.Width()
	if width <= 1 {
		return estimateMin(t, indices)
	}

	min := estimateMin(t, indices)
	debiased := make([]float64, len(indices))
	for r, c := range indices {
		cell := float64(t.Get(r, c))
		noise := (float64(rowSums[r]) - cell) / float64(width-1)
		d := cell - noise
		if d < 0 {
			d = 0
		}
		debiased[r] = d
	}

	sort.Float64s(debiased)
	median := medianOf(debiased)

	est := uint64(median + 0.5)
	if est > min {
		est = min
	}
	return est
}

func medianOf(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// estimateLeastSquares models each row's raw cell value as x + beta*noise_r
// (noise_r the same per-row debiasing term estimateCountMean computes) and
// solves for the shared intercept x by ordinary least squares across rows.
// It requires the flat row-major vector of a HashPair-addressed table and
// falls back to the min estimate whenever the regression is degenerate
// (e.g. depth < 2, or every row's noise term is equal).
func estimateLeastSquares[K comparable](t table.Table, scheme *hashscheme.HashPair[K], item K, rowSums []uint64) uint64 {
	flat := t.(leastSquaresSource).Float64Vector()

	depth := scheme.Depth()
	width := t.Width()
	min := uint64(0)
	noise := make([]float64, depth)
	y := make([]float64, depth)

	indices := scheme.Indices(item)
	first := true
	for r := 0; r < depth; r++ {
		c := indices[r]
		cellF := flat[r*width+c]
		cell := uint64(cellF)
		if first || cell < min {
			min = cell
			first = false
		}
		y[r] = cellF
		if width > 1 {
			noise[r] = (float64(rowSums[r]) - cellF) / float64(width-1)
		}
	}

	x, ok := linalg.SolveLinearRegression(noise, y)
	if !ok {
		return min
	}

	est := int64(x + 0.5)
	if est < 0 {
		return 0
	}
	if uint64(est) > min {
		return min
	}
	return uint64(est)
}
