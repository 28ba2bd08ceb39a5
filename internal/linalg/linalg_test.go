package linalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSolveLinearRegression_RecoversExactIntercept(t *testing.T) {
	is := assert.New(t)
	t.Parallel()

	// y = 7 + 2*noise exactly.
	noise := []float64{0, 1, 2, 3}
	y := []float64{7, 9, 11, 13}

	x, ok := SolveLinearRegression(noise, y)
	is.True(ok)
	is.InDelta(7, x, 1e-9)
}

func TestSolveLinearRegression_DegenerateCases(t *testing.T) {
	is := assert.New(t)
	t.Parallel()

	_, ok := SolveLinearRegression([]float64{1}, []float64{1})
	is.False(ok, "fewer than 2 samples")

	_, ok = SolveLinearRegression([]float64{1, 2}, []float64{1})
	is.False(ok, "mismatched lengths")

	_, ok = SolveLinearRegression([]float64{5, 5, 5}, []float64{1, 2, 3})
	is.False(ok, "zero-variance noise is a singular system")
}
