package freqsketch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveFromError(t *testing.T) {
	is := assert.New(t)
	t.Parallel()

	depth, width := DeriveFromError(0.01, 0.01)
	is.Equal(272, width) // ceil(e/0.01)
	is.Equal(5, depth)   // ceil(ln(100))
}

func TestDeriveFromSize_IsInverseOfDeriveFromError(t *testing.T) {
	is := assert.New(t)
	t.Parallel()

	depth, width := 5, 272
	epsilon, delta := DeriveFromSize(depth, width)

	gotDepth, gotWidth := DeriveFromError(epsilon, delta)
	is.Equal(depth, gotDepth)
	is.Equal(width, gotWidth)
}

func TestDeriveFromError_PanicsOnInvalidRange(t *testing.T) {
	is := assert.New(t)
	t.Parallel()

	is.Panics(func() { DeriveFromError(0, 0.1) })
	is.Panics(func() { DeriveFromError(1, 0.1) })
	is.Panics(func() { DeriveFromError(0.1, 0) })
	is.Panics(func() { DeriveFromError(0.1, 1) })
}

func TestDeriveFromSize_PanicsOnNonPositive(t *testing.T) {
	is := assert.New(t)
	t.Parallel()

	is.Panics(func() { DeriveFromSize(0, 10) })
	is.Panics(func() { DeriveFromSize(10, 0) })
}
