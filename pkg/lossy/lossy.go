// Package lossy implements periodic whole-table decay, letting a sketch
// forget rare items over time instead of growing counters without bound.
package lossy

import (
	"math"

	"github.com/go-freq/freqsketch/pkg/table"
)

// ThresholdFunc computes how much every cell should decay by, given the
// current window index k and the table width w.
type ThresholdFunc func(k, width int) uint64

// NoThreshold never decays (f ≡ 0).
func NoThreshold(k, width int) uint64 { return 0 }

// OneThreshold decays every cell by exactly 1 per window (f ≡ 1).
func OneThreshold(k, width int) uint64 { return 1 }

// Strategy applies periodic decay to a table. It tracks the insertion
// count n internally and fires every W = ceil(1/gamma) insertions.
type Strategy struct {
	gamma      float64
	windowSize int
	threshold  ThresholdFunc
	namedKind  string

	n int // insertions observed since construction
	k int // current window index
}

// Named threshold function identifiers, used by NewStrategy's kind param
// so the window size can be captured in a closure instead of recomputed
// from width on every decay (width may differ from the window size).
const (
	ThresholdNone       = "none"
	ThresholdOne        = "one"
	ThresholdWindowSize = "window-size"
	ThresholdSqrtWindow = "sqrt-window"
)

// NewStrategy builds a lossy decay strategy with decay rate gamma in
// (0, 1) and the named threshold function kind.
func NewStrategy(gamma float64, kind string) *Strategy {
	if gamma <= 0 || gamma >= 1 {
		panic("lossy: gamma must be in (0, 1)")
	}
	windowSize := int(math.Ceil(1 / gamma))

	s := &Strategy{gamma: gamma, windowSize: windowSize, namedKind: kind}

	switch kind {
	case ThresholdNone:
		s.threshold = NoThreshold
	case ThresholdOne:
		s.threshold = OneThreshold
	case ThresholdWindowSize:
		s.threshold = func(k, width int) uint64 { return uint64(windowSize) }
	case ThresholdSqrtWindow:
		sq := uint64(math.Ceil(math.Sqrt(float64(windowSize))))
		s.threshold = func(k, width int) uint64 { return sq }
	default:
		panic("lossy: unknown threshold kind " + kind)
	}

	return s
}

// WindowSize returns W = ceil(1/gamma).
func (s *Strategy) WindowSize() int { return s.windowSize }

// Kind returns the named threshold function this strategy was built with.
func (s *Strategy) Kind() string { return s.namedKind }

// Observe registers one insertion and, if it lands on a window boundary,
// decays every cell of t by the threshold function's value for the new
// window index. It reports whether a decay sweep fired and, if so, the
// total amount subtracted across the whole table (for metrics).
func (s *Strategy) Observe(t table.Table) (decayed bool, totalSubtracted uint64) {
	s.n++
	if s.n%s.windowSize != 0 {
		return false, 0
	}
	s.k = s.n / s.windowSize

	amount := s.threshold(s.k, t.Width())
	if amount == 0 {
		return true, 0
	}

	var total uint64
	for r := 0; r < t.Depth(); r++ {
		for c := 0; c < t.Width(); c++ {
			cur := t.Get(r, c)
			if cur == 0 {
				continue
			}
			next := cur - amount
			if amount > cur {
				next = 0
			}
			total += cur - next
			t.Set(r, c, next)
		}
	}
	return true, total
}
