package hashscheme

import "github.com/go-freq/freqsketch/internal/digest"

// Independent draws one freshly-seeded digest per row, mirroring the
// classical Count-Min Sketch construction of d pairwise-independent hash
// functions.
type Independent[K comparable] struct {
	width, depth int
	seeds        []uint64
}

var _ Scheme[string] = (*Independent[string])(nil)

// NewIndependent builds an Independent scheme with depth rows and the
// given width, seeding each row deterministically from baseSeed so two
// schemes built with the same baseSeed produce identical row functions.
func NewIndependent[K comparable](depth, width int, baseSeed uint64) *Independent[K] {
	seeds := make([]uint64, depth)
	for r := range seeds {
		seeds[r] = baseSeed + uint64(r)*0x9E3779B1
	}
	return &Independent[K]{width: width, depth: depth, seeds: seeds}
}

func (s *Independent[K]) Depth() int { return s.depth }
func (s *Independent[K]) Width() int { return s.width }

func (s *Independent[K]) Indices(item K) []int {
	out := make([]int, s.depth)
	for r, seed := range s.seeds {
		out[r] = int(digest.Seeded(item, seed) % uint64(s.width))
	}
	return out
}
