package hashscheme

import (
	"math/bits"

	"github.com/go-freq/freqsketch/internal/digest"
)

// mersennePrime61 is 2^61 - 1, the Mersenne prime used for the modular
// arithmetic behind the hash-pair construction. It is large enough that
// reducing mod it before reducing mod width preserves near-uniformity.
const mersennePrime61 uint64 = (1 << 61) - 1

// HashPair derives all d row digests from a single fixed pair of base
// hashes (A, B) instead of d independently seeded functions: row r's
// digest is (A + r*B) mod P. This is the only scheme compatible with the
// least-squares estimator, which needs a single coherent coordinate system
// across rows rather than d unrelated ones.
type HashPair[K comparable] struct {
	width, depth int
}

var _ Scheme[string] = (*HashPair[string])(nil)

// NewHashPair builds a HashPair scheme with depth rows and the given width.
func NewHashPair[K comparable](depth, width int) *HashPair[K] {
	return &HashPair[K]{width: width, depth: depth}
}

func (s *HashPair[K]) Depth() int { return s.depth }
func (s *HashPair[K]) Width() int { return s.width }

func (s *HashPair[K]) Indices(item K) []int {
	out := make([]int, s.depth)
	for r := range out {
		out[r] = s.columnOf(item, r)
	}
	return out
}

func (s *HashPair[K]) columnOf(item K, r int) int {
	a, b := digest.SeededPair(item)
	a %= mersennePrime61
	b %= mersennePrime61
	hi, lo := bits.Mul64(uint64(r), b)
	rb := bits.Rem64(hi, lo, mersennePrime61)
	combined := (a + rb) % mersennePrime61
	return int(combined % uint64(s.width))
}
