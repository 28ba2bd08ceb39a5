// Package digest turns an arbitrary comparable item into a stable uint64,
// salted by a caller-chosen seed so the same item produces independent
// values across hash rows.
package digest

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Seeded stringifies item and hashes it together with seed using xxhash.
// The string conversion means two values that render identically (e.g. the
// int 1 and the string "1") collide; callers that mix key types should wrap
// K in a type-tagged representation first.
func Seeded[K comparable](item K, seed uint64) uint64 {
	h := xxhash.New()
	_, _ = fmt.Fprintf(h, "%v:%d", item, seed)
	return h.Sum64()
}

// SeededPair returns two independent digests of item, used by hash schemes
// that build d rows out of a fixed pair of base hashes rather than d
// separately-seeded ones.
func SeededPair[K comparable](item K) (a, b uint64) {
	return Seeded(item, pairSeedA), Seeded(item, pairSeedB)
}

const (
	pairSeedA uint64 = 0x9E3779B97F4A7C15
	pairSeedB uint64 = 0xC2B2AE3D27D4EB4F
)
