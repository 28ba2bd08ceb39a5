// Command freqsketch-demo inserts a synthetic Zipfian stream into a
// sketch and prints its heavy hitters, a small end-to-end exercise of the
// library's public surface.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	freqsketch "github.com/go-freq/freqsketch"
)

func main() {
	var (
		epsilon = flag.Float64("epsilon", 0.01, "approximation error bound")
		delta   = flag.Float64("delta", 0.01, "failure probability")
		topN    = flag.Int("top", 10, "heavy-hitter tracker size")
		keys    = flag.Int("keys", 1000, "distinct key space")
		draws   = flag.Int("draws", 100_000, "number of stream draws")
		seed    = flag.Int64("seed", 1, "random seed")
		hashPair = flag.Bool("hash-pair", false, "use the hash-pair scheme instead of independent hashing")
	)
	flag.Parse()

	cfg := freqsketch.New[string](*epsilon, *delta).WithTopN(*topN)
	if *hashPair {
		cfg = cfg.WithHashScheme(freqsketch.HashPairScheme)
	}
	sketch := cfg.Build()

	r := rand.New(rand.NewSource(*seed))
	for i := 0; i < *draws; i++ {
		sketch.Insert(fmt.Sprintf("key-%d", zipfDraw(r, *keys, 1.1)), 1)
	}

	fmt.Printf("depth=%d width=%d\n", sketch.Depth(), sketch.Width())
	for i, entry := range sketch.Top() {
		fmt.Printf("%2d. %-16s estimate=%d\n", i+1, entry.Item, entry.Count)
	}

	if flag.NArg() > 0 {
		fmt.Fprintln(os.Stderr, "freqsketch-demo takes no positional arguments")
		os.Exit(2)
	}
}

// zipfDraw samples a key index in [0, n) from a Zipf-like distribution
// skewed toward low indices, using the standard library's rand.Zipf.
func zipfDraw(r *rand.Rand, n int, s float64) uint64 {
	z := rand.NewZipf(r, s, 1, uint64(n-1))
	if z == nil {
		return 0
	}
	return z.Uint64()
}
