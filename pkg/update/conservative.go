package update

import "github.com/go-freq/freqsketch/pkg/table"

// Conservative only raises a row's indexed counter when it is currently
// equal to the row minimum across all indexed cells, and then only up to
// min+delta. This bounds error growth compared to Baseline's unconditional
// bump, at the cost of needing the full index set before any cell is
// written.
type Conservative struct{}

var _ Strategy = Conservative{}

func (Conservative) Apply(t table.Table, indices []int, delta uint64) ([]uint64, bool) {
	current := make([]uint64, len(indices))
	var min uint64
	for r, c := range indices {
		v := t.Get(r, c)
		current[r] = v
		if r == 0 || v < min {
			min = v
		}
	}

	target := min + delta
	newValues := make([]uint64, len(indices))
	var saturated bool
	for r, c := range indices {
		if current[r] <= min {
			t.Set(r, c, target)
			stored := t.Get(r, c)
			if stored != target {
				saturated = true
			}
			newValues[r] = stored
		} else {
			newValues[r] = current[r]
		}
	}
	return newValues, saturated
}
