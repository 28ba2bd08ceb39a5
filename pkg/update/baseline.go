package update

import "github.com/go-freq/freqsketch/pkg/table"

// Baseline adds delta to every row's indexed cell unconditionally, the
// classical Count-Min Sketch update rule.
type Baseline struct{}

var _ Strategy = Baseline{}

func (Baseline) Apply(t table.Table, indices []int, delta uint64) ([]uint64, bool) {
	newValues := make([]uint64, len(indices))
	var saturated bool
	for r, c := range indices {
		v, sat := t.Add(r, c, delta)
		newValues[r] = v
		saturated = saturated || sat
	}
	return newValues, saturated
}
