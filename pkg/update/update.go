// Package update implements the two counter-update strategies a sketch can
// apply on insertion: the baseline unconditional bump, and conservative
// update, which only raises counters that are currently the row minimum.
package update

import "github.com/go-freq/freqsketch/pkg/table"

// Strategy applies delta to a table at the given per-row column indices,
// one index per row. It returns the resulting per-row values, which the
// caller (the sketch) folds into its incrementally-maintained row-sum
// cache rather than rescanning the row, plus whether any touched cell
// saturated at its backing's maximum.
type Strategy interface {
	Apply(t table.Table, indices []int, delta uint64) (newValues []uint64, saturated bool)
}
