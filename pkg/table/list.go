package table

import "math/big"

// ListTable stores counters as arbitrary-precision integers, one per cell,
// organized as a slice of rows. It never saturates and never overflows; it
// exists as the reference baseline backing at the cost of the largest
// memory footprint and the slowest per-cell access of the four backings.
type ListTable struct {
	depth, width int
	rows         [][]*big.Int
}

var _ Table = (*ListTable)(nil)

// NewListTable allocates a depth x width table of big.Int counters, all
// initialized to zero.
func NewListTable(depth, width int) *ListTable {
	rows := make([][]*big.Int, depth)
	for r := range rows {
		row := make([]*big.Int, width)
		for c := range row {
			row[c] = new(big.Int)
		}
		rows[r] = row
	}
	return &ListTable{depth: depth, width: width, rows: rows}
}

func (t *ListTable) Depth() int { return t.depth }
func (t *ListTable) Width() int { return t.width }

func (t *ListTable) Get(r, c int) uint64 {
	return t.rows[r][c].Uint64()
}

func (t *ListTable) Set(r, c int, v uint64) {
	t.rows[r][c].SetUint64(v)
}

func (t *ListTable) Add(r, c int, delta uint64) (uint64, bool) {
	cell := t.rows[r][c]
	cell.Add(cell, new(big.Int).SetUint64(delta))
	return cell.Uint64(), false
}

func (t *ListTable) ToVector() []uint64 {
	out := make([]uint64, 0, t.depth*t.width)
	for r := 0; r < t.depth; r++ {
		for c := 0; c < t.width; c++ {
			out = append(out, t.rows[r][c].Uint64())
		}
	}
	return out
}
