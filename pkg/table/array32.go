package table

import "math"

// Array32Table stores each counter as a saturating uint32, one slice per
// row. It is the general-purpose backing: compact, fast, and wide enough
// for any realistic stream frequency.
type Array32Table struct {
	depth, width int
	rows         [][]uint32
}

var _ Table = (*Array32Table)(nil)

// NewArray32Table allocates a depth x width table of zeroed uint32 counters.
func NewArray32Table(depth, width int) *Array32Table {
	rows := make([][]uint32, depth)
	for r := range rows {
		rows[r] = make([]uint32, width)
	}
	return &Array32Table{depth: depth, width: width, rows: rows}
}

func (t *Array32Table) Depth() int { return t.depth }
func (t *Array32Table) Width() int { return t.width }

func (t *Array32Table) Get(r, c int) uint64 {
	return uint64(t.rows[r][c])
}

func (t *Array32Table) Set(r, c int, v uint64) {
	if v > math.MaxUint32 {
		v = math.MaxUint32
	}
	t.rows[r][c] = uint32(v)
}

func (t *Array32Table) Add(r, c int, delta uint64) (uint64, bool) {
	cur := uint64(t.rows[r][c])
	next := cur + delta
	saturated := next > math.MaxUint32 || next < cur
	if saturated {
		next = math.MaxUint32
	}
	t.rows[r][c] = uint32(next)
	return next, saturated
}

func (t *Array32Table) ToVector() []uint64 {
	out := make([]uint64, 0, t.depth*t.width)
	for r := 0; r < t.depth; r++ {
		for c := 0; c < t.width; c++ {
			out = append(out, uint64(t.rows[r][c]))
		}
	}
	return out
}
