package table

import "math"

// DenseMatrixTable stores the whole d x w matrix as one flat []uint32
// buffer in row-major order. Its ToVector is a zero-copy-shaped read of
// the same layout the matrix is already stored in, and Float64Vector
// exposes it as float64 for callers doing numeric solves (the
// least-squares estimator) without a per-query allocation-and-convert
// scan of a [][]T shape.
type DenseMatrixTable struct {
	depth, width int
	cells        []uint32
}

var _ Table = (*DenseMatrixTable)(nil)

// NewDenseMatrixTable allocates a depth x width flat matrix of zeroed
// uint32 counters.
func NewDenseMatrixTable(depth, width int) *DenseMatrixTable {
	return &DenseMatrixTable{
		depth: depth,
		width: width,
		cells: make([]uint32, depth*width),
	}
}

func (t *DenseMatrixTable) Depth() int { return t.depth }
func (t *DenseMatrixTable) Width() int { return t.width }

func (t *DenseMatrixTable) index(r, c int) int {
	return r*t.width + c
}

func (t *DenseMatrixTable) Get(r, c int) uint64 {
	return uint64(t.cells[t.index(r, c)])
}

func (t *DenseMatrixTable) Set(r, c int, v uint64) {
	if v > math.MaxUint32 {
		v = math.MaxUint32
	}
	t.cells[t.index(r, c)] = uint32(v)
}

func (t *DenseMatrixTable) Add(r, c int, delta uint64) (uint64, bool) {
	i := t.index(r, c)
	cur := uint64(t.cells[i])
	next := cur + delta
	saturated := next > math.MaxUint32 || next < cur
	if saturated {
		next = math.MaxUint32
	}
	t.cells[i] = uint32(next)
	return next, saturated
}

func (t *DenseMatrixTable) ToVector() []uint64 {
	out := make([]uint64, len(t.cells))
	for i, v := range t.cells {
		out[i] = uint64(v)
	}
	return out
}

// Float64Vector returns the flat row-major matrix converted to float64,
// the representation the least-squares normal-equation solve operates on.
func (t *DenseMatrixTable) Float64Vector() []float64 {
	out := make([]float64, len(t.cells))
	for i, v := range t.cells {
		out[i] = float64(v)
	}
	return out
}
