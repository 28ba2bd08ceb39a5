package freqsketch

import (
	"math"

	"github.com/go-freq/freqsketch/internal"
	"github.com/go-freq/freqsketch/pkg/hashscheme"
	"github.com/go-freq/freqsketch/pkg/lossy"
	"github.com/go-freq/freqsketch/pkg/metrics"
	"github.com/go-freq/freqsketch/pkg/table"
	"github.com/go-freq/freqsketch/pkg/topn"
	"github.com/go-freq/freqsketch/pkg/update"
)

// TableBacking names which counter-table implementation a sketch uses.
type TableBacking int

const (
	// TableArray32 backs counters with dense, saturating uint32 cells.
	// The default: fast and compact for realistic stream frequencies.
	TableArray32 TableBacking = iota
	// TableList backs counters with arbitrary-precision integers, never
	// saturating, at the cost of the largest memory footprint.
	TableList
	// TableMatrix backs counters with a single flat uint32 buffer,
	// required by the least-squares estimator.
	TableMatrix
	// TableBitPacked packs counters into the minimum bit width that can
	// hold WithBitPackedMaxCount, trading per-access speed for memory.
	TableBitPacked
)

// HashSchemeKind names which row-indexing strategy a sketch uses.
type HashSchemeKind int

const (
	// HashIndependent draws d freshly-seeded digests, one per row. The
	// default.
	HashIndependent HashSchemeKind = iota
	// HashPairScheme derives all row digests from a single hash pair
	// (A, B). Required by the least-squares estimator.
	HashPairScheme
)

// UpdateStrategyKind names which counter-update rule a sketch uses.
type UpdateStrategyKind int

const (
	// UpdateBaseline bumps every row's indexed cell unconditionally.
	UpdateBaseline UpdateStrategyKind = iota
	// UpdateConservative only raises cells currently at the row minimum.
	UpdateConservative
)

// assertValue panics with msg if ok is false. Configuration mistakes are
// programmer errors, reported immediately at Build() time rather than
// threaded through every call as an error return.
func assertValue(ok bool, msg string) {
	if !ok {
		panic("freqsketch: " + msg)
	}
}

// SketchConfig is a fluent builder for Sketch. Call New or NewFromSize to
// start, chain With* calls to customize, and finish with Build.
type SketchConfig[K comparable] struct {
	depth, width int

	topN int

	tableBacking    TableBacking
	bitPackedMaxCnt uint64

	hashScheme HashSchemeKind
	estimator  Estimator
	updater    UpdateStrategyKind

	lossyGamma float64
	lossyKind  string
	lossySet   bool

	seed    uint64
	seedSet bool

	collector metrics.Collector
}

// New starts a sketch configuration sized from the approximation error
// bound epsilon and the failure probability delta (spec 4.8). Defaults:
// top-N of 20, Array32 table, independent hash scheme, baseline update,
// min estimator, no lossy decay, no-op metrics.
func New[K comparable](epsilon, delta float64) *SketchConfig[K] {
	depth, width := DeriveFromError(epsilon, delta)
	return newConfig[K](depth, width)
}

// NewFromSize starts a sketch configuration with an explicit (depth,
// width) instead of deriving them from (epsilon, delta).
func NewFromSize[K comparable](depth, width int) *SketchConfig[K] {
	assertValue(depth > 0, "depth must be positive")
	assertValue(width > 0, "width must be positive")
	return newConfig[K](depth, width)
}

func newConfig[K comparable](depth, width int) *SketchConfig[K] {
	return &SketchConfig[K]{
		depth:           depth,
		width:           width,
		topN:            20,
		tableBacking:    TableArray32,
		bitPackedMaxCnt: math.MaxUint32,
		hashScheme:      HashIndependent,
		estimator:       EstimatorMinimum,
		updater:         UpdateBaseline,
		collector:       &metrics.NoOpCollector{},
	}
}

// WithTopN sets the heavy-hitter tracker's capacity. n=0 disables heavy-
// hitter tracking (Top always returns nil).
func (c *SketchConfig[K]) WithTopN(n int) *SketchConfig[K] {
	assertValue(n >= 0, "topN must be >= 0")
	c.topN = n
	return c
}

// WithTableBacking selects the counter-table implementation.
func (c *SketchConfig[K]) WithTableBacking(backing TableBacking) *SketchConfig[K] {
	c.tableBacking = backing
	return c
}

// WithBitPackedMaxCount sets the maximum representable counter value for
// the TableBitPacked backing; the bit width is derived from it. Ignored
// unless WithTableBacking(TableBitPacked) is also set.
func (c *SketchConfig[K]) WithBitPackedMaxCount(maxCount uint64) *SketchConfig[K] {
	assertValue(maxCount >= 1, "bit-packed max count must be >= 1")
	c.bitPackedMaxCnt = maxCount
	return c
}

// WithHashScheme selects the row-indexing strategy.
func (c *SketchConfig[K]) WithHashScheme(scheme HashSchemeKind) *SketchConfig[K] {
	c.hashScheme = scheme
	return c
}

// WithUpdateStrategy selects the counter-update rule.
func (c *SketchConfig[K]) WithUpdateStrategy(strategy UpdateStrategyKind) *SketchConfig[K] {
	c.updater = strategy
	return c
}

// WithEstimator selects the query-time estimator.
func (c *SketchConfig[K]) WithEstimator(estimator Estimator) *SketchConfig[K] {
	c.estimator = estimator
	return c
}

// WithLossyDecay enables periodic whole-table decay with rate gamma and
// the named threshold function kind (see pkg/lossy's Threshold constants).
func (c *SketchConfig[K]) WithLossyDecay(gamma float64, kind string) *SketchConfig[K] {
	assertValue(gamma > 0 && gamma < 1, "lossy gamma must be in (0, 1)")
	c.lossyGamma = gamma
	c.lossyKind = kind
	c.lossySet = true
	return c
}

// WithSeed fixes the independent hash scheme's base seed instead of
// deriving it from the wall clock, giving deterministic, reproducible row
// functions across runs. Ignored when WithHashScheme(HashPairScheme) is
// also set, since hash-pair's digests are unseeded by construction.
func (c *SketchConfig[K]) WithSeed(seed uint64) *SketchConfig[K] {
	c.seed = seed
	c.seedSet = true
	return c
}

// WithMetrics attaches a metrics collector. Defaults to a no-op collector.
func (c *SketchConfig[K]) WithMetrics(collector metrics.Collector) *SketchConfig[K] {
	assertValue(collector != nil, "metrics collector must not be nil")
	c.collector = collector
	return c
}

// Build validates the configuration and constructs the Sketch. It panics
// on any invalid or incompatible combination of options (spec's
// invalid-parameter and incompatible-composition error taxonomy).
func (c *SketchConfig[K]) Build() *Sketch[K] {
	assertValue(c.depth > 0, "depth must be positive")
	assertValue(c.width > 0, "width must be positive")

	if c.estimator == EstimatorLeastSquares {
		assertValue(c.hashScheme == HashPairScheme, "least-squares estimator requires the hash-pair scheme")
		assertValue(c.tableBacking == TableMatrix, "least-squares estimator requires the dense matrix table")
	}

	var tbl table.Table
	switch c.tableBacking {
	case TableList:
		tbl = table.NewListTable(c.depth, c.width)
	case TableMatrix:
		tbl = table.NewDenseMatrixTable(c.depth, c.width)
	case TableBitPacked:
		tbl = table.NewBitPackedTable(c.depth, c.width, c.bitPackedMaxCnt)
	default:
		tbl = table.NewArray32Table(c.depth, c.width)
	}

	var scheme hashscheme.Scheme[K]
	var hashPair *hashscheme.HashPair[K]
	switch c.hashScheme {
	case HashPairScheme:
		hp := hashscheme.NewHashPair[K](c.depth, c.width)
		scheme = hp
		hashPair = hp
	default:
		baseSeed := c.seed
		if !c.seedSet {
			// seed from the wall clock so distinct Sketch instances built
			// in the same process don't share row functions.
			baseSeed = uint64(internal.NowMicro()) * 0x9E3779B97F4A7C15
		}
		scheme = hashscheme.NewIndependent[K](c.depth, c.width, baseSeed)
	}

	var updater update.Strategy
	switch c.updater {
	case UpdateConservative:
		updater = update.Conservative{}
	default:
		updater = update.Baseline{}
	}

	var decay *lossy.Strategy
	if c.lossySet {
		decay = lossy.NewStrategy(c.lossyGamma, c.lossyKind)
	}

	var heavy *topn.Tracker[K]
	if c.topN > 0 {
		heavy = topn.NewTracker[K](c.topN)
	}

	c.collector.SetDepthWidth(c.depth, c.width)

	return &Sketch[K]{
		table:     tbl,
		scheme:    scheme,
		hashPair:  hashPair,
		updater:   updater,
		estimator: c.estimator,
		decay:     decay,
		heavy:     heavy,
		collector: c.collector,
		rowSums:   make([]uint64, c.depth),
	}
}
