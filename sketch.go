// Package freqsketch implements the Count-Min Sketch family of approximate
// frequency counters: pluggable counter-table backings, independent and
// hash-pair row schemes, baseline and conservative update rules, four
// estimators (min, count-mean, least-squares, and an exact-count hybrid),
// optional lossy decay, and a bounded heavy-hitter tracker.
package freqsketch

import (
	"github.com/go-freq/freqsketch/internal"
	"github.com/go-freq/freqsketch/pkg/hashscheme"
	"github.com/go-freq/freqsketch/pkg/lossy"
	"github.com/go-freq/freqsketch/pkg/metrics"
	"github.com/go-freq/freqsketch/pkg/table"
	"github.com/go-freq/freqsketch/pkg/topn"
	"github.com/go-freq/freqsketch/pkg/update"
	"github.com/prometheus/client_golang/prometheus"
)

// Estimator identifies which algorithm Get uses to turn a row of raw
// counters into a single frequency estimate.
type Estimator int

const (
	// EstimatorMinimum takes the minimum counter across the item's rows,
	// the classical Count-Min estimate. Compatible with every table and
	// hash scheme.
	EstimatorMinimum Estimator = iota
	// EstimatorCountMean debiases each row by the expected noise from
	// other items before taking the median, then clamps to the minimum
	// estimate. Needs depth >= 1 and width > 1 to debias meaningfully.
	EstimatorCountMean
	// EstimatorLeastSquares solves a small regression over the raw row
	// values to separate the item's true count from row noise. Only
	// compatible with the hash-pair scheme.
	EstimatorLeastSquares
)

// Sketch is a single Count-Min Sketch instance: a fixed-size table, a hash
// scheme mapping items to row indices, an update strategy, an estimator,
// and optional lossy decay and heavy-hitter tracking.
//
// A Sketch is not safe for concurrent use; see pkg/safe for a thread-safe
// wrapper.
type Sketch[K comparable] struct {
	noCopy internal.NoCopy //nolint:unused

	table     table.Table
	scheme    hashscheme.Scheme[K]
	hashPair  *hashscheme.HashPair[K] // non-nil only when scheme is a HashPair, for estimateLeastSquares
	updater   update.Strategy
	estimator Estimator
	decay     *lossy.Strategy
	heavy     *topn.Tracker[K]
	collector metrics.Collector

	rowSums    []uint64 // incrementally maintained S_r = sum of row r's counters
	overflowed bool     // latches true the first time any cell saturates
}

// Insert records count occurrences of item (count defaults to 1 via the
// convenience wrappers). It updates the table via the configured update
// strategy, maintains the row-sum cache, fires lossy decay if configured,
// and informs the heavy-hitter tracker of the item's new estimate.
func (s *Sketch[K]) Insert(item K, count uint64) {
	indices := s.scheme.Indices(item)

	oldValues := make([]uint64, len(indices))
	for r, c := range indices {
		oldValues[r] = s.table.Get(r, c)
	}

	newValues, saturated := s.updater.Apply(s.table, indices, count)
	for r, v := range newValues {
		s.rowSums[r] += v - oldValues[r] // Add only raises cells, so v >= oldValues[r]
	}

	if saturated && !s.overflowed {
		s.overflowed = true
		s.collector.IncOverflow()
	}

	s.collector.IncInsertion()
	s.collector.AddObserved(count)

	if s.decay != nil {
		decayed, subtracted := s.decay.Observe(s.table)
		if decayed {
			s.collector.IncDecaySweep()
			s.collector.AddDecayed(subtracted)
			s.recomputeRowSums()
		}
	}

	if s.heavy != nil {
		est := s.Get(item)
		_, evicted := s.heavy.Observe(item, est)
		if evicted {
			s.collector.IncHeavyHitterEviction()
		}
	}
}

// Update applies Insert(item, 1) to every item in items.
func (s *Sketch[K]) Update(items []K) {
	for _, item := range items {
		s.Insert(item, 1)
	}
}

// Get returns the current frequency estimate for item, using the
// configured estimator.
func (s *Sketch[K]) Get(item K) uint64 {
	indices := s.scheme.Indices(item)

	switch s.estimator {
	case EstimatorCountMean:
		return estimateCountMean(s.table, indices, s.rowSums)
	case EstimatorLeastSquares:
		return estimateLeastSquares(s.table, s.hashPair, item, s.rowSums)
	default:
		return estimateMin(s.table, indices)
	}
}

// Top returns the tracked heavy hitters in descending estimate order.
// Returns nil if no heavy-hitter tracker was configured.
func (s *Sketch[K]) Top() []topn.Entry[K] {
	if s.heavy == nil {
		return nil
	}
	return s.heavy.Top()
}

// Depth returns d, the number of table rows / hash functions.
func (s *Sketch[K]) Depth() int { return s.table.Depth() }

// Width returns w, the number of table columns.
func (s *Sketch[K]) Width() int { return s.table.Width() }

// Describe implements prometheus.Collector by delegating to the attached
// collector, when it is a PrometheusCollector. Safe to call even with the
// default no-op collector; it simply describes nothing.
func (s *Sketch[K]) Describe(ch chan<- *prometheus.Desc) {
	if pc, ok := s.collector.(prometheus.Collector); ok {
		pc.Describe(ch)
	}
}

// Collect implements prometheus.Collector by delegating to the attached
// collector, when it is a PrometheusCollector.
func (s *Sketch[K]) Collect(ch chan<- prometheus.Metric) {
	if pc, ok := s.collector.(prometheus.Collector); ok {
		pc.Collect(ch)
	}
}

func (s *Sketch[K]) recomputeRowSums() {
	for r := range s.rowSums {
		var sum uint64
		for c := 0; c < s.table.Width(); c++ {
			sum += s.table.Get(r, c)
		}
		s.rowSums[r] = sum
	}
}
