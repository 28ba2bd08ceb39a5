package metrics

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

var _ Collector = (*PrometheusCollector)(nil)
var _ prometheus.Collector = (*PrometheusCollector)(nil)

// PrometheusCollector implements Collector using Prometheus metrics.
type PrometheusCollector struct {
	labels prometheus.Labels

	insertionCount        int64
	observedCount         int64
	decaySweepCount       int64
	decayedCount          int64
	heavyHitterEvictCount int64
	overflowCount         int64

	depth int64
	width int64

	insertionDesc  *prometheus.Desc
	observedDesc   *prometheus.Desc
	decaySweepDesc *prometheus.Desc
	decayedDesc    *prometheus.Desc
	evictionDesc   *prometheus.Desc
	overflowDesc   *prometheus.Desc
	depthDesc      *prometheus.Desc
	widthDesc      *prometheus.Desc
}

// NewPrometheusCollector creates a new Prometheus-based metric collector
// labeled with name.
func NewPrometheusCollector(name string) *PrometheusCollector {
	labels := prometheus.Labels{"name": name}

	return &PrometheusCollector{
		labels: labels,

		insertionDesc: prometheus.NewDesc(
			"freqsketch_insertion_total",
			"Total number of Insert calls",
			nil, labels,
		),
		observedDesc: prometheus.NewDesc(
			"freqsketch_observed_total",
			"Total occurrences observed across all Insert calls",
			nil, labels,
		),
		decaySweepDesc: prometheus.NewDesc(
			"freqsketch_decay_sweep_total",
			"Total number of lossy decay sweeps that fired",
			nil, labels,
		),
		decayedDesc: prometheus.NewDesc(
			"freqsketch_decayed_total",
			"Total amount subtracted by lossy decay sweeps",
			nil, labels,
		),
		evictionDesc: prometheus.NewDesc(
			"freqsketch_heavy_hitter_eviction_total",
			"Total number of heavy-hitter tracker evictions",
			nil, labels,
		),
		overflowDesc: prometheus.NewDesc(
			"freqsketch_overflow_total",
			"Total number of overflow events (a sketch reports only its first saturated cell)",
			nil, labels,
		),
		depthDesc: prometheus.NewDesc(
			"freqsketch_depth",
			"Number of table rows (hash functions)",
			nil, labels,
		),
		widthDesc: prometheus.NewDesc(
			"freqsketch_width",
			"Number of table columns",
			nil, labels,
		),
	}
}

func (p *PrometheusCollector) IncInsertion() {
	atomic.AddInt64(&p.insertionCount, 1)
}

func (p *PrometheusCollector) AddObserved(count uint64) {
	atomic.AddInt64(&p.observedCount, int64(count))
}

func (p *PrometheusCollector) IncDecaySweep() {
	atomic.AddInt64(&p.decaySweepCount, 1)
}

func (p *PrometheusCollector) AddDecayed(amount uint64) {
	atomic.AddInt64(&p.decayedCount, int64(amount))
}

func (p *PrometheusCollector) IncHeavyHitterEviction() {
	atomic.AddInt64(&p.heavyHitterEvictCount, 1)
}

func (p *PrometheusCollector) IncOverflow() {
	atomic.AddInt64(&p.overflowCount, 1)
}

func (p *PrometheusCollector) SetDepthWidth(depth, width int) {
	atomic.StoreInt64(&p.depth, int64(depth))
	atomic.StoreInt64(&p.width, int64(width))
}

// Describe implements prometheus.Collector.
func (p *PrometheusCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- p.insertionDesc
	ch <- p.observedDesc
	ch <- p.decaySweepDesc
	ch <- p.decayedDesc
	ch <- p.evictionDesc
	ch <- p.overflowDesc
	ch <- p.depthDesc
	ch <- p.widthDesc
}

// Collect implements prometheus.Collector.
func (p *PrometheusCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(p.insertionDesc, prometheus.CounterValue, float64(atomic.LoadInt64(&p.insertionCount)))
	ch <- prometheus.MustNewConstMetric(p.observedDesc, prometheus.CounterValue, float64(atomic.LoadInt64(&p.observedCount)))
	ch <- prometheus.MustNewConstMetric(p.decaySweepDesc, prometheus.CounterValue, float64(atomic.LoadInt64(&p.decaySweepCount)))
	ch <- prometheus.MustNewConstMetric(p.decayedDesc, prometheus.CounterValue, float64(atomic.LoadInt64(&p.decayedCount)))
	ch <- prometheus.MustNewConstMetric(p.evictionDesc, prometheus.CounterValue, float64(atomic.LoadInt64(&p.heavyHitterEvictCount)))
	ch <- prometheus.MustNewConstMetric(p.overflowDesc, prometheus.CounterValue, float64(atomic.LoadInt64(&p.overflowCount)))
	ch <- prometheus.MustNewConstMetric(p.depthDesc, prometheus.GaugeValue, float64(atomic.LoadInt64(&p.depth)))
	ch <- prometheus.MustNewConstMetric(p.widthDesc, prometheus.GaugeValue, float64(atomic.LoadInt64(&p.width)))
}
