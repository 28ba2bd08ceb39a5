package freqsketch

import "github.com/go-freq/freqsketch/pkg/topn"

// CounterHybrid wraps a Sketch with an exact-count set for up to N items,
// trading a little extra memory for exact answers on whatever items turn
// out to matter most, while falling back to the sketch estimate for
// everything else. It reuses topn.Tracker for the exact set: a hybrid's
// promote/demote/evict contract is the same admit-if-room-else-evict-the-
// minimum contract the heavy-hitter tracker already implements, just fed
// exact counts instead of sketch estimates.
type CounterHybrid[K comparable] struct {
	sketch *Sketch[K]
	exact  *topn.Tracker[K]
}

// NewCounterHybrid wraps sketch with an exact-count set of capacity n.
func NewCounterHybrid[K comparable](sketch *Sketch[K], n int) *CounterHybrid[K] {
	assertValue(sketch != nil, "hybrid sketch must not be nil")
	return &CounterHybrid[K]{
		sketch: sketch,
		exact:  topn.NewTracker[K](n),
	}
}

// Insert increments the underlying sketch by count and then updates the
// exact set: if item is already exact, its exact counter is incremented;
// otherwise the exact set admits it at the sketch's post-insert estimate
// (which already reflects this insert's count) under the same
// room-or-evict-the-minimum rule the heavy-hitter tracker applies.
func (h *CounterHybrid[K]) Insert(item K, count uint64) {
	h.sketch.Insert(item, count)

	if exact, ok := h.exact.Get(item); ok {
		h.exact.Observe(item, exact+count)
		return
	}

	h.exact.Observe(item, h.sketch.Get(item))
}

// Update applies Insert(item, 1) to every item in items.
func (h *CounterHybrid[K]) Update(items []K) {
	for _, item := range items {
		h.Insert(item, 1)
	}
}

// Get returns the exact count if item is currently in the exact set,
// otherwise the sketch's estimate.
func (h *CounterHybrid[K]) Get(item K) uint64 {
	if exact, ok := h.exact.Get(item); ok {
		return exact
	}
	return h.sketch.Get(item)
}

// Top returns the items currently in the exact set, in descending count
// order. Unlike Sketch.Top, every entry here is an exact count.
func (h *CounterHybrid[K]) Top() []topn.Entry[K] {
	return h.exact.Top()
}

// Depth returns the underlying sketch's depth.
func (h *CounterHybrid[K]) Depth() int { return h.sketch.Depth() }

// Width returns the underlying sketch's width.
func (h *CounterHybrid[K]) Width() int { return h.sketch.Width() }
