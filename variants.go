package freqsketch

// NewCountMinSketch builds the classical Count-Min Sketch: Array32 table,
// independent hash scheme, baseline update, min estimator.
func NewCountMinSketch[K comparable](epsilon, delta float64) *Sketch[K] {
	return New[K](epsilon, delta).Build()
}

// NewConservativeCountMinSketch builds a Count-Min Sketch using
// conservative update, which tightens estimates at the cost of a slower
// insert.
func NewConservativeCountMinSketch[K comparable](epsilon, delta float64) *Sketch[K] {
	return New[K](epsilon, delta).
		WithUpdateStrategy(UpdateConservative).
		Build()
}

// NewCountMeanMinSketch builds a Count-Mean-Min Sketch: Array32 table,
// independent hash scheme, the count-mean estimator debiasing each row
// before taking the median.
func NewCountMeanMinSketch[K comparable](epsilon, delta float64) *Sketch[K] {
	return New[K](epsilon, delta).
		WithEstimator(EstimatorCountMean).
		Build()
}

// NewHashPairSketch builds a Count-Min Sketch addressed by the hash-pair
// scheme instead of d independently seeded functions.
func NewHashPairSketch[K comparable](epsilon, delta float64) *Sketch[K] {
	return New[K](epsilon, delta).
		WithHashScheme(HashPairScheme).
		Build()
}

// NewHashPairCountMeanMinSketch combines the hash-pair scheme with the
// count-mean estimator.
func NewHashPairCountMeanMinSketch[K comparable](epsilon, delta float64) *Sketch[K] {
	return New[K](epsilon, delta).
		WithHashScheme(HashPairScheme).
		WithEstimator(EstimatorCountMean).
		Build()
}

// NewLeastSquaresSketch builds a sketch using the least-squares
// estimator, which requires the hash-pair scheme over a dense matrix
// table.
func NewLeastSquaresSketch[K comparable](epsilon, delta float64) *Sketch[K] {
	return New[K](epsilon, delta).
		WithHashScheme(HashPairScheme).
		WithTableBacking(TableMatrix).
		WithEstimator(EstimatorLeastSquares).
		Build()
}
