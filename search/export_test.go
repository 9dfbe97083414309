package search

// SetDenseSubsetLimit overrides the dense/sparse switch of the partition
// combiner and returns a func restoring the previous value.
func SetDenseSubsetLimit(n int) (restore func()) {
	prev := denseSubsetLimit
	denseSubsetLimit = n

	return func() { denseSubsetLimit = prev }
}
