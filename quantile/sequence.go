package quantile

// Accessor extracts the numeric value of record rec found at position i.
type Accessor[T any] func(rec T, i int) float64

// Sequence computes the p-quantile of seq.
//
// Behavior:
//   - Returns (0, false) for an empty seq: there is no result.
//   - sorted == false: a sorted copy is made; seq is never reordered.
//   - sorted == true: seq is trusted to be ascending and read in place.
//
// Contract: 0 ≤ p ≤ 1. No validation is performed; see Of.
//
// Complexity: O(n log n) unsorted, O(1) sorted.
func Sequence(seq []float64, p float64, sorted bool, m Method) (float64, bool) {
	if len(seq) == 0 {
		return 0, false
	}
	if !sorted {
		seq = sortedCopy(seq)
	}

	return EstimateSorted(seq, p, m), true
}

// ByAccessor computes the p-quantile of the values fn extracts from records.
//
// Behavior:
//   - fn is called exactly once per record, in positional order.
//   - The extracted values form an intermediate sample handled exactly like
//     Sequence (sorted only when sorted == false).
//   - Returns (0, false) for an empty records slice.
//
// Contract: fn != nil and 0 ≤ p ≤ 1. No validation is performed; see OfFunc.
//
// Complexity: O(n log n) unsorted, O(n) sorted.
func ByAccessor[T any](records []T, p float64, fn Accessor[T], sorted bool, m Method) (float64, bool) {
	if len(records) == 0 {
		return 0, false
	}
	values := make([]float64, len(records))
	for i, rec := range records {
		values[i] = fn(rec, i)
	}
	if !sorted {
		sortAscending(values) // intermediate sample is ours to reorder
	}

	return EstimateSorted(values, p, m), true
}
