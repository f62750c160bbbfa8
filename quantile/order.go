package quantile

import (
	"cmp"
	"slices"
)

// ascending is the total order used to sort samples. NaN sorts before every
// other value, so a sample containing NaN still sorts deterministically.
func ascending(a, b float64) int { return cmp.Compare(a, b) }

// sortAscending orders x in place with ascending. Every adapter sorts
// through it.
func sortAscending(x []float64) { slices.SortFunc(x, ascending) }

// sortedCopy returns an ascending copy of x; x is left untouched.
func sortedCopy(x []float64) []float64 {
	s := slices.Clone(x)
	sortAscending(s)

	return s
}
