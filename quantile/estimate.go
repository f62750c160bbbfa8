package quantile

import "math"

// Reader gives random access to the i-th smallest observation (0-based).
// Implementations must be valid for every i in [0, n).
type Reader func(i int) float64

// Estimate computes the p-quantile of n ascending observations read through at.
//
// Description:
//
//	Each method derives a continuous 1-based rank h from (n, p) and then
//	selects an order statistic (Type1, Type3), averages two neighbours
//	(Type2), or interpolates linearly between x₍⌊h⌋₎ and x₍⌊h⌋₊₁₎
//	(Type4–Type9). Probabilities at or near the extremes short-circuit to
//	the minimum or maximum:
//
//	  Type1  p = 0 → min                 h = n·p + 1/2
//	  Type2  p = 0 → min, p = 1 → max    h = n·p + 1/2
//	  Type3  p ≤ ½/n → min               h = n·p
//	  Type4  p < 1/n → min, p = 1 → max  h = n·p
//	  Type5  p < ½/n → min, p ≥ (n-½)/n → max             h = n·p + 1/2
//	  Type6  p < 1/(n+1) → min, p > n/(n+1) → max         h = (n+1)·p
//	  Type7  p = 1 → max                 h = (n-1)·p + 1
//	  Type8  p < ⅔/(n+⅓) → min, p ≥ (n-⅓)/(n+⅓) → max     h = (n+⅓)·p + ⅓
//	  Type9  p < ⅝/(n+¼) → min, p ≥ (n-⅜)/(n+¼) → max     h = (n+¼)·p + ⅜
//
//	Type1 and Type3 have no p = 1 rule; their rank formulas land on the
//	last observation by themselves.
//
// Contract:
//   - n ≥ 1 and 0 ≤ p ≤ 1 (callers report "no result" for n = 0).
//   - Any m outside Type1..Type9 is treated as Type7.
//   - Ranks are clamped to [1, n], so rounding at the thresholds never
//     reads outside the sample.
//   - An exact rank returns x₍ₕ₎ without touching its neighbour, and a rank
//     past the last observation returns x₍ₙ₎. With ±Inf samples this differs
//     from evaluating x₍ₕ₎ + 0·(x₍ₕ₊₁₎ - x₍ₕ₎), which would give NaN:
//     [1, +Inf] at p = 0 yields 1, not NaN.
//
// Complexity:
//
//	Time O(1) reads, Space O(1).
func Estimate(at Reader, n int, p float64, m Method) float64 {
	fn := float64(n)
	last := n - 1

	switch m {
	case Type1:
		if p == 0 {
			return at(0)
		}
		return at(clamp(int(math.Ceil(fn*p))-1, last))

	case Type2:
		if p == 0 {
			return at(0)
		}
		if p == 1 {
			return at(last)
		}
		lo := clamp(int(math.Ceil(fn*p))-1, last)
		hi := clamp(int(math.Floor(fn*p+1))-1, last)

		return (at(lo) + at(hi)) / 2

	case Type3:
		if p <= 0.5/fn {
			return at(0)
		}

		return at(clamp(int(math.Floor(fn*p+0.5))-1, last))

	case Type4:
		if p < 1/fn {
			return at(0)
		}
		if p == 1 {
			return at(last)
		}

		return interpolate(at, last, fn*p)

	case Type5:
		if p < 0.5/fn {
			return at(0)
		}
		if p >= (fn-0.5)/fn {
			return at(last)
		}

		return interpolate(at, last, fn*p+0.5)

	case Type6:
		if p < 1/(fn+1) {
			return at(0)
		}
		if p > fn/(fn+1) {
			return at(last)
		}

		return interpolate(at, last, (fn+1)*p)

	case Type8:
		if p < (2.0/3.0)/(fn+1.0/3.0) {
			return at(0)
		}
		if p >= (fn-1.0/3.0)/(fn+1.0/3.0) {
			return at(last)
		}

		return interpolate(at, last, (fn+1.0/3.0)*p+1.0/3.0)

	case Type9:
		if p < (5.0/8.0)/(fn+0.25) {
			return at(0)
		}
		if p >= (fn-3.0/8.0)/(fn+0.25) {
			return at(last)
		}

		return interpolate(at, last, (fn+0.25)*p+3.0/8.0)

	default: // Type7 and anything unrecognised
		if p == 1 {
			return at(last)
		}

		return interpolate(at, last, (fn-1)*p+1)
	}
}

// EstimateSorted is Estimate over an ascending slice.
// Contract: len(sorted) ≥ 1 and 0 ≤ p ≤ 1.
func EstimateSorted(sorted []float64, p float64, m Method) float64 {
	return Estimate(func(i int) float64 { return sorted[i] }, len(sorted), p, m)
}

// interpolate returns x₍⌊h⌋₎ + (h-⌊h⌋)·(x₍⌊h⌋₊₁₎ - x₍⌊h⌋₎) for a 1-based rank h.
// The upper neighbour is only read when the fractional part is non-zero.
func interpolate(at Reader, last int, h float64) float64 {
	fl := math.Floor(h)
	i := int(fl) - 1
	if i < 0 {
		return at(0)
	}
	if i >= last {
		return at(last)
	}
	lo := at(i)
	frac := h - fl
	if frac == 0 {
		return lo
	}

	return lo + frac*(at(i+1)-lo)
}

// clamp bounds a 0-based index to [0, last].
func clamp(i, last int) int {
	if i < 0 {
		return 0
	}
	if i > last {
		return last
	}

	return i
}
