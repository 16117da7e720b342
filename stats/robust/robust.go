package robust

import (
	"math"
	"sort"
)

// Finite returns a new slice holding the non-NaN values of x in order.
func Finite(x []float64) []float64 {
	out := make([]float64, 0, len(x))
	for _, v := range x {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}

	return out
}

// Count returns the number of non-NaN values in x.
func Count(x []float64) int {
	var n int

	for _, v := range x {
		if !math.IsNaN(v) {
			n++
		}
	}

	return n
}

// NanSum returns the sum of the non-NaN values in x using Kahan summation.
// An empty or all-NaN input sums to 0.
func NanSum(x []float64) float64 {
	var sum, c float64

	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}

		y := v - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum
}

// NanMedian returns the median of the non-NaN values in x. For an even
// count the two middle values are averaged. Returns NaN when no value is
// left.
func NanMedian(x []float64) float64 {
	vals := Finite(x)
	n := len(vals)

	if n == 0 {
		return math.NaN()
	}

	sort.Float64s(vals)

	if n%2 == 1 {
		return vals[n/2]
	}

	return (vals[n/2-1] + vals[n/2]) / 2
}

// NanMeanStd returns the mean and population standard deviation of the
// non-NaN values in x using Welford's online algorithm. Both are NaN when no
// value is left.
func NanMeanStd(x []float64) (mean, std float64) {
	var (
		n  int
		m2 float64
	)

	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}

		n++
		delta := v - mean
		mean += delta / float64(n)
		m2 += delta * (v - mean)
	}

	if n == 0 {
		return math.NaN(), math.NaN()
	}

	return mean, math.Sqrt(m2 / float64(n))
}

// NanStd returns the population standard deviation of the non-NaN values.
func NanStd(x []float64) float64 {
	_, std := NanMeanStd(x)
	return std
}

// ColumnMedian returns the per-column NaN-ignoring median of rows. Only
// the rows listed in idx are used; a nil idx selects every row. All used
// rows must share the same length; the result has that length.
func ColumnMedian(rows [][]float64, idx []int) []float64 {
	if idx == nil {
		idx = make([]int, len(rows))
		for i := range idx {
			idx[i] = i
		}
	}

	if len(idx) == 0 {
		return nil
	}

	width := len(rows[idx[0]])
	out := make([]float64, width)
	col := make([]float64, len(idx))

	for p := range out {
		for k, i := range idx {
			col[k] = rows[i][p]
		}

		out[p] = NanMedian(col)
	}

	return out
}

// NanArgMin returns the index of the smallest non-NaN value, or -1 when
// there is none. The first index wins ties.
func NanArgMin(x []float64) int {
	best := -1

	for i, v := range x {
		if math.IsNaN(v) {
			continue
		}

		if best < 0 || v < x[best] {
			best = i
		}
	}

	return best
}
