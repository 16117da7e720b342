package testutil

import (
	"math"
	"testing"
)

func TestRequireSliceNearlyEqual(t *testing.T) {
	nan := math.NaN()
	RequireSliceNearlyEqual(t, []float64{1, nan, 3}, []float64{1 + 1e-13, nan, 3}, 1e-12)
}

func TestRequireFinite(t *testing.T) {
	RequireFinite(t, []float64{0, -1, 1e300})
}
