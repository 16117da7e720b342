// Package robust provides NaN-ignoring reductions over float64 slices.
//
// Missing or excluded samples in a spectrum are carried as NaN. Every
// reduction in this package skips them instead of propagating them, so
// a sum over nothing is 0 and a median over nothing is NaN.
package robust
