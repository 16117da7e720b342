package testutil

// DC generates a constant-valued row.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	return DC(1.0, n)
}

// Repeat returns n rows that all alias row.
func Repeat(row []float64, n int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = row
	}
	return out
}

// ScenarioCube returns the two-order, single-observation grid
// [[5000 5001 5002] [6000 6001 6002]] laid out [obs][order][pixel], with
// unit flux and errors.
func ScenarioCube() (wave, flux, errs [][][]float64) {
	wave = [][][]float64{{{5000, 5001, 5002}, {6000, 6001, 6002}}}
	flux = [][][]float64{{Ones(3), Ones(3)}}
	errs = [][][]float64{{Ones(3), Ones(3)}}
	return wave, flux, errs
}
