package spectra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-transit/internal/testutil"
	"github.com/cwbudde/algo-transit/spectra"
)

func TestFromCubeTransposesOrders(t *testing.T) {
	wave, flux, errs := testutil.ScenarioCube()
	set, err := spectra.FromCube(wave, flux, errs, []string{"blue", "red"}, []float64{2458000.5})
	require.NoError(t, err)

	assert.Equal(t, 1, set.Len())
	assert.Equal(t, 2, set.NumOrders())
	assert.Equal(t, []float64{6000, 6001, 6002}, set.Order(1).Wave[0])
	assert.Equal(t, 3, set.Order(0).Pixels())

	k, ok := set.OrderIndex("red")
	assert.True(t, ok)
	assert.Equal(t, 1, k)

	_, ok = set.OrderIndex("green")
	assert.False(t, ok)
}

func TestFromCubeRaggedOrders(t *testing.T) {
	wave := [][][]float64{
		{{1, 2, 3}, {10, 11}},
		{{1, 2, 3}, {10, 11}},
	}
	flux := [][][]float64{
		{testutil.Ones(3), testutil.Ones(2)},
		{testutil.Ones(3), testutil.Ones(2)},
	}
	set, err := spectra.FromCube(wave, flux, flux, nil, []float64{0, 1})
	require.NoError(t, err)
	assert.Equal(t, 3, set.Order(0).Pixels())
	assert.Equal(t, 2, set.Order(1).Pixels())
}

func TestNewShapeErrors(t *testing.T) {
	row := []float64{1, 2, 3}

	tests := []struct {
		name   string
		times  []float64
		orders []spectra.Order
		want   error
	}{
		{
			name: "no times",
			want: spectra.ErrEmpty,
		},
		{
			name:   "observation count",
			times:  []float64{0, 1},
			orders: []spectra.Order{{Wave: [][]float64{row}, Flux: [][]float64{row}, Err: [][]float64{row}}},
			want:   spectra.ErrShapeMismatch,
		},
		{
			name:  "pixel count",
			times: []float64{0, 1},
			orders: []spectra.Order{{
				Wave: [][]float64{row, row},
				Flux: [][]float64{row, row[:2]},
				Err:  [][]float64{row, row},
			}},
			want: spectra.ErrShapeMismatch,
		},
		{
			name:   "empty order",
			times:  []float64{0},
			orders: []spectra.Order{{Wave: [][]float64{{}}, Flux: [][]float64{{}}, Err: [][]float64{{}}}},
			want:   spectra.ErrEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := spectra.New(tt.times, tt.orders)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCheckOrder(t *testing.T) {
	wave, flux, errs := testutil.ScenarioCube()
	set, err := spectra.FromCube(wave, flux, errs, nil, []float64{0})
	require.NoError(t, err)

	require.NoError(t, set.CheckOrder(0))
	require.NoError(t, set.CheckOrder(1))
	require.ErrorIs(t, set.CheckOrder(2), spectra.ErrOrderRange)
	require.ErrorIs(t, set.CheckOrder(-1), spectra.ErrOrderRange)
}

func TestWithPhaseDoesNotMutate(t *testing.T) {
	wave, flux, errs := testutil.ScenarioCube()
	wave = append(wave, wave[0])
	flux = append(flux, flux[0])
	errs = append(errs, errs[0])

	set, err := spectra.FromCube(wave, flux, errs, nil, []float64{0, 1})
	require.NoError(t, err)

	phase := []float64{math.NaN(), 0.01}
	phased, err := set.WithPhase(phase, []float64{1, 0.99})
	require.NoError(t, err)

	assert.False(t, set.HasPhase())
	assert.Nil(t, set.OutOfTransit())
	assert.True(t, phased.HasPhase())
	assert.Equal(t, []int{0}, phased.OutOfTransit())
	assert.Equal(t, []float64{1, 0.99}, phased.Model())

	phase[1] = math.NaN()
	assert.Equal(t, []int{0}, phased.OutOfTransit(), "phase must be copied")

	_, err = set.WithPhase([]float64{0}, nil)
	require.ErrorIs(t, err, spectra.ErrShapeMismatch)
}
