package region_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-transit/internal/synth"
	"github.com/cwbudde/algo-transit/internal/testutil"
	"github.com/cwbudde/algo-transit/spectra"
	"github.com/cwbudde/algo-transit/spectra/region"
)

func scenarioSet(t *testing.T) *spectra.Set {
	t.Helper()
	wave, flux, errs := testutil.ScenarioCube()
	set, err := spectra.FromCube(wave, flux, errs, nil, []float64{0})
	require.NoError(t, err)
	return set
}

// overlapSet has two 11-pixel orders covering [100, 110] and [108, 118].
func overlapSet(t *testing.T) *spectra.Set {
	t.Helper()
	a := synth.Grid(100, 1, 11)
	b := synth.Grid(108, 1, 11)
	set, err := spectra.New([]float64{0}, []spectra.Order{
		{Wave: [][]float64{a}, Flux: [][]float64{testutil.Ones(11)}, Err: [][]float64{testutil.Ones(11)}},
		{Wave: [][]float64{b}, Flux: [][]float64{testutil.Ones(11)}, Err: [][]float64{testutil.Ones(11)}},
	})
	require.NoError(t, err)
	return set
}

func TestLocateScenario(t *testing.T) {
	set := scenarioSet(t)

	k, err := region.Locate(set, 5001)
	require.NoError(t, err)
	assert.Equal(t, 0, k)

	k, err = region.Locate(set, 6002.5)
	require.NoError(t, err)
	assert.Equal(t, 1, k)

	_, err = region.Locate(set, 7000)
	require.ErrorIs(t, err, region.ErrWavelengthNotCovered)
}

func TestLocateToleranceEdges(t *testing.T) {
	set := scenarioSet(t)

	// Exactly one unit below the first pixel still counts as covered.
	k, err := region.Locate(set, 4999)
	require.NoError(t, err)
	assert.Equal(t, 0, k)

	_, err = region.Locate(set, 4998.9)
	require.ErrorIs(t, err, region.ErrWavelengthNotCovered)
}

func TestLocateOverlapPrefersOrderCentre(t *testing.T) {
	set := overlapSet(t)

	tests := []struct {
		wavelength float64
		want       int
	}{
		{103, 0},
		{109, 0}, // |5.5-9|=3.5 vs |5.5-1|=4.5
		{110, 1}, // |5.5-10|=4.5 vs |5.5-2|=3.5
		{115, 1},
		{118.5, 1},
	}

	for _, tt := range tests {
		k, err := region.Locate(set, tt.wavelength)
		require.NoError(t, err)
		assert.Equal(t, tt.want, k, "wavelength %g", tt.wavelength)
	}
}

func TestResolveScenario(t *testing.T) {
	set := scenarioSet(t)

	sel, err := region.Resolve(set, region.Bounds{Low: 5000.5, High: 5001.5})
	require.NoError(t, err)
	assert.Equal(t, 0, sel.Order)
	assert.Equal(t, []bool{false, true, false}, sel.Mask)
	assert.Equal(t, 1, sel.Count())
	assert.Equal(t, []float64{5001}, sel.Apply(set.Order(0).Wave[0]))
}

func TestResolveInclusiveBounds(t *testing.T) {
	set := scenarioSet(t)

	sel, err := region.Resolve(set, region.Bounds{Low: 6000, High: 6001})
	require.NoError(t, err)
	assert.Equal(t, 1, sel.Order)
	assert.Equal(t, []bool{true, true, false}, sel.Mask)
}

func TestResolveSpanningOrdersFails(t *testing.T) {
	set := scenarioSet(t)

	_, err := region.Resolve(set, region.Bounds{Low: 5001, High: 6001})
	require.ErrorIs(t, err, region.ErrRegionSpansOrders)

	_, err = region.Resolve(set, region.Bounds{Low: 5001, High: 7000})
	require.ErrorIs(t, err, region.ErrWavelengthNotCovered)
}

func TestResolveAll(t *testing.T) {
	set := scenarioSet(t)

	sels, err := region.ResolveAll(set,
		region.Bounds{Low: 5000, High: 5001},
		region.Bounds{Low: 6001, High: 6002},
	)
	require.NoError(t, err)
	require.Len(t, sels, 2)
	assert.Equal(t, 0, sels[0].Order)
	assert.Equal(t, 1, sels[1].Order)

	_, err = region.ResolveAll(set, region.Bounds{Low: 5000, High: 6000})
	require.ErrorIs(t, err, region.ErrRegionSpansOrders)
}
