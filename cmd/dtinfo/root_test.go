package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-transit/spectra/region"
	"github.com/cwbudde/algo-transit/spectra/template"
	"github.com/cwbudde/algo-transit/transit"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCommand(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestRunPrintsTable(t *testing.T) {
	out, err := execute(t, "--obs", "40", "--sigma", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 41)
	assert.True(t, strings.HasPrefix(lines[0], "OBS"))
	assert.Contains(t, out, "NaN", "out-of-transit phases are NaN")
}

func TestRunRejectsBadTemplate(t *testing.T) {
	_, err := execute(t, "--template", "mean")
	require.ErrorIs(t, err, template.ErrUnknownKind)
}

func TestRunRejectsRegionAcrossOrders(t *testing.T) {
	_, err := execute(t, "--low", "5890", "--high", "6560")
	require.ErrorIs(t, err, region.ErrRegionSpansOrders)
}

func TestLoadParams(t *testing.T) {
	p, err := loadParams("")
	require.NoError(t, err)
	assert.Equal(t, defaultParams, p)

	path := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(path, []byte("period: 3.5\nrp_rs: 0.1\n"), 0o600))

	p, err = loadParams(path)
	require.NoError(t, err)
	assert.Equal(t, 3.5, p.Period)
	assert.Equal(t, 0.1, p.RadiusRatio)
	assert.Equal(t, defaultParams.SemiMajor, p.SemiMajor)

	require.NoError(t, os.WriteFile(path, []byte("period: -1\n"), 0o600))
	_, err = loadParams(path)
	require.ErrorIs(t, err, transit.ErrInvalidParams)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "dtinfo dev\n", out)
}
