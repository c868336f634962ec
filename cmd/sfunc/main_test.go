package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-gridderiv/grid"
	"github.com/cwbudde/algo-gridderiv/internal/gridio"
	"github.com/cwbudde/algo-gridderiv/internal/testutil"
	"github.com/cwbudde/algo-gridderiv/measure/regparam"
	"github.com/cwbudde/algo-gridderiv/pipeline"
)

func testReport(t *testing.T) (grid.Grid, *pipeline.Report) {
	t.Helper()
	pipeline.SetLogger(nil)
	t.Cleanup(func() { pipeline.SetLogger(nil) })

	x, y := testutil.Mesh(24, 20, 50, 50)
	g, err := grid.New(x, y, testutil.GaussianAnomaly(x, y, 600, 500, 200, 10), 24, 20)
	require.NoError(t, err)
	r, err := pipeline.Run(context.Background(), g, pipeline.DefaultConfig())
	require.NoError(t, err)
	return g, r
}

func TestReadGrid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.dat")
	require.NoError(t, os.WriteFile(path, []byte("0 0 0 1\n0 1 0 2\n1 0 0 3\n1 1 0 4\n"), 0o600))

	g, err := readGrid(path, 2, 2, 3)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3, 4}, g.Data)

	_, err = readGrid(filepath.Join(t.TempDir(), "missing.dat"), 2, 2, 3)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestPrintSelections(t *testing.T) {
	_, r := testReport(t)

	var buf bytes.Buffer
	require.NoError(t, printSelections(&buf, r))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2+len(r.Targets))
	require.True(t, strings.HasPrefix(lines[2], "0.50"))

	buf.Reset()
	require.NoError(t, printCurves(&buf, r))
	require.Contains(t, buf.String(), "S_x")
	require.Len(t, strings.Split(strings.TrimSpace(buf.String()), "\n"), 2+r.Curves.Len())
}

func TestWriteProducts(t *testing.T) {
	g, r := testReport(t)
	dir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, writeProducts(dir, g, r))

	f, err := os.Open(filepath.Join(dir, "nonregularized.dat"))
	require.NoError(t, err)
	defer f.Close()

	asa, err := gridio.Read(f, g.NX, g.NY, 5)
	require.NoError(t, err)
	for i, v := range asa.Data {
		require.InDelta(t, r.Products.ASA[i], v, 1e-12*math.Max(1, math.Abs(v)))
	}

	for _, res := range r.Targets {
		_, err := os.Stat(filepath.Join(dir, productName(res.Selection.Target.Value)))
		if res.OK() {
			require.NoError(t, err)
		} else {
			require.ErrorIs(t, err, os.ErrNotExist)
		}
	}
}

func TestPrintSelectionsFailedAxes(t *testing.T) {
	fail := func(axis string) error {
		return fmt.Errorf("%s: %w", axis, regparam.ErrInsufficientData)
	}
	ok := regparam.AxisResult{Exponent: 2}
	target := regparam.Target{Value: 0.5, Window: regparam.Window{Lower: 0.4, Upper: 0.6}}

	r := &pipeline.Report{Targets: []pipeline.TargetResult{
		{Selection: regparam.Selection{Target: target, X: ok, Y: ok, Z: ok, Mean: 2, Used: 3}},
		{Selection: regparam.Selection{
			Target: target, X: ok, Z: ok, Mean: 2, Used: 2,
			Y: regparam.AxisResult{Exponent: math.NaN(), Err: fail("y")},
		}},
		{
			Selection: regparam.Selection{
				Target: target, Mean: math.NaN(),
				X: regparam.AxisResult{Exponent: math.NaN(), Err: fail("x")},
				Y: regparam.AxisResult{Exponent: math.NaN(), Err: fail("y")},
				Z: regparam.AxisResult{Exponent: math.NaN(), Err: fail("z")},
			},
			Err: errors.Join(fail("x"), fail("y"), fail("z")),
		},
	}}

	var buf bytes.Buffer
	require.NoError(t, printSelections(&buf, r))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	require.True(t, strings.HasSuffix(lines[2], "ok"))
	require.True(t, strings.HasSuffix(lines[3], "ok (skipped y)"))
	require.Contains(t, lines[4], "failed: x: ")
	require.Contains(t, lines[4], "; z: ")
}
