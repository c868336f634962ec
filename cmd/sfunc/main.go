// Command sfunc selects regularization parameters for the spectral
// derivatives of a gridded field using the S-function method.
//
// Usage:
//
//	sfunc -nx N -ny M [flags] file.dat
//
// The input holds one sample per line: x, y and further columns, with the
// field value in column -col (default 3, the fourth column).
//
// Examples:
//
//	sfunc -nx 200 -ny 200 survey.dat
//	sfunc -nx 200 -ny 200 -backend gonum -workers 4 -curves survey.dat
//	sfunc -nx 200 -ny 200 -config targets.json -out results survey.dat
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-gridderiv/grid"
	"github.com/cwbudde/algo-gridderiv/internal/gridio"
	"github.com/cwbudde/algo-gridderiv/measure/regparam"
	"github.com/cwbudde/algo-gridderiv/pipeline"
)

func main() {
	nx := flag.Int("nx", 0, "number of samples along x (rows)")
	ny := flag.Int("ny", 0, "number of samples along y (columns)")
	col := flag.Int("col", 3, "zero-based column holding the field value")
	configPath := flag.String("config", "", "JSON pipeline configuration")
	backend := flag.String("backend", "", "FFT backend: algofft or gonum (overrides config)")
	workers := flag.Int("workers", 0, "concurrent sweep evaluations (0 = GOMAXPROCS, overrides config)")
	curves := flag.Bool("curves", false, "also print the S-function curves")
	outDir := flag.String("out", "", "directory for derivative and ASA/TDR column files")
	quiet := flag.Bool("q", false, "suppress progress logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sfunc -nx N -ny M [flags] file.dat\n\n")
		fmt.Fprintf(os.Stderr, "Selects regularization parameters for spectral derivatives.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  sfunc -nx 200 -ny 200 survey.dat\n")
		fmt.Fprintf(os.Stderr, "  sfunc -nx 200 -ny 200 -backend gonum -curves survey.dat\n")
	}
	flag.Parse()

	if flag.NArg() != 1 || *nx < 2 || *ny < 2 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := pipeline.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = pipeline.LoadConfig(*configPath); err != nil {
			log.Fatalf("config: %v", err)
		}
	}
	if *backend != "" {
		cfg.Backend = *backend
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *quiet {
		pipeline.SetLogger(nil)
	}

	g, err := readGrid(flag.Arg(0), *nx, *ny, *col)
	if err != nil {
		log.Fatalf("input: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := pipeline.Run(ctx, g, cfg)
	if err != nil {
		log.Fatalf("run: %v", err)
	}

	if err := printSelections(os.Stdout, report); err != nil {
		log.Fatalf("output: %v", err)
	}
	if *curves {
		if err := printCurves(os.Stdout, report); err != nil {
			log.Fatalf("output: %v", err)
		}
	}
	if *outDir != "" {
		if err := writeProducts(*outDir, g, report); err != nil {
			log.Fatalf("output: %v", err)
		}
	}
}

func readGrid(path string, nx, ny, col int) (grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return grid.Grid{}, err
	}
	defer f.Close()
	return gridio.Read(f, nx, ny, col)
}

func printSelections(w io.Writer, r *pipeline.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Target\tWindow\tlog10(a) x\tlog10(a) y\tlog10(a) z\tMean\tAlpha\tStatus\n")
	fmt.Fprintf(tw, "------\t------\t----------\t----------\t----------\t----\t-----\t------\n")
	for _, t := range r.Targets {
		s := t.Selection
		fmt.Fprintf(tw, "%.2f\t[%.2f, %.2f]\t%.4f\t%.4f\t%.4f\t%.4f\t%.4g\t%s\n",
			s.Target.Value, s.Target.Window.Lower, s.Target.Window.Upper,
			s.X.Exponent, s.Y.Exponent, s.Z.Exponent,
			s.Mean, s.Alpha(), status(t))
	}
	return tw.Flush()
}

// status condenses a target outcome to one table cell. Failed axes are
// listed even when the target succeeded on the others.
func status(t pipeline.TargetResult) string {
	if !t.OK() {
		return "failed: " + oneLine(t.Err)
	}
	s := t.Selection
	var skipped []string
	for i, axis := range []regparam.AxisResult{s.X, s.Y, s.Z} {
		if !axis.OK() {
			skipped = append(skipped, string("xyz"[i]))
		}
	}
	if len(skipped) == 0 {
		return "ok"
	}
	return "ok (skipped " + strings.Join(skipped, ",") + ")"
}

func oneLine(err error) string {
	return strings.ReplaceAll(err.Error(), "\n", "; ")
}

func printCurves(w io.Writer, r *pipeline.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "\nAlpha\tS_x\tS_y\tS_z\n")
	fmt.Fprintf(tw, "-----\t---\t---\t---\n")
	c := r.Curves
	for i, a := range c.Alphas {
		fmt.Fprintf(tw, "%.4g\t%.6f\t%.6f\t%.6f\n", a, c.X[i], c.Y[i], c.Z[i])
	}
	return tw.Flush()
}

// writeProducts writes nonregularized.dat and one regularized_<target>.dat
// per resolved target, each with columns x y dx dy dz asa tdr.
func writeProducts(dir string, g grid.Grid, r *pipeline.Report) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	header := []string{"x", "y", "dx", "dy", "dz", "asa", "tdr"}

	write := func(name string, d [5][]float64) error {
		f, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			return err
		}
		if err := gridio.Write(f, g, header, d[:]...); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}

	n := r.NonRegularized
	if err := write("nonregularized.dat", [5][]float64{n.X, n.Y, n.Z, r.Products.ASA, r.Products.TDR}); err != nil {
		return err
	}
	for _, t := range r.Targets {
		if !t.OK() {
			continue
		}
		d := t.Derivatives
		if err := write(productName(t.Selection.Target.Value), [5][]float64{d.X, d.Y, d.Z, t.Products.ASA, t.Products.TDR}); err != nil {
			return err
		}
	}
	return nil
}

func productName(target float64) string {
	return fmt.Sprintf("regularized_%.2f.dat", target)
}
