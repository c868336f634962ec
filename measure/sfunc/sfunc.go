package sfunc

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-gridderiv/deriv"
	"github.com/cwbudde/algo-gridderiv/grid"
)

// Errors returned by S-function evaluation.
var (
	ErrEmptySweep    = errors.New("sfunc: empty trial sweep")
	ErrInvalidAlpha  = errors.New("sfunc: trial values must be positive and finite")
	ErrZeroResponse  = errors.New("sfunc: derivative norm is zero for every trial value")
	ErrInvalidConfig = errors.New("sfunc: invalid sweep configuration")
)

// Deriver evaluates regularized first derivatives for a given α.
// *deriv.Operator implements it.
type Deriver interface {
	Regularized(alpha float64) (deriv.Triple, error)
}

// Curves holds the S-functions of the three derivative directions, in
// sweep order.
type Curves struct {
	Alphas []float64
	// X, Y and Z are the norms divided by their own maximum; each has a
	// maximum of exactly 1.
	X []float64
	Y []float64
	Z []float64
	// RawX, RawY and RawZ are the unnormalized L2 norms.
	RawX []float64
	RawY []float64
	RawZ []float64
}

// Len returns the number of trial values.
func (c Curves) Len() int {
	return len(c.Alphas)
}

// Option configures Evaluate.
type Option func(*config)

type config struct {
	workers int
}

// WithWorkers bounds the number of concurrently evaluated trial values.
// Values <= 0 keep the default of runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.workers = n
		}
	}
}

func applyOptions(opts []Option) config {
	cfg := config{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Evaluate computes the S-functions of d over alphas. Output order follows
// alphas, which need not be sorted.
func Evaluate(ctx context.Context, d Deriver, alphas []float64, opts ...Option) (Curves, error) {
	if len(alphas) == 0 {
		return Curves{}, ErrEmptySweep
	}
	for i, a := range alphas {
		if !(a > 0) || math.IsInf(a, 0) {
			return Curves{}, fmt.Errorf("%w: alphas[%d] = %v", ErrInvalidAlpha, i, a)
		}
	}
	cfg := applyOptions(opts)

	n := len(alphas)
	c := Curves{
		Alphas: append([]float64(nil), alphas...),
		RawX:   make([]float64, n),
		RawY:   make([]float64, n),
		RawZ:   make([]float64, n),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for i, alpha := range c.Alphas {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t, err := d.Regularized(alpha)
			if err != nil {
				return fmt.Errorf("sfunc: alpha %g: %w", alpha, err)
			}
			c.RawX[i] = floats.Norm(t.X, 2)
			c.RawY[i] = floats.Norm(t.Y, 2)
			c.RawZ[i] = floats.Norm(t.Z, 2)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Curves{}, err
	}

	var err error
	if c.X, err = Normalize(c.RawX); err != nil {
		return Curves{}, fmt.Errorf("x: %w", err)
	}
	if c.Y, err = Normalize(c.RawY); err != nil {
		return Curves{}, fmt.Errorf("y: %w", err)
	}
	if c.Z, err = Normalize(c.RawZ); err != nil {
		return Curves{}, fmt.Errorf("z: %w", err)
	}
	return c, nil
}

// EvaluateGrid builds a derivative operator for g and evaluates it.
func EvaluateGrid(ctx context.Context, g grid.Grid, alphas []float64, derivOpts []deriv.Option, opts ...Option) (Curves, error) {
	op, err := deriv.NewOperator(g, derivOpts...)
	if err != nil {
		return Curves{}, err
	}
	return Evaluate(ctx, op, alphas, opts...)
}

// Normalize divides norms by their maximum. Division is done element by
// element, so the maximum maps to exactly 1.
func Normalize(norms []float64) ([]float64, error) {
	if len(norms) == 0 {
		return nil, ErrEmptySweep
	}
	peak := floats.Max(norms)
	if !(peak > 0) || math.IsInf(peak, 0) {
		return nil, fmt.Errorf("%w: maximum norm %v", ErrZeroResponse, peak)
	}
	out := make([]float64, len(norms))
	for i, v := range norms {
		out[i] = v / peak
	}
	return out, nil
}
