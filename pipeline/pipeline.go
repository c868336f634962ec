package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/cwbudde/algo-gridderiv/analytic"
	"github.com/cwbudde/algo-gridderiv/deriv"
	"github.com/cwbudde/algo-gridderiv/fft2"
	"github.com/cwbudde/algo-gridderiv/grid"
	"github.com/cwbudde/algo-gridderiv/measure/regparam"
	"github.com/cwbudde/algo-gridderiv/measure/sfunc"
)

// Report is the output of Run.
type Report struct {
	Padded grid.Padded
	// NonRegularized holds the first-order derivatives without damping and
	// Products their ASA and TDR.
	NonRegularized deriv.Triple
	Products       analytic.Result
	Curves         sfunc.Curves
	// Targets follows the order of Config.Targets.
	Targets []TargetResult
}

// TargetResult is the outcome for one target response.
type TargetResult struct {
	Selection regparam.Selection
	// Err is set when no parameter could be selected or the regularized
	// derivatives failed. Derivatives and Products are then empty.
	Err         error
	Derivatives deriv.Triple
	Products    analytic.Result
}

// OK reports whether the target produced regularized derivatives.
func (r TargetResult) OK() bool {
	return r.Err == nil
}

// Run executes the workflow for g. Only invalid configuration, invalid
// input, transform failures and cancellation return an error; per-target
// failures are recorded in the report.
func Run(ctx context.Context, g grid.Grid, cfg Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	backend, err := fft2.ByName(cfg.Backend)
	if err != nil {
		return nil, err
	}
	alphas, err := cfg.Sweep.Alphas()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	op, err := deriv.NewOperator(g, deriv.WithBackend(backend))
	if err != nil {
		return nil, err
	}
	r := &Report{Padded: op.Padded()}
	Logf("pipeline: grid %dx%d padded to %dx%d", g.NX, g.NY, r.Padded.N, r.Padded.N)

	if r.NonRegularized, err = op.Derivatives(1); err != nil {
		return nil, err
	}
	if r.Products, err = analytic.ComposeTriple(r.NonRegularized); err != nil {
		return nil, err
	}

	if r.Curves, err = sfunc.Evaluate(ctx, op, alphas, sfunc.WithWorkers(cfg.Workers)); err != nil {
		return nil, fmt.Errorf("pipeline: sweep: %w", err)
	}
	Logf("pipeline: evaluated %d trial parameters in %v", len(alphas), time.Since(start).Round(time.Millisecond))

	for _, t := range cfg.Targets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r.Targets = append(r.Targets, resolve(op, r.Curves, t))
	}
	return r, nil
}

func resolve(op *deriv.Operator, curves sfunc.Curves, t regparam.Target) TargetResult {
	var res TargetResult
	res.Selection, res.Err = regparam.SelectAxes(curves, t)
	if res.Err != nil {
		Logf("pipeline: target %.2f: %v", t.Value, res.Err)
		return res
	}
	for i, axis := range []regparam.AxisResult{res.Selection.X, res.Selection.Y, res.Selection.Z} {
		if !axis.OK() {
			Logf("pipeline: target %.2f: axis %c skipped: %v", t.Value, "xyz"[i], axis.Err)
		}
	}

	alpha := res.Selection.Alpha()
	d, err := op.Regularized(alpha)
	if err != nil {
		res.Err = fmt.Errorf("pipeline: target %.2f: %w", t.Value, err)
		Logf("%v", res.Err)
		return res
	}
	p, err := analytic.ComposeTriple(d)
	if err != nil {
		res.Err = err
		return res
	}
	res.Derivatives, res.Products = d, p
	Logf("pipeline: target %.2f: log10(alpha) %.4f from %d axes", t.Value, res.Selection.Mean, res.Selection.Used)
	return res
}
