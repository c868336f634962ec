package regparam

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-gridderiv/measure/sfunc"
)

// Errors returned by parameter selection.
var (
	ErrLengthMismatch   = errors.New("regparam: curve and sweep lengths differ")
	ErrInvalidWindow    = errors.New("regparam: invalid slope window")
	ErrInvalidTarget    = errors.New("regparam: target response must lie in (0, 1)")
	ErrInsufficientData = errors.New("regparam: fewer than 2 points in slope window")
	ErrDegenerateFit    = errors.New("regparam: fitted slope is zero")
	ErrNoSolution       = errors.New("regparam: fitted line gives no positive parameter")
)

// degenerateSpan is the smallest change of the fitted response across the
// selected α range that still counts as a usable slope. Responses are
// normalized to [0, 1], so this is an absolute tolerance.
const degenerateSpan = 1e-12

// Window is the closed interval of rounded response values treated as the
// linear part of an S-function.
type Window struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// Validate checks that the window is a finite, non-empty interval.
func (w Window) Validate() error {
	if math.IsNaN(w.Lower) || math.IsNaN(w.Upper) || math.IsInf(w.Lower, 0) || math.IsInf(w.Upper, 0) || w.Lower > w.Upper {
		return fmt.Errorf("%w: [%v, %v]", ErrInvalidWindow, w.Lower, w.Upper)
	}
	return nil
}

// Contains reports whether v, rounded to one decimal, lies in the window.
// Rounding is half to even.
func (w Window) Contains(v float64) bool {
	r := math.RoundToEven(v*10) / 10
	return w.Lower <= r && r <= w.Upper
}

// Fit is a least-squares line norm = Slope·α + Intercept over the points
// selected by a window.
type Fit struct {
	Slope     float64
	Intercept float64
	Alphas    []float64
	Norms     []float64
}

// FitWindow selects the (α, norm) pairs whose rounded norm lies in w and
// fits a line to them.
func FitWindow(curve, alphas []float64, w Window) (Fit, error) {
	if len(curve) != len(alphas) {
		return Fit{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(curve), len(alphas))
	}
	if err := w.Validate(); err != nil {
		return Fit{}, err
	}

	var f Fit
	for i, v := range curve {
		if w.Contains(v) {
			f.Alphas = append(f.Alphas, alphas[i])
			f.Norms = append(f.Norms, v)
		}
	}
	if len(f.Alphas) < 2 {
		return Fit{}, fmt.Errorf("%w: %d selected in [%v, %v]", ErrInsufficientData, len(f.Alphas), w.Lower, w.Upper)
	}

	f.Intercept, f.Slope = stat.LinearRegression(f.Alphas, f.Norms, nil, false)

	span := floats.Max(f.Alphas) - floats.Min(f.Alphas)
	if math.IsNaN(f.Slope) || math.IsInf(f.Slope, 0) || math.IsNaN(f.Intercept) ||
		!(math.Abs(f.Slope)*span > degenerateSpan) {
		return Fit{}, fmt.Errorf("%w: slope %v over α span %v", ErrDegenerateFit, f.Slope, span)
	}
	return f, nil
}

// Invert solves Slope·α + Intercept = target and returns log10(α).
func (f Fit) Invert(target float64) (float64, error) {
	alpha := (target - f.Intercept) / f.Slope
	if !(alpha > 0) || math.IsInf(alpha, 0) {
		return 0, fmt.Errorf("%w: α = %v for target %v", ErrNoSolution, alpha, target)
	}
	return math.Log10(alpha), nil
}

// Select returns the base-10 exponent of the regularization parameter at
// which curve reaches target, using a line fitted inside w.
func Select(curve, alphas []float64, target float64, w Window) (float64, error) {
	if !(target > 0 && target < 1) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidTarget, target)
	}
	f, err := FitWindow(curve, alphas, w)
	if err != nil {
		return 0, err
	}
	return f.Invert(target)
}

// Alpha converts a selected exponent back to the regularization parameter.
func Alpha(exponent float64) float64 {
	return math.Pow(10, exponent)
}

// Target names a response value and the slope window used to reach it.
type Target struct {
	Value  float64 `json:"value"`
	Window Window  `json:"window"`
}

// Validate checks the target value and its window.
func (t Target) Validate() error {
	if !(t.Value > 0 && t.Value < 1) {
		return fmt.Errorf("%w: %v", ErrInvalidTarget, t.Value)
	}
	return t.Window.Validate()
}

// AxisResult is the outcome of selection on one S-function.
type AxisResult struct {
	Exponent float64
	Err      error
}

// OK reports whether the axis produced an exponent.
func (r AxisResult) OK() bool {
	return r.Err == nil
}

// Selection holds per-axis exponents for one target and their mean.
type Selection struct {
	Target Target
	X      AxisResult
	Y      AxisResult
	Z      AxisResult
	// Mean is the average exponent over the axes that succeeded.
	Mean float64
	// Used is the number of axes averaged into Mean.
	Used int
}

// Alpha returns 10^Mean.
func (s Selection) Alpha() float64 {
	return Alpha(s.Mean)
}

// SelectAxes runs Select on the x, y and z S-functions of c. A failing axis
// is recorded in its AxisResult and left out of Mean; an error is returned
// only when no axis succeeds.
func SelectAxes(c sfunc.Curves, t Target) (Selection, error) {
	s := Selection{Target: t}
	if err := t.Validate(); err != nil {
		return s, err
	}

	axes := []*AxisResult{&s.X, &s.Y, &s.Z}
	curves := [][]float64{c.X, c.Y, c.Z}
	var (
		sum  float64
		errs []error
	)
	for i, r := range axes {
		r.Exponent, r.Err = Select(curves[i], c.Alphas, t.Value, t.Window)
		if r.Err != nil {
			r.Exponent = math.NaN()
			errs = append(errs, fmt.Errorf("%c: %w", "xyz"[i], r.Err))
			continue
		}
		sum += r.Exponent
		s.Used++
	}
	if s.Used == 0 {
		s.Mean = math.NaN()
		return s, errors.Join(errs...)
	}
	s.Mean = sum / float64(s.Used)
	return s, nil
}
